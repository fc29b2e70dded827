package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindInvalidState
	KindPreconditionFailed
	KindForbidden
	KindValidation
)

var kindName = map[Kind]string{
	KindUnexpected:         "UNEXPECTED",
	KindNotFound:           "NOT_FOUND",
	KindInvalidState:       "INVALID_STATE",
	KindPreconditionFailed: "PRECONDITION_FAILED",
	KindForbidden:          "FORBIDDEN",
	KindValidation:         "VALIDATION_ERROR",
}

func (k Kind) String() string {
	if name, ok := kindName[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Error ошибка процесса, сообщение показывается пользователю
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Message: msg}
}

func NotFound(format string, args ...any) error {
	return newError(KindNotFound, format, args...)
}

func InvalidState(format string, args ...any) error {
	return newError(KindInvalidState, format, args...)
}

func PreconditionFailed(format string, args ...any) error {
	return newError(KindPreconditionFailed, format, args...)
}

func Forbidden(format string, args ...any) error {
	return newError(KindForbidden, format, args...)
}

func Validation(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindValidation, Message: err.Error()}
}

// KindOf возвращает тип ошибки, для всех прочих ошибок KindUnexpected
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
