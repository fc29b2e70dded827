package apperrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Run(`typed errors`, func(t *testing.T) {
		require.Equal(t, KindNotFound, KindOf(NotFound("заявка %v не найдена", "1")))
		require.Equal(t, KindInvalidState, KindOf(InvalidState("недопустимый статус")))
		require.Equal(t, KindPreconditionFailed, KindOf(PreconditionFailed("нет резюме")))
		require.Equal(t, KindForbidden, KindOf(Forbidden("нет доступа")))
		require.Equal(t, KindValidation, KindOf(Validation(errors.New("пустое поле"))))
		require.Equal(t, "заявка 1 не найдена", NotFound("заявка %v не найдена", "1").Error())
	})

	t.Run(`wrapped and plain errors`, func(t *testing.T) {
		wrapped := errors.Wrap(Forbidden("нет доступа"), "проверка")
		require.True(t, Is(wrapped, KindForbidden))
		require.Equal(t, KindUnexpected, KindOf(errors.New("db down")))
		require.False(t, Is(nil, KindUnexpected))
		require.Nil(t, Validation(nil))
	})
}
