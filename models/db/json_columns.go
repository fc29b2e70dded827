package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// jsonb колонки

func jsonValue(v any) (driver.Value, error) {
	valueString, err := json.Marshal(v)
	return string(valueString), err
}

func jsonScan(value any, dst any) error {
	switch data := value.(type) {
	case nil:
		return nil
	case []byte:
		if len(data) == 0 {
			return nil
		}
		return json.Unmarshal(data, dst)
	case string:
		if data == "" {
			return nil
		}
		return json.Unmarshal([]byte(data), dst)
	}
	return errors.Errorf("неподдерживаемый тип данных jsonb: %T", value)
}

type StringList []string

func (j StringList) Value() (driver.Value, error) {
	if j == nil {
		return jsonValue([]string{})
	}
	return jsonValue([]string(j))
}

func (j *StringList) Scan(value any) error {
	return jsonScan(value, j)
}
