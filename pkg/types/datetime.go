package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateTimeLayout = "2006-01-02 15:04:05"

// Форматы, которые принимаем на вход. Клиенты присылают даты по-разному,
// поэтому перебираем от самого подробного к самому короткому.
var dateTimeInputLayouts = []string{
	dateTimeLayout,
	time.RFC3339,
	"2006-01-02",
}

// DateTime - обёртка над time.Time с единым текстовым форматом для API и БД.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func ParseDateTime(value string) (DateTime, error) {
	for _, layout := range dateTimeInputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateTime{Time: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("не удалось разобрать дату %q", value)
}

func (d DateTime) String() string {
	return d.Time.Format(dateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	parsed, err := ParseDateTime(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner, чтобы pgx мог читать timestamp-колонки напрямую.
func (d *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDateTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		*d = DateTime{}
		return nil
	default:
		return fmt.Errorf("неожиданный тип %T для DateTime", src)
	}
}

func (d DateTime) Value() (driver.Value, error) {
	return d.Time, nil
}
