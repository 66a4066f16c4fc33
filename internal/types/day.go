// Package types implements special types for the league back-office.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Day is a calendar day, e.g. a match day. The time of day is always
// midnight UTC.
type Day time.Time

// NewDay returns a new Day.
func NewDay(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// String returns the day formatted as YYYY-MM-DD.
func (d Day) String() string {
	year, month, day := time.Time(d).Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Day) MarshalJSON() ([]byte, error) {
	return time.Time(d).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both RFC3339 timestamps and plain YYYY-MM-DD dates are accepted,
// everything below day granularity is ignored.
func (d *Day) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}-[0-9]{2}$", value)
	if err != nil {
		return err
	}

	// This is the default pattern
	pattern := "2006-01-02T15:04:05Z07:00"
	if match {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DayOf(t)
	return nil
}

// DayOf returns the Day on which a time occurs in UTC.
func DayOf(t time.Time) Day {
	year, month, day := t.In(time.UTC).Date()
	return NewDay(year, month, day)
}

// ParseDay parses a "YYYY-MM-DD" string and returns the Day value it represents.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}

	return DayOf(t), nil
}

// UnmarshalParam implements binding for URI and query parameters.
// An empty parameter binds to the zero Day.
func (d *Day) UnmarshalParam(param string) error {
	if param == "" {
		return nil
	}

	parsed, err := ParseDay(param)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan reads the value from the database.
func (d *Day) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DayOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Day) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Day) GormDataType() string {
	return "date"
}

// IsZero reports if the day is the zero value.
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDate adds a specified amount of years, months and days.
func (d Day) AddDate(years, months, days int) Day {
	return Day(time.Time(d).AddDate(years, months, days))
}

// Before reports whether the day instant d is before e.
func (d Day) Before(e Day) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the day instant d is after e.
func (d Day) After(e Day) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same day.
func (d Day) Equal(e Day) bool {
	return time.Time(d).Equal(time.Time(e))
}
