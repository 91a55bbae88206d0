// Package types implements special types for the Outlay backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a string cannot be parsed as a date.
var ErrInvalidDate = errors.New("date must be a valid date")

// datePatterns are tried in order when parsing incoming dates. Plain
// calendar dates and dates with a time of day are both accepted; values
// without an offset are taken as UTC.
var datePatterns = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Date is a calendar instant. The time of day, if present, is retained.
type Date time.Time

// ParseDate parses a string with any of the accepted date patterns.
func ParseDate(s string) (Date, error) {
	for _, pattern := range datePatterns {
		t, err := time.Parse(pattern, s)
		if err == nil {
			return Date(t), nil
		}
	}

	return Date{}, ErrInvalidDate
}

// Time returns the time instant the Date represents.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// String returns the date formatted as RFC3339.
func (d Date) String() string {
	return time.Time(d).Format(time.RFC3339)
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return time.Time(d).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected to be a string in a format accepted by ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	date, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = date
	return nil
}

// Scan reads the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = Date(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "datetime"
}
