package entity

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateOnly carries a calendar date with no time component.
type DateOnly struct {
	time.Time
}

const dateOnlyLayout = "2006-01-02"

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1] // Remove quotes
	}
	// Date pickers sometimes send a full timestamp; keep the date part.
	if len(s) > len(dateOnlyLayout) {
		s = s[:len(dateOnlyLayout)]
	}
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateOnlyLayout) + `"`), nil
}

// String returns the canonical YYYY-MM-DD form used for calendar matching.
func (d DateOnly) String() string {
	return d.Format(dateOnlyLayout)
}

func (d DateOnly) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *DateOnly) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		d.Time = v
	case []byte:
		t, err := time.Parse(dateOnlyLayout, string(v))
		if err != nil {
			return err
		}
		d.Time = t
	default:
		return fmt.Errorf("cannot scan type %T into DateOnly", value)
	}
	return nil
}
