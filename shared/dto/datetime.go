package dto

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"visitpazar/shared/constant"
	"visitpazar/shared/timezone"
)

var timeType = reflect.TypeOf(time.Time{})

// DateTime is a request datetime that accepts the layouts of timezone.ParseFlexible.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: timeType}
	}

	parsed, err := timezone.ParseFlexible(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: fmt.Sprintf("string %q", raw), Type: timeType}
	}

	d.Time = parsed

	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(timezone.Format(d.Time, constant.DateFormat)) //nolint:wrapcheck
}

// Ptr returns the underlying time or nil for a missing value.
func (d *DateTime) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}

	t := d.Time

	return &t
}
