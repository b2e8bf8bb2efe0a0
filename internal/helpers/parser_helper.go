package helpers

import (
	"fmt"
	"strconv"
	"time"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseCheckbox maps the form checkbox value "y" to true, anything else
// to false.
func ParseCheckbox(s string) bool {
	return s == "y"
}

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseStartTime accepts the start time formats the listing forms
// submit. No timezone conversion is performed: a naive value is taken
// as-is.
func ParseStartTime(s string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time: %q", s)
}
