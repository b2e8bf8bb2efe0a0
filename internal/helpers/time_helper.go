package helpers

import "time"

// FormatShowTime renders a start time as ISO-8601 with millisecond
// precision and a literal Z suffix. The value is asserted to be UTC,
// never converted.
func FormatShowTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000") + "Z"
}
