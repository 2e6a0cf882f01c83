package domain

import "time"

// Wire formats for the presentation collaborator: date-only fields travel as
// YYYY-MM-DD, timestamps as YYYY-MM-DD HH:MM:SS.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatDateTimePtr renders an optional timestamp, empty when unset.
func FormatDateTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateTimeLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeLayout, s)
}
