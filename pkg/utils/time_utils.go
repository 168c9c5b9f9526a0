package utils

import (
	"fmt"
	"strings"
	"time"
)

func NowUnixMillis() int64 { return time.Now().UnixMilli() }

// FromUnixMillis returns the zero time for t<=0 so callers decide how to render.
func FromUnixMillis(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(t).UTC()
}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate accepts the date formats browsers and people send. Empty input
// returns a nil time.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: unrecognized date %q", ErrInvalidInput, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
