package codec

import (
	"strings"
	"time"
)

// ParseTime accepts RFC 3339 timestamps (fractional seconds optional) and
// plain dates. dateOnly reports that s carried no clock part.
func ParseTime(s string) (t time.Time, dateOnly bool, err error) {
	if len(s) == len(dateLayout) && !strings.ContainsAny(s, "T ") {
		t, err = time.Parse(dateLayout, s)
		return t, err == nil, err
	}
	// Accept RFC3339Nano (trailing zeros optional)
	t, err = time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, false, nil
		}
		return time.Time{}, false, err
	}
	return t, false, nil
}

// FormatTime renders t in canonical form: a plain date when dateOnly, else
// RFC 3339 in UTC with trailing zero fractions trimmed.
func FormatTime(t time.Time, dateOnly bool) string {
	if dateOnly {
		return t.Format(dateLayout)
	}
	return t.UTC().Format(time.RFC3339Nano)
}

const dateLayout = "2006-01-02"

// looksLikeTime is a cheap prefilter so that ordinary strings skip parsing.
func looksLikeTime(s string) bool {
	if len(s) < len(dateLayout) {
		return false
	}
	return s[4] == '-' && s[7] == '-' && isDigits(s[:4]) && isDigits(s[5:7]) && isDigits(s[8:10])
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
