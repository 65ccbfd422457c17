package utils

import "time"

// Check-in bookkeeping stores unix seconds in the database and compares
// calendar dates in UTC, so a member who checked in at 23:59 UTC can
// check in again a minute later.

func NowUnixSeconds() int64 { return time.Now().Unix() }

// SameUTCDay reports whether two unix-second timestamps fall on the
// same UTC calendar date. A zero timestamp never matches anything.
func SameUTCDay(a, b int64) bool {
	if a <= 0 || b <= 0 {
		return false
	}
	ta := time.Unix(a, 0).UTC()
	tb := time.Unix(b, 0).UTC()
	ya, ma, da := ta.Date()
	yb, mb, db := tb.Date()
	return ya == yb && ma == mb && da == db
}

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatDate(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format("2006-01-02")
}

func FormatRFC3339(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format(time.RFC3339)
}
