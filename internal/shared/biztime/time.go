// Package biztime centralizes time handling so that every persisted
// timestamp is UTC regardless of the server's local timezone.
package biztime

import "time"

func NowUTC() time.Time {
	return time.Now().UTC()
}

func ToUTC(t time.Time) time.Time {
	return t.UTC()
}
