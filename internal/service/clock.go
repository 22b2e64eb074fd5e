package service

import "time"

// Clock returns the current time. Services read "today" from it so tests
// can pin the date.
type Clock func() time.Time

// SystemClock reports wall-clock time in loc, or UTC when loc is nil.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time { return time.Now().In(loc) }
}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
