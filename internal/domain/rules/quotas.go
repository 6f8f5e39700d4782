package rules

import "time"

const FreeRewindsPerDay = 1

// DayKey returns the UTC calendar day used for daily quota buckets.
// The day boundary is fixed at UTC so quota resets are consistent
// regardless of the actor's locale.
func DayKey(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

// NextResetAt is the instant the daily quota buckets roll over.
func NextResetAt(now time.Time) time.Time {
	utc := now.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day()+1, 0, 0, 0, 0, time.UTC)
}
