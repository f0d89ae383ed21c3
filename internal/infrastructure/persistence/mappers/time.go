package mappers

import "time"

// Models store timestamps as Unix milliseconds; domain entities use
// time.Time in UTC.

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}

func timeToMillis(t time.Time) int64 {
	return t.UnixMilli()
}
