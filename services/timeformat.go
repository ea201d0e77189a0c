package services

import "time"

const eventTimeLayout = "Jan 2 at 3:04pm"

// FormatEventTime renders an instant for one device. Devices that reported
// a timezone get the time converted into it; devices that never did (older
// app builds) get the instant in UTC with an explicit label, so the two
// renderings stay visually distinguishable.
func FormatEventTime(t time.Time, tz string) string {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return t.In(loc).Format(eventTimeLayout)
		}
	}
	return t.UTC().Format(eventTimeLayout) + " UTC"
}
