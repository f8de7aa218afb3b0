package utils

import "time"

// RangesOverlap reports whether two half-open date ranges [aOut, aDue) and
// [bOut, bDue) intersect. Ranges that merely touch at an endpoint do not
// overlap, so a return at 10:00 and a pickup at 10:00 can share a vehicle.
func RangesOverlap(aOut, aDue, bOut, bDue time.Time) bool {
	return aOut.Before(bDue) && bOut.Before(aDue)
}
