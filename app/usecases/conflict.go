package usecases

import (
	"time"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
)

// overlaps tests two half-open windows: [s1,e1) and [s2,e2) overlap iff
// s1 < e2 && s2 < e1. Adjacent windows do not conflict.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// findConflict scans the active bookings of a resource for the first one
// whose window overlaps [start, end). Callers guarantee end > start.
// Pure: no side effects, an O(n) pass over the (start-ordered) slice.
func findConflict(active []entities.Booking, start, end time.Time) (*entities.Booking, bool) {
	for i := range active {
		b := &active[i]
		if !entities.IsActiveBookingStatus(b.Status) {
			continue
		}
		if overlaps(b.Start, b.End, start, end) {
			return b, true
		}
	}
	return nil, false
}
