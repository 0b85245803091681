package usecases

import (
	"testing"
	"time"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	hour := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical", hour(0), hour(2), hour(0), hour(2), true},
		{"partial overlap right", hour(0), hour(2), hour(1), hour(3), true},
		{"partial overlap left", hour(1), hour(3), hour(0), hour(2), true},
		{"contained", hour(0), hour(4), hour(1), hour(2), true},
		{"containing", hour(1), hour(2), hour(0), hour(4), true},
		{"adjacent after", hour(0), hour(2), hour(2), hour(4), false},
		{"adjacent before", hour(2), hour(4), hour(0), hour(2), false},
		{"disjoint", hour(0), hour(1), hour(3), hour(4), false},
		{"one minute overlap", hour(0), hour(2).Add(time.Minute), hour(2), hour(4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.s1, tt.e1, tt.s2, tt.e2); got != tt.want {
				t.Errorf("overlaps(%v, %v, %v, %v) = %v, want %v", tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
			}
		})
	}
}

func TestFindConflictSkipsInactiveStatuses(t *testing.T) {
	base := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

	active := []entities.Booking{
		{ID: 1, Start: base, End: base.Add(2 * time.Hour), Status: entities.BookingStatusCancelled},
		{ID: 2, Start: base, End: base.Add(2 * time.Hour), Status: entities.BookingStatusRejected},
		{ID: 3, Start: base, End: base.Add(2 * time.Hour), Status: entities.BookingStatusCompleted},
	}

	if _, found := findConflict(active, base, base.Add(time.Hour)); found {
		t.Fatal("inactive bookings must not block")
	}

	active = append(active, entities.Booking{
		ID: 4, Start: base, End: base.Add(2 * time.Hour), Status: entities.BookingStatusPending,
	})

	conflicting, found := findConflict(active, base.Add(time.Hour), base.Add(3*time.Hour))
	if !found {
		t.Fatal("pending booking must block an overlapping request")
	}
	if conflicting.ID != 4 {
		t.Fatalf("expected booking 4 to conflict, got %d", conflicting.ID)
	}
}

func TestFindConflictReturnsFirstByStart(t *testing.T) {
	base := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

	active := []entities.Booking{
		{ID: 1, Start: base, End: base.Add(time.Hour), Status: entities.BookingStatusApproved},
		{ID: 2, Start: base.Add(time.Hour), End: base.Add(2 * time.Hour), Status: entities.BookingStatusApproved},
	}

	conflicting, found := findConflict(active, base.Add(30*time.Minute), base.Add(90*time.Minute))
	if !found {
		t.Fatal("expected a conflict")
	}
	if conflicting.ID != 1 {
		t.Fatalf("expected the earliest conflicting booking, got %d", conflicting.ID)
	}
}
