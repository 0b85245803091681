package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
)

func fillBookings(t *testing.T) (*MemoryBookingRepository, time.Time) {
	t.Helper()

	repo := NewMemoryBookingRepository()
	base := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

	seed := []entities.Booking{
		{Reference: "a", ResourceID: 1, RequesterID: 7, Start: base.Add(4 * time.Hour), End: base.Add(6 * time.Hour), Status: entities.BookingStatusApproved},
		{Reference: "b", ResourceID: 1, RequesterID: 8, Start: base, End: base.Add(2 * time.Hour), Status: entities.BookingStatusPending},
		{Reference: "c", ResourceID: 2, RequesterID: 7, Start: base, End: base.Add(2 * time.Hour), Status: entities.BookingStatusApproved},
	}
	for _, b := range seed {
		if _, err := repo.Create(b); err != nil {
			t.Fatalf("seeding %s: %v", b.Reference, err)
		}
	}
	return repo, base
}

func TestMemoryActiveForResourceOrdersByStart(t *testing.T) {
	repo, base := fillBookings(t)

	active, err := repo.ActiveForResource(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active bookings, got %d", len(active))
	}
	if !active[0].Start.Equal(base) || !active[1].Start.Equal(base.Add(4*time.Hour)) {
		t.Fatalf("expected ascending start order, got %v then %v", active[0].Start, active[1].Start)
	}
}

func TestMemoryActiveForResourceSkipsInactive(t *testing.T) {
	repo, base := fillBookings(t)

	active, _ := repo.ActiveForResource(1)
	if err := repo.UpdateStatus(active[0].ID, entities.BookingStatusCancelled); err != nil {
		t.Fatal(err)
	}

	active, _ = repo.ActiveForResource(1)
	if len(active) != 1 {
		t.Fatalf("cancelled booking still listed as active, got %d entries", len(active))
	}
	if !active[0].Start.Equal(base.Add(4 * time.Hour)) {
		t.Fatalf("wrong booking survived: %v", active[0].Start)
	}
}

func TestMemoryCreateRejectsOverlap(t *testing.T) {
	repo, base := fillBookings(t)

	_, err := repo.Create(entities.Booking{
		Reference: "x", ResourceID: 1, RequesterID: 9,
		Start: base.Add(time.Hour), End: base.Add(3 * time.Hour),
		Status: entities.BookingStatusApproved,
	})
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("expected ErrBookingConflict, got %v", err)
	}

	// Same window on another resource is fine.
	if _, err := repo.Create(entities.Booking{
		Reference: "y", ResourceID: 3, RequesterID: 9,
		Start: base.Add(time.Hour), End: base.Add(3 * time.Hour),
		Status: entities.BookingStatusApproved,
	}); err != nil {
		t.Fatalf("different resource must not conflict: %v", err)
	}
}

func TestMemoryCreateAllowsOverlapWithInactive(t *testing.T) {
	repo, base := fillBookings(t)

	active, _ := repo.ActiveForResource(1)
	if err := repo.UpdateStatus(active[0].ID, entities.BookingStatusRejected); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.Create(entities.Booking{
		Reference: "x", ResourceID: 1, RequesterID: 9,
		Start: base, End: base.Add(2 * time.Hour),
		Status: entities.BookingStatusApproved,
	}); err != nil {
		t.Fatalf("rejected booking must not block: %v", err)
	}
}

func TestMemoryGetByIDNotFound(t *testing.T) {
	repo, _ := fillBookings(t)

	if _, err := repo.GetByID(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryCompleteEnded(t *testing.T) {
	repo, base := fillBookings(t)

	n, err := repo.CompleteEnded(base.Add(6 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	// Both approved bookings have ended by then; the pending one is untouched.
	if n != 2 {
		t.Fatalf("expected 2 completions, got %d", n)
	}

	active, _ := repo.ActiveForResource(1)
	if len(active) != 1 || active[0].Status != entities.BookingStatusPending {
		t.Fatalf("expected only the pending booking to stay active, got %+v", active)
	}
}

func TestMemoryUpdateKeepsAdmissionModeWhenOmitted(t *testing.T) {
	repo := NewMemoryResourceRepository()
	repo.Put(entities.Resource{
		ID: 1, OwnerID: 50, Title: "Recording Studio",
		AdmissionMode: entities.AdmissionModeRestricted, Status: entities.ResourceStatusPublished,
	})

	// An update without an admission mode must not reset it.
	if err := repo.Update(1, entities.ResourceRequest{Title: "Recording Studio B"}); err != nil {
		t.Fatal(err)
	}

	res, err := repo.GetByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Title != "Recording Studio B" {
		t.Fatalf("expected updated title, got %q", res.Title)
	}
	if res.AdmissionMode != entities.AdmissionModeRestricted {
		t.Fatalf("omitted admission mode must be preserved, got %q", res.AdmissionMode)
	}

	// An explicit mode still wins.
	if err := repo.Update(1, entities.ResourceRequest{Title: "Recording Studio B", AdmissionMode: entities.AdmissionModeOpen}); err != nil {
		t.Fatal(err)
	}
	res, _ = repo.GetByID(1)
	if res.AdmissionMode != entities.AdmissionModeOpen {
		t.Fatalf("explicit admission mode must be applied, got %q", res.AdmissionMode)
	}
}

func TestMemoryWaitlistDuplicate(t *testing.T) {
	repo := NewMemoryWaitlistRepository()

	if err := repo.Enroll(entities.WaitlistEntry{ResourceID: 1, UserID: 7}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Enroll(entities.WaitlistEntry{ResourceID: 1, UserID: 7}); !errors.Is(err, ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
	// Same user on another resource is a separate entry.
	if err := repo.Enroll(entities.WaitlistEntry{ResourceID: 2, UserID: 7}); err != nil {
		t.Fatalf("enrollment on another resource: %v", err)
	}
}
