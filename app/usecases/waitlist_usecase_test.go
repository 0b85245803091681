package usecases

import (
	"testing"
	"time"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
	"github.com/mytsparks/Campus-Resource-Hub/app/repositories"
)

func newWaitlistFixture() (WaitlistUsecase, *repositories.MemoryWaitlistRepository) {
	resources := repositories.NewMemoryResourceRepository()
	resources.Put(entities.Resource{
		ID: 1, OwnerID: 50, Title: "Study Room 101",
		AdmissionMode: entities.AdmissionModeOpen, Status: entities.ResourceStatusPublished,
	})

	repo := repositories.NewMemoryWaitlistRepository()
	return NewWaitlistUsecase(repo, resources), repo
}

func TestEnrollIsIdempotent(t *testing.T) {
	usecase, repo := newWaitlistFixture()

	outcome, err := usecase.Enroll(entities.WaitlistRequest{ResourceID: 1}, 7)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != entities.WaitlistEnrolled {
		t.Fatalf("expected enrolled, got %s", outcome)
	}

	outcome, err = usecase.Enroll(entities.WaitlistRequest{ResourceID: 1}, 7)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != entities.WaitlistAlreadyEnrolled {
		t.Fatalf("expected already enrolled, got %s", outcome)
	}

	entries, _ := repo.ListFor(1)
	if len(entries) != 1 {
		t.Fatalf("double enrollment must not grow the list, got %d entries", len(entries))
	}
}

func TestEnrollUnknownResource(t *testing.T) {
	usecase, _ := newWaitlistFixture()

	_, err := usecase.Enroll(entities.WaitlistRequest{ResourceID: 999}, 7)
	ucErr, ok := err.(*UseCaseError)
	if !ok || ucErr.Code != 404 {
		t.Fatalf("expected 404 usecase error, got %v", err)
	}
}

func TestEnrollValidatesPreferredWindow(t *testing.T) {
	usecase, _ := newWaitlistFixture()
	start := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

	// Half a window.
	_, err := usecase.Enroll(entities.WaitlistRequest{ResourceID: 1, PreferredStart: &start}, 7)
	if ucErr, ok := err.(*UseCaseError); !ok || ucErr.Code != 400 {
		t.Fatalf("expected 400 for half a preferred window, got %v", err)
	}

	// Inverted window.
	end := start.Add(-time.Hour)
	_, err = usecase.Enroll(entities.WaitlistRequest{ResourceID: 1, PreferredStart: &start, PreferredEnd: &end}, 7)
	if ucErr, ok := err.(*UseCaseError); !ok || ucErr.Code != 400 {
		t.Fatalf("expected 400 for inverted preferred window, got %v", err)
	}
}

func TestListForIsFIFO(t *testing.T) {
	usecase, repo := newWaitlistFixture()

	base := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	for i, userID := range []int{22, 20, 21} {
		if err := repo.Enroll(entities.WaitlistEntry{
			ResourceID: 1,
			UserID:     userID,
			CreatedAt:  base.Add(time.Duration(3-i) * time.Minute),
		}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := usecase.ListFor(1)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{21, 20, 22} // ascending CreatedAt
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, userID := range want {
		if entries[i].UserID != userID {
			t.Fatalf("position %d: expected user %d, got %d", i, userID, entries[i].UserID)
		}
	}
}

func TestWithdraw(t *testing.T) {
	usecase, _ := newWaitlistFixture()

	if _, err := usecase.Enroll(entities.WaitlistRequest{ResourceID: 1}, 7); err != nil {
		t.Fatal(err)
	}

	removed, err := usecase.Withdraw(1, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Fatal("expected an entry to be removed")
	}

	removed, err = usecase.Withdraw(1, 7)
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Fatal("second withdraw must find nothing")
	}
}
