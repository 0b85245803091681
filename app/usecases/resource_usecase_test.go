package usecases

import (
	"testing"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
	"github.com/mytsparks/Campus-Resource-Hub/app/repositories"
)

func newResourceFixture(status string) (ResourceUsecase, *repositories.MemoryResourceRepository) {
	repo := repositories.NewMemoryResourceRepository()
	repo.Put(entities.Resource{
		ID: 1, OwnerID: 50, Title: "Study Room 101",
		AdmissionMode: entities.AdmissionModeOpen, Status: status,
	})
	return NewResourceUsecase(repo), repo
}

func TestUpdateResourceStatusLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"draft to published", entities.ResourceStatusDraft, entities.ResourceStatusPublished, true},
		{"published to archived", entities.ResourceStatusPublished, entities.ResourceStatusArchived, true},
		{"draft to archived", entities.ResourceStatusDraft, entities.ResourceStatusArchived, false},
		{"published to draft", entities.ResourceStatusPublished, entities.ResourceStatusDraft, false},
		{"archived to published", entities.ResourceStatusArchived, entities.ResourceStatusPublished, false},
		{"archived to draft", entities.ResourceStatusArchived, entities.ResourceStatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase, repo := newResourceFixture(tt.from)

			err := usecase.UpdateStatus(1, 50, tt.to)

			if tt.allowed {
				if err != nil {
					t.Fatalf("transition %s -> %s should be allowed: %v", tt.from, tt.to, err)
				}
				res, _ := repo.GetByID(1)
				if res.Status != tt.to {
					t.Fatalf("expected status %s, got %s", tt.to, res.Status)
				}
				return
			}

			ucErr, ok := err.(*UseCaseError)
			if !ok {
				t.Fatalf("transition %s -> %s should be forbidden, got %v", tt.from, tt.to, err)
			}
			if ucErr.Code != 403 {
				t.Fatalf("expected 403, got %d", ucErr.Code)
			}
			res, _ := repo.GetByID(1)
			if res.Status != tt.from {
				t.Fatalf("forbidden transition must not change the status, got %s", res.Status)
			}
		})
	}
}

func TestUpdateResourceStatusSameStatusIsNoOp(t *testing.T) {
	usecase, _ := newResourceFixture(entities.ResourceStatusArchived)

	if err := usecase.UpdateStatus(1, 50, entities.ResourceStatusArchived); err != nil {
		t.Fatalf("setting the current status must be a no-op: %v", err)
	}
}

func TestUpdateResourceStatusOwnerOnly(t *testing.T) {
	usecase, _ := newResourceFixture(entities.ResourceStatusDraft)

	err := usecase.UpdateStatus(1, 99, entities.ResourceStatusPublished)
	ucErr, ok := err.(*UseCaseError)
	if !ok || ucErr.Code != 403 {
		t.Fatalf("expected 403 for a non-owner, got %v", err)
	}
}
