package usecases

import (
	"errors"
	"net/http"
	"time"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
	"github.com/mytsparks/Campus-Resource-Hub/app/repositories"
)

type WaitlistUsecase interface {
	// Enroll adds the user to the resource's waitlist. Returns
	// WaitlistEnrolled or WaitlistAlreadyEnrolled; enrolling twice is not
	// an error.
	Enroll(req entities.WaitlistRequest, userID int) (string, error)
	ListFor(resourceID int) ([]entities.WaitlistEntry, error)
	Withdraw(resourceID, userID int) (bool, error)
}

type waitlistUsecase struct {
	waitlistRepo repositories.WaitlistRepository
	resourceRepo repositories.ResourceRepository
}

func NewWaitlistUsecase(waitlistRepo repositories.WaitlistRepository, resourceRepo repositories.ResourceRepository) WaitlistUsecase {
	return &waitlistUsecase{waitlistRepo: waitlistRepo, resourceRepo: resourceRepo}
}

func (u *waitlistUsecase) Enroll(req entities.WaitlistRequest, userID int) (string, error) {
	if (req.PreferredStart == nil) != (req.PreferredEnd == nil) {
		return "", &UseCaseError{Code: http.StatusBadRequest, Message: "preferred start and end must be given together"}
	}
	if req.PreferredStart != nil && !req.PreferredEnd.After(*req.PreferredStart) {
		return "", &UseCaseError{Code: http.StatusBadRequest, Message: "preferred end must be after preferred start"}
	}

	if _, err := u.resourceRepo.GetByID(req.ResourceID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", &UseCaseError{Code: http.StatusNotFound, Message: "resource not found"}
		}
		return "", err
	}

	err := u.waitlistRepo.Enroll(entities.WaitlistEntry{
		ResourceID:     req.ResourceID,
		UserID:         userID,
		PreferredStart: req.PreferredStart,
		PreferredEnd:   req.PreferredEnd,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyEnrolled) {
			return entities.WaitlistAlreadyEnrolled, nil
		}
		return "", err
	}
	return entities.WaitlistEnrolled, nil
}

func (u *waitlistUsecase) ListFor(resourceID int) ([]entities.WaitlistEntry, error) {
	if _, err := u.resourceRepo.GetByID(resourceID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &UseCaseError{Code: http.StatusNotFound, Message: "resource not found"}
		}
		return nil, err
	}
	return u.waitlistRepo.ListFor(resourceID)
}

func (u *waitlistUsecase) Withdraw(resourceID, userID int) (bool, error) {
	return u.waitlistRepo.Remove(resourceID, userID)
}
