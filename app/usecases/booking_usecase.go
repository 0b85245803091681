package usecases

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
	"github.com/mytsparks/Campus-Resource-Hub/app/repositories"
)

type BookingUsecase interface {
	// RequestBooking runs the admission decision for one resource window.
	// Conflicts and invalid intervals come back inside the AdmissionResult;
	// the error return is reserved for storage failures.
	RequestBooking(req entities.BookingRequest, requesterID int) (entities.AdmissionResult, error)
	UpdateStatus(req entities.UpdateBookingStatusRequest) (entities.Booking, error)
	GetByID(id int) (entities.Booking, error)
	ListForRequester(userID int) ([]entities.Booking, error)
	GetResourceSchedule(resourceID int) (entities.Resource, []entities.ResourceSchedule, error)
}

type bookingUsecase struct {
	bookingRepo  repositories.BookingRepository
	resourceRepo repositories.ResourceRepository
	waitlistRepo repositories.WaitlistRepository
	notifier     Notifier
	locks        *resourceLocks
}

func NewBookingUsecase(
	bookingRepo repositories.BookingRepository,
	resourceRepo repositories.ResourceRepository,
	waitlistRepo repositories.WaitlistRepository,
	notifier Notifier,
) BookingUsecase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &bookingUsecase{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		waitlistRepo: waitlistRepo,
		notifier:     notifier,
		locks:        newResourceLocks(),
	}
}

// Legal status transitions. Rejected, cancelled and completed are
// terminal as far as this engine is concerned.
var statusTransitions = map[string][]string{
	entities.BookingStatusPending:  {entities.BookingStatusApproved, entities.BookingStatusRejected, entities.BookingStatusCancelled},
	entities.BookingStatusApproved: {entities.BookingStatusCancelled, entities.BookingStatusCompleted},
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (u *bookingUsecase) RequestBooking(req entities.BookingRequest, requesterID int) (entities.AdmissionResult, error) {
	if !req.End.After(req.Start) {
		return entities.AdmissionResult{
			Outcome: entities.AdmissionInvalid,
			Reason:  entities.ReasonInvalidInterval,
		}, nil
	}

	resource, err := u.resourceRepo.GetByID(req.ResourceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return entities.AdmissionResult{}, &UseCaseError{Code: http.StatusNotFound, Message: "resource not found"}
		}
		return entities.AdmissionResult{}, err
	}

	result, err := u.admit(resource, requesterID, req.Start, req.End)
	if err != nil {
		return entities.AdmissionResult{}, err
	}

	if result.Outcome == entities.AdmissionRejected {
		u.notifier.BookingRejected(resource, requesterID, entities.Window{Start: req.Start, End: req.End}, req.Message)
	}
	return result, nil
}

// admit holds the per-resource lock across the conflict check and the
// insert so concurrent requests for the same resource are linearized.
// The repository re-checks inside its transaction as well, so a second
// process racing on the same database still cannot double-book.
func (u *bookingUsecase) admit(resource entities.Resource, requesterID int, start, end time.Time) (entities.AdmissionResult, error) {
	lock := u.locks.get(resource.ID)
	lock.Lock()
	defer lock.Unlock()

	active, err := u.bookingRepo.ActiveForResource(resource.ID)
	if err != nil {
		return entities.AdmissionResult{}, err
	}

	if conflicting, found := findConflict(active, start, end); found {
		return entities.AdmissionResult{
			Outcome:  entities.AdmissionRejected,
			Reason:   entities.ReasonConflictDetected,
			Conflict: &entities.Window{Start: conflicting.Start, End: conflicting.End},
		}, nil
	}

	status := entities.BookingStatusPending
	if resource.AutoApproves() {
		status = entities.BookingStatusApproved
	}

	created, err := u.bookingRepo.Create(entities.Booking{
		Reference:   uuid.NewString(),
		ResourceID:  resource.ID,
		RequesterID: requesterID,
		Start:       start,
		End:         end,
		Status:      status,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrBookingConflict) {
			return entities.AdmissionResult{
				Outcome: entities.AdmissionRejected,
				Reason:  entities.ReasonConflictDetected,
			}, nil
		}
		return entities.AdmissionResult{}, err
	}

	return entities.AdmissionResult{
		Outcome: entities.AdmissionCreated,
		Booking: &created,
	}, nil
}

func (u *bookingUsecase) UpdateStatus(req entities.UpdateBookingStatusRequest) (entities.Booking, error) {
	current, err := u.bookingRepo.GetByID(req.BookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return entities.Booking{}, &UseCaseError{Code: http.StatusNotFound, Message: "booking not found"}
		}
		return entities.Booking{}, err
	}

	if !transitionAllowed(current.Status, req.Status) {
		return entities.Booking{}, &UseCaseError{
			Code:    http.StatusForbidden,
			Message: "cannot change a " + current.Status + " booking to " + req.Status,
		}
	}

	if err := u.bookingRepo.UpdateStatus(current.ID, req.Status); err != nil {
		return entities.Booking{}, err
	}
	current.Status = req.Status

	// A window just opened up; give waitlisted users a shot at it.
	if !entities.IsActiveBookingStatus(req.Status) && req.Status != entities.BookingStatusCompleted {
		u.promoteFromWaitlist(current)
	}

	return current, nil
}

// promoteFromWaitlist re-runs admission for waitlisted users in FIFO
// order after a booking freed its window, stopping at the first success.
// Entries without a preferred window, or whose preference does not touch
// the freed window, keep their place in line.
func (u *bookingUsecase) promoteFromWaitlist(freed entities.Booking) {
	resource, err := u.resourceRepo.GetByID(freed.ResourceID)
	if err != nil {
		log.Printf("waitlist promotion: resource %d lookup failed: %v", freed.ResourceID, err)
		return
	}

	entries, err := u.waitlistRepo.ListFor(freed.ResourceID)
	if err != nil {
		log.Printf("waitlist promotion: listing resource %d failed: %v", freed.ResourceID, err)
		return
	}

	freedWindow := entities.Window{Start: freed.Start, End: freed.End}

	for _, entry := range entries {
		window, ok := entry.PreferredWindow()
		if !ok || !window.End.After(window.Start) {
			continue
		}
		if !window.Overlaps(freedWindow) {
			continue
		}

		result, err := u.admit(resource, entry.UserID, window.Start, window.End)
		if err != nil {
			log.Printf("waitlist promotion: admission for user %d failed: %v", entry.UserID, err)
			return
		}
		if result.Outcome != entities.AdmissionCreated {
			continue
		}

		if _, err := u.waitlistRepo.Remove(entry.ResourceID, entry.UserID); err != nil {
			log.Printf("waitlist promotion: removing entry (%d,%d) failed: %v", entry.ResourceID, entry.UserID, err)
		}
		u.notifier.WaitlistPromoted(resource, *result.Booking)

		log.Printf("promoted user %d from waitlist on resource %d (booking %s)", entry.UserID, resource.ID, result.Booking.Reference)
		return
	}
}

func (u *bookingUsecase) GetByID(id int) (entities.Booking, error) {
	booking, err := u.bookingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return entities.Booking{}, &UseCaseError{Code: http.StatusNotFound, Message: "booking not found"}
		}
		return entities.Booking{}, err
	}
	return booking, nil
}

func (u *bookingUsecase) ListForRequester(userID int) ([]entities.Booking, error) {
	return u.bookingRepo.ListForRequester(userID)
}

func (u *bookingUsecase) GetResourceSchedule(resourceID int) (entities.Resource, []entities.ResourceSchedule, error) {
	resource, err := u.resourceRepo.GetByID(resourceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return entities.Resource{}, nil, &UseCaseError{Code: http.StatusNotFound, Message: "resource not found"}
		}
		return entities.Resource{}, nil, err
	}

	active, err := u.bookingRepo.ActiveForResource(resourceID)
	if err != nil {
		return entities.Resource{}, nil, err
	}

	schedules := make([]entities.ResourceSchedule, 0, len(active))
	for _, b := range active {
		schedules = append(schedules, entities.ResourceSchedule{
			BookingID: b.ID,
			Start:     b.Start,
			End:       b.End,
			Status:    b.Status,
		})
	}
	return resource, schedules, nil
}
