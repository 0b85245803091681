package repositories

import "errors"

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBookingConflict is returned by BookingRepository.Create when the
	// insert would overlap an active booking on the same resource. The
	// Postgres store surfaces it from the range-exclusion constraint, the
	// in-memory store from its own scan.
	ErrBookingConflict = errors.New("booking range conflict")

	// ErrAlreadyEnrolled is returned by WaitlistRepository.Enroll when the
	// (resource, user) pair is already on the waitlist.
	ErrAlreadyEnrolled = errors.New("already enrolled")
)
