package entities

import (
	"time"
)

// Booking statuses. A booking only blocks other requests while it is
// pending or approved.
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusRejected  = "rejected"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// IsActiveBookingStatus reports whether a booking in this status counts
// for conflict detection.
func IsActiveBookingStatus(status string) bool {
	return status == BookingStatusPending || status == BookingStatusApproved
}

// Booking is one claim on a resource for the half-open window [Start, End).
type Booking struct {
	ID          int       `json:"id"`
	Reference   string    `json:"reference"`
	ResourceID  int       `json:"resourceID"`
	RequesterID int       `json:"requesterID"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ==========================================
// 1. REQUEST MODELS
// ==========================================

type BookingRequest struct {
	ResourceID int       `json:"resourceID" validate:"required"`
	Start      time.Time `json:"start" validate:"required"`
	End        time.Time `json:"end" validate:"required"`
	// Optional note forwarded to the resource owner.
	Message string `json:"message"`
}

type UpdateBookingStatusRequest struct {
	BookingID int    `json:"bookingID" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=approved rejected cancelled completed"`
}

// ==========================================
// 2. ADMISSION RESULT
// ==========================================

// Admission outcomes.
const (
	AdmissionCreated  = "created"
	AdmissionRejected = "rejected"
	AdmissionInvalid  = "invalid"
)

// Admission reasons, set on rejected/invalid outcomes.
const (
	ReasonConflictDetected = "conflict_detected"
	ReasonInvalidInterval  = "invalid_interval"
)

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether two half-open windows intersect. Adjacent
// windows (one ends exactly when the other starts) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// AdmissionResult is the outcome of a booking request. A conflict is an
// expected business result, not an error: callers branch on Outcome to
// decide whether to offer the waitlist.
type AdmissionResult struct {
	Outcome  string   `json:"outcome"`
	Booking  *Booking `json:"booking,omitempty"`
	Reason   string   `json:"reason,omitempty"`
	Conflict *Window  `json:"conflictingWindow,omitempty"`
}

// ==========================================
// 3. RESPONSE MODELS
// ==========================================

type BookingListResponse struct {
	Message   string    `json:"message"`
	Data      []Booking `json:"data"`
	TotalData int       `json:"totalData"`
}
