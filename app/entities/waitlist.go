package entities

import (
	"time"
)

// Waitlist enrollment outcomes. A repeated enrollment is informational,
// not an error.
const (
	WaitlistEnrolled        = "enrolled"
	WaitlistAlreadyEnrolled = "already_enrolled"
)

// WaitlistEntry is a user's standing request for a resource. Entries are
// served first-come-first-served by CreatedAt. The preferred window is
// optional; promotion only considers entries that carry one.
type WaitlistEntry struct {
	ResourceID     int        `json:"resourceID"`
	UserID         int        `json:"userID"`
	PreferredStart *time.Time `json:"preferredStart,omitempty"`
	PreferredEnd   *time.Time `json:"preferredEnd,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// PreferredWindow returns the entry's preferred window, if both ends are set.
func (e WaitlistEntry) PreferredWindow() (Window, bool) {
	if e.PreferredStart == nil || e.PreferredEnd == nil {
		return Window{}, false
	}
	return Window{Start: *e.PreferredStart, End: *e.PreferredEnd}, true
}

// ==========================================
// 1. REQUEST MODELS
// ==========================================

type WaitlistRequest struct {
	ResourceID     int        `json:"resourceID" validate:"required"`
	PreferredStart *time.Time `json:"preferredStart"`
	PreferredEnd   *time.Time `json:"preferredEnd"`
}

// ==========================================
// 2. RESPONSE MODELS
// ==========================================

type WaitlistListResponse struct {
	Message   string          `json:"message"`
	Data      []WaitlistEntry `json:"data"`
	TotalData int             `json:"totalData"`
}
