package entities

import (
	"time"
)

// Resource statuses.
const (
	ResourceStatusDraft     = "draft"
	ResourceStatusPublished = "published"
	ResourceStatusArchived  = "archived"
)

// Admission modes. Only an open, published resource auto-approves new
// bookings; every other combination admits as pending.
const (
	AdmissionModeOpen       = "open"
	AdmissionModeRestricted = "restricted"
)

// Resource is a bookable entity (room, equipment, time slot).
type Resource struct {
	ID            int       `json:"id"`
	OwnerID       int       `json:"ownerID"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Location      string    `json:"location"`
	Capacity      int       `json:"capacity"`
	AdmissionMode string    `json:"admissionMode"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AutoApproves reports whether a non-conflicting booking on this
// resource is admitted directly as approved.
func (r Resource) AutoApproves() bool {
	return r.AdmissionMode == AdmissionModeOpen && r.Status == ResourceStatusPublished
}

// ==========================================
// 1. REQUEST MODELS
// ==========================================

type ResourceRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	Capacity      int    `json:"capacity" validate:"omitempty,min=1"`
	AdmissionMode string `json:"admissionMode" validate:"omitempty,oneof=open restricted"`
}

type UpdateResourceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published archived"`
}

// ==========================================
// 2. RESPONSE MODELS
// ==========================================

type ResourceListResponse struct {
	Message   string     `json:"message"`
	Data      []Resource `json:"data"`
	Page      int        `json:"page"`
	PageSize  int        `json:"pageSize"`
	TotalData int        `json:"totalData"`
}

// ResourceSchedule is one occupied slot on a resource timeline.
type ResourceSchedule struct {
	BookingID int       `json:"bookingID"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
}

type ResourceScheduleResponse struct {
	Message  string             `json:"message"`
	Resource Resource           `json:"resource"`
	Data     []ResourceSchedule `json:"data"`
}
