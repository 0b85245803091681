package usecases

import (
	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
)

// Notifier delivers the side effects the admission engine delegates:
// telling a resource owner about a rejected attempt and telling a
// waitlisted user their booking went through. Implementations must not
// block the caller.
type Notifier interface {
	BookingRejected(resource entities.Resource, requesterID int, window entities.Window, message string)
	WaitlistPromoted(resource entities.Resource, booking entities.Booking)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) BookingRejected(entities.Resource, int, entities.Window, string) {}
func (NopNotifier) WaitlistPromoted(entities.Resource, entities.Booking)            {}
