package app

import (
	"github.com/labstack/echo/v4"

	"github.com/mytsparks/Campus-Resource-Hub/app/handlers"
)

func RegisterRoutes(
	e *echo.Echo,
	resourceHandler *handlers.ResourceHandler,
	bookingHandler *handlers.BookingHandler,
	waitlistHandler *handlers.WaitlistHandler,
	authMiddleware echo.MiddlewareFunc,
) {
	authGroup := e.Group("")
	authGroup.Use(authMiddleware)

	// Resource routes
	authGroup.POST("/resources", resourceHandler.CreateResource)
	authGroup.GET("/resources", resourceHandler.GetResources)
	authGroup.GET("/resources/:id", resourceHandler.GetResourceByID)
	authGroup.PUT("/resources/:id", resourceHandler.UpdateResource)
	authGroup.POST("/resources/:id/status", resourceHandler.UpdateResourceStatus)
	authGroup.GET("/resources/:id/schedule", bookingHandler.GetResourceSchedule)

	// Booking routes
	authGroup.POST("/bookings", bookingHandler.RequestBooking)
	authGroup.GET("/bookings", bookingHandler.GetMyBookings)
	authGroup.GET("/bookings/:id", bookingHandler.GetBookingByID)
	authGroup.POST("/bookings/status", bookingHandler.UpdateBookingStatus)

	// Waitlist routes
	authGroup.POST("/waitlist", waitlistHandler.JoinWaitlist)
	authGroup.GET("/waitlist/:resourceID", waitlistHandler.GetWaitlist)
	authGroup.DELETE("/waitlist/:resourceID", waitlistHandler.LeaveWaitlist)
}
