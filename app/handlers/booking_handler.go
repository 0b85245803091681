package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
	"github.com/mytsparks/Campus-Resource-Hub/app/middleware"
	"github.com/mytsparks/Campus-Resource-Hub/app/usecases"
)

type BookingHandler struct {
	bookingUsecase usecases.BookingUsecase
}

func NewBookingHandler(bookingUsecase usecases.BookingUsecase) *BookingHandler {
	return &BookingHandler{bookingUsecase: bookingUsecase}
}

// RequestBooking godoc
// @Summary Request a booking
// @Description Try to book a resource for [start, end). Returns the created booking, a conflict rejection with the blocking window, or an invalid-interval error.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body entities.BookingRequest true "Booking request body"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /bookings [post]
func (h *BookingHandler) RequestBooking(c echo.Context) error {
	var req entities.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	requesterID := middleware.TokenUserID(c)
	result, err := h.bookingUsecase.RequestBooking(req, requesterID)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	switch result.Outcome {
	case entities.AdmissionCreated:
		return c.JSON(http.StatusCreated, echo.Map{
			"message": "booking " + result.Booking.Status,
			"data":    result.Booking,
		})
	case entities.AdmissionRejected:
		return c.JSON(http.StatusConflict, echo.Map{
			"message":           "this time slot is already booked",
			"reason":            result.Reason,
			"conflictingWindow": result.Conflict,
			"waitlistAvailable": true,
		})
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "end time must be after start time",
			"reason":  result.Reason,
		})
	}
}

// UpdateBookingStatus godoc
// @Summary Update booking status
// @Description Approve, reject, cancel or complete a booking. Approval and rejection require staff or admin; cancellation requires the requester or staff.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body entities.UpdateBookingStatusRequest true "Status update request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /bookings/status [post]
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	var req entities.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := h.authorizeStatusChange(c, req); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	booking, err := h.bookingUsecase.UpdateStatus(req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "update status success", "data": booking})
}

// Who may trigger which transition is the delivery layer's concern; the
// usecase only enforces the state machine itself.
func (h *BookingHandler) authorizeStatusChange(c echo.Context, req entities.UpdateBookingStatusRequest) error {
	role := middleware.TokenRole(c)
	isStaff := role == middleware.RoleStaff || role == middleware.RoleAdmin

	switch req.Status {
	case entities.BookingStatusApproved, entities.BookingStatusRejected, entities.BookingStatusCompleted:
		if !isStaff {
			return &usecases.UseCaseError{Code: http.StatusForbidden, Message: "staff or admin role required"}
		}
	case entities.BookingStatusCancelled:
		if isStaff {
			return nil
		}
		booking, err := h.bookingUsecase.GetByID(req.BookingID)
		if err != nil {
			return err
		}
		if booking.RequesterID != middleware.TokenUserID(c) {
			return &usecases.UseCaseError{Code: http.StatusForbidden, Message: "only the requester may cancel"}
		}
	}
	return nil
}

// GetBookingByID godoc
// @Summary Booking detail
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBookingByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid booking id"})
	}

	booking, err := h.bookingUsecase.GetByID(id)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": booking})
}

// GetMyBookings godoc
// @Summary List the authenticated user's bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} entities.BookingListResponse
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /bookings [get]
func (h *BookingHandler) GetMyBookings(c echo.Context) error {
	bookings, err := h.bookingUsecase.ListForRequester(middleware.TokenUserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.BookingListResponse{
		Message:   "success",
		Data:      bookings,
		TotalData: len(bookings),
	})
}

// GetResourceSchedule godoc
// @Summary Active bookings on a resource timeline
// @Tags Booking
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} entities.ResourceScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /resources/{id}/schedule [get]
func (h *BookingHandler) GetResourceSchedule(c echo.Context) error {
	resourceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid resource id"})
	}

	resource, schedules, err := h.bookingUsecase.GetResourceSchedule(resourceID)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.ResourceScheduleResponse{
		Message:  "success",
		Resource: resource,
		Data:     schedules,
	})
}
