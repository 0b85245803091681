package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
	"github.com/mytsparks/Campus-Resource-Hub/app/middleware"
	"github.com/mytsparks/Campus-Resource-Hub/app/usecases"
)

type WaitlistHandler struct {
	waitlistUsecase usecases.WaitlistUsecase
	resourceUsecase usecases.ResourceUsecase
}

func NewWaitlistHandler(waitlistUsecase usecases.WaitlistUsecase, resourceUsecase usecases.ResourceUsecase) *WaitlistHandler {
	return &WaitlistHandler{waitlistUsecase: waitlistUsecase, resourceUsecase: resourceUsecase}
}

// JoinWaitlist godoc
// @Summary Join a resource's waitlist
// @Description Enroll the authenticated user. Enrolling twice is reported, not rejected.
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param request body entities.WaitlistRequest true "Waitlist request body"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /waitlist [post]
func (h *WaitlistHandler) JoinWaitlist(c echo.Context) error {
	var req entities.WaitlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	outcome, err := h.waitlistUsecase.Enroll(req, middleware.TokenUserID(c))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	message := "enrolled on the waitlist"
	if outcome == entities.WaitlistAlreadyEnrolled {
		message = "already on the waitlist"
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message, "outcome": outcome})
}

// LeaveWaitlist godoc
// @Summary Withdraw from a resource's waitlist
// @Tags Waitlist
// @Produce json
// @Param resourceID path int true "Resource ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /waitlist/{resourceID} [delete]
func (h *WaitlistHandler) LeaveWaitlist(c echo.Context) error {
	resourceID, err := strconv.Atoi(c.Param("resourceID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid resource id"})
	}

	removed, err := h.waitlistUsecase.Withdraw(resourceID, middleware.TokenUserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	if !removed {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not on the waitlist"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "withdrawn from the waitlist"})
}

// GetWaitlist godoc
// @Summary List a resource's waitlist in FIFO order
// @Description Visible to the resource owner, staff and admins.
// @Tags Waitlist
// @Produce json
// @Param resourceID path int true "Resource ID"
// @Success 200 {object} entities.WaitlistListResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /waitlist/{resourceID} [get]
func (h *WaitlistHandler) GetWaitlist(c echo.Context) error {
	resourceID, err := strconv.Atoi(c.Param("resourceID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid resource id"})
	}

	role := middleware.TokenRole(c)
	if role != middleware.RoleStaff && role != middleware.RoleAdmin {
		resource, err := h.resourceUsecase.GetByID(resourceID)
		if err != nil {
			if e, ok := err.(*usecases.UseCaseError); ok {
				return c.JSON(e.Code, echo.Map{"message": e.Message})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
		}
		if resource.OwnerID != middleware.TokenUserID(c) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "not the resource owner"})
		}
	}

	entries, err := h.waitlistUsecase.ListFor(resourceID)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.WaitlistListResponse{
		Message:   "success",
		Data:      entries,
		TotalData: len(entries),
	})
}
