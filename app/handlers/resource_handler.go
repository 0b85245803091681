package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
	"github.com/mytsparks/Campus-Resource-Hub/app/middleware"
	"github.com/mytsparks/Campus-Resource-Hub/app/usecases"
)

type ResourceHandler struct {
	resourceUsecase usecases.ResourceUsecase
}

func NewResourceHandler(resourceUsecase usecases.ResourceUsecase) *ResourceHandler {
	return &ResourceHandler{resourceUsecase: resourceUsecase}
}

// CreateResource godoc
// @Summary Create a resource
// @Description New resources start in draft; publish them via the status endpoint.
// @Tags Resource
// @Accept json
// @Produce json
// @Param request body entities.ResourceRequest true "Resource request body"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /resources [post]
func (h *ResourceHandler) CreateResource(c echo.Context) error {
	var req entities.ResourceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	resource, err := h.resourceUsecase.Create(middleware.TokenUserID(c), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "resource created", "data": resource})
}

// GetResources godoc
// @Summary List published resources
// @Tags Resource
// @Produce json
// @Param category query string false "Category"
// @Param location query string false "Location substring"
// @Param capacity query int false "Minimum capacity"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10)"
// @Success 200 {object} entities.ResourceListResponse
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /resources [get]
func (h *ResourceHandler) GetResources(c echo.Context) error {
	category := c.QueryParam("category")
	location := c.QueryParam("location")
	capacity, _ := strconv.Atoi(c.QueryParam("capacity"))
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	response, err := h.resourceUsecase.List(category, location, capacity, page, pageSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, response)
}

// GetResourceByID godoc
// @Summary Resource detail
// @Tags Resource
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResourceByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid resource id"})
	}

	resource, err := h.resourceUsecase.GetByID(id)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": resource})
}

// UpdateResource godoc
// @Summary Update a resource
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path int true "Resource ID"
// @Param request body entities.ResourceRequest true "Resource request body"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /resources/{id} [put]
func (h *ResourceHandler) UpdateResource(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid resource id"})
	}

	var req entities.ResourceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := h.resourceUsecase.Update(id, middleware.TokenUserID(c), req); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "resource updated"})
}

// UpdateResourceStatus godoc
// @Summary Change a resource's lifecycle status
// @Description Publish a draft or archive a published resource. The lifecycle only moves forward.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path int true "Resource ID"
// @Param request body entities.UpdateResourceStatusRequest true "Status update request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /resources/{id}/status [post]
func (h *ResourceHandler) UpdateResourceStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid resource id"})
	}

	var req entities.UpdateResourceStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := h.resourceUsecase.UpdateStatus(id, middleware.TokenUserID(c), req.Status); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
}
