package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caresync/clinic-system/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for departments.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

type createDepartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
}

type updateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description" validate:"omitempty,min=10"`
}

// Create handles POST /departments.
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /departments — sorted by name.
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

// Update handles PUT /departments/:id.
func (h *DepartmentHandler) Update(c echo.Context) error {
	var req updateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.DepartmentUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /departments/:id.
func (h *DepartmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "department deleted"})
}
