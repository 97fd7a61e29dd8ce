package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caresync/clinic-system/internal/core/ports"
)

// StaffHandler handles admin-facing doctor and nurse account management.
// No request payload carries a role; each endpoint assigns it
// server-side.
type StaffHandler struct {
	service ports.StaffService
}

func NewStaffHandler(service ports.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

type createStaffRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password"`
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"omitempty,len=10"`
	Specialty     string `json:"specialty"`
	DepartmentID  string `json:"department_id"`
	Experience    string `json:"experience"`
	Qualification string `json:"qualification"`
	Status        string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type updateDoctorRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone" validate:"omitempty,len=10"`
	Specialty     *string `json:"specialty"`
	DepartmentID  *string `json:"department_id"`
	Experience    *string `json:"experience"`
	Qualification *string `json:"qualification"`
	Status        *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (h *StaffHandler) staffInput(req createStaffRequest) ports.CreateStaffInput {
	return ports.CreateStaffInput{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		Phone:         req.Phone,
		Specialty:     req.Specialty,
		DepartmentID:  req.DepartmentID,
		Experience:    req.Experience,
		Qualification: req.Qualification,
		Status:        req.Status,
	}
}

// CreateDoctor handles POST /doctors.
func (h *StaffHandler) CreateDoctor(c echo.Context) error {
	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateDoctor(c.Request().Context(), h.staffInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// CreateNurse handles POST /nurses.
func (h *StaffHandler) CreateNurse(c echo.Context) error {
	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateNurse(c.Request().Context(), h.staffInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// ListDoctors handles GET /doctors.
func (h *StaffHandler) ListDoctors(c echo.Context) error {
	doctors, err := h.service.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// UpdateDoctor handles PUT /doctors/:id — including the status switch
// that gates doctor logins.
func (h *StaffHandler) UpdateDoctor(c echo.Context) error {
	var req updateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateDoctor(c.Request().Context(), c.Param("id"), ports.UserUpdate{
		Name:          req.Name,
		Phone:         req.Phone,
		Specialty:     req.Specialty,
		DepartmentID:  req.DepartmentID,
		Experience:    req.Experience,
		Qualification: req.Qualification,
		Status:        req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// ChangePassword handles PUT /doctors/password for the acting doctor.
func (h *StaffHandler) ChangePassword(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ChangePassword(c.Request().Context(), principal.ID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password updated"})
}
