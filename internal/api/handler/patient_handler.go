package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caresync/clinic-system/internal/core/ports"
)

// PatientHandler handles HTTP requests for patient records.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

type createPatientRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,len=10"`
	Gender     string `json:"gender"`
	BloodGroup string `json:"blood_group"`
	Address    string `json:"address"`
}

type updatePatientRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone" validate:"omitempty,len=10"`
	Gender     *string `json:"gender"`
	BloodGroup *string `json:"blood_group"`
	Address    *string `json:"address"`
	Status     *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// Create handles POST /patients.
func (h *PatientHandler) Create(c echo.Context) error {
	var req createPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreatePatientInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Gender:     req.Gender,
		BloodGroup: req.BloodGroup,
		Address:    req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /patients.
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

// Update handles PUT /patients/:id.
func (h *PatientHandler) Update(c echo.Context) error {
	var req updatePatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PatientUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Gender:     req.Gender,
		BloodGroup: req.BloodGroup,
		Address:    req.Address,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
