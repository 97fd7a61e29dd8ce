package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/caresync/clinic-system/internal/api/metrics"
	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointment operations.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type createAppointmentRequest struct {
	PatientID     string    `json:"patient_id" validate:"required"`
	DepartmentID  string    `json:"department_id" validate:"required"`
	DoctorID      string    `json:"doctor_id" validate:"required"`
	Status        string    `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
	Date          time.Time `json:"date" validate:"required"`
	Time          string    `json:"time" validate:"required"`
	ReservationID string    `json:"reservation_id" validate:"required"`
	Notes         string    `json:"notes"`
}

type updateAppointmentRequest struct {
	PatientID     *string    `json:"patient_id"`
	DepartmentID  *string    `json:"department_id"`
	DoctorID      *string    `json:"doctor_id"`
	Status        *string    `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
	Date          *time.Time `json:"date"`
	Time          *string    `json:"time"`
	ReservationID *string    `json:"reservation_id"`
	Notes         *string    `json:"notes"`
}

// Create handles POST /appointments — validates all three references
// before booking.
//
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment draft"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		PatientID:     req.PatientID,
		DepartmentID:  req.DepartmentID,
		DoctorID:      req.DoctorID,
		Status:        domain.AppointmentStatus(req.Status),
		Date:          req.Date,
		Time:          req.Time,
		ReservationID: req.ReservationID,
		Notes:         req.Notes,
	})
	if err != nil {
		recordReferenceFailures(err)
		return err
	}

	metrics.AppointmentsCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /appointments — doctors see only their own.
func (h *AppointmentHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	appointments, err := h.service.List(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// GetByID handles GET /appointments/:id.
func (h *AppointmentHandler) GetByID(c echo.Context) error {
	appointment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// Update handles PUT /appointments/:id — only references present in the
// payload are revalidated.
func (h *AppointmentHandler) Update(c echo.Context) error {
	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.AppointmentUpdate{
		PatientID:     req.PatientID,
		DepartmentID:  req.DepartmentID,
		DoctorID:      req.DoctorID,
		Date:          req.Date,
		Time:          req.Time,
		ReservationID: req.ReservationID,
		Notes:         req.Notes,
	}
	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		update.Status = &status
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		recordReferenceFailures(err)
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func recordReferenceFailures(err error) {
	if errors.Is(err, domain.ErrInvalidPatientRef) {
		metrics.ReferenceCheckFailuresTotal.WithLabelValues("patient").Inc()
	}
	if errors.Is(err, domain.ErrInvalidDepartmentRef) {
		metrics.ReferenceCheckFailuresTotal.WithLabelValues("department").Inc()
	}
	if errors.Is(err, domain.ErrInvalidDoctorRef) {
		metrics.ReferenceCheckFailuresTotal.WithLabelValues("doctor").Inc()
	}
}
