package handlers

import (
	"github.com/gin-gonic/gin"

	"magala-server/internal/middleware"
	"magala-server/internal/services"
	"magala-server/internal/utils"
)

// AppointmentHandler handles the caller's own appointments.
type AppointmentHandler struct {
	Appointments services.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments}
}

// GetAppointments lists the caller's appointments: professionals see the
// appointments they give, everyone else the appointments they booked.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	profile, exists := middleware.GetProfileFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointments, err := h.Appointments.ListForActor(c.Request.Context(), profile)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// BookAppointmentRequest represents the request body for booking.
type BookAppointmentRequest struct {
	ProfessionnelID string  `json:"professionnelId" binding:"required"`
	DateRendezVous  string  `json:"dateRendezVous" binding:"required"`
	Motif           *string `json:"motif"`
}

// BookAppointment books an appointment with an approved professional.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	profile, exists := middleware.GetProfileFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req BookAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Appointments.Book(c.Request.Context(), profile, services.BookingInput{
		ProfessionnelID: req.ProfessionnelID,
		DateRendezVous:  req.DateRendezVous,
		Motif:           req.Motif,
	})
	if err != nil {
		utils.FromError(c, err)
		return
	}

	utils.Created(c, "Appointment booked successfully", appointment)
}
