package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentPlanned   AppointmentStatus = "planifie"
	AppointmentConfirmed AppointmentStatus = "confirme"
	AppointmentCancelled AppointmentStatus = "annule"
	AppointmentCompleted AppointmentStatus = "termine"
)

// ParseAppointmentStatus validates an appointment status received at a boundary.
func ParseAppointmentStatus(value string) (AppointmentStatus, error) {
	switch AppointmentStatus(value) {
	case AppointmentPlanned, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return AppointmentStatus(value), nil
	}
	return "", &ValidationError{Field: "statut", Value: value}
}

// Appointment links a patient profile and a professional profile at a
// scheduled time.
type Appointment struct {
	BaseModel
	PatientID       string            `gorm:"size:36;index" json:"patientId"`
	ProfessionnelID string            `gorm:"size:36;index" json:"professionnelId"`
	DateRendezVous  time.Time         `json:"dateRendezVous"`
	Statut          AppointmentStatus `gorm:"size:20;default:'planifie'" json:"statut"`
	Motif           *string           `gorm:"size:255" json:"motif,omitempty"`
	Notes           *string           `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Patient       Profile `gorm:"foreignKey:PatientID" json:"patient"`
	Professionnel Profile `gorm:"foreignKey:ProfessionnelID" json:"professionnel"`
}
