package services

import (
	"context"
	"time"

	"magala-server/internal/models"
	"magala-server/internal/repository"
)

// BookingInput carries the fields a patient supplies when booking an
// appointment.
type BookingInput struct {
	ProfessionnelID string
	DateRendezVous  string // RFC 3339
	Motif           *string
}

type AppointmentService interface {
	// ListForActor returns the actor's own appointments: the professional
	// side for professionals, the patient side for everyone else.
	ListForActor(ctx context.Context, actor *models.Profile) ([]models.Appointment, error)
	// Book creates an appointment between the actor and an approved
	// professional, starting in the planned state.
	Book(ctx context.Context, actor *models.Profile, input BookingInput) (*models.Appointment, error)
}

type appointmentService struct {
	appointments repository.AppointmentRepository
	profiles     repository.ProfileRepository
}

func NewAppointmentService(appointments repository.AppointmentRepository, profiles repository.ProfileRepository) AppointmentService {
	return &appointmentService{appointments: appointments, profiles: profiles}
}

func (s *appointmentService) ListForActor(ctx context.Context, actor *models.Profile) ([]models.Appointment, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	if actor.Role == models.RoleProfessionnel {
		return s.appointments.ListForProfessionnel(ctx, actor.ID)
	}
	return s.appointments.ListForPatient(ctx, actor.ID)
}

func (s *appointmentService) Book(ctx context.Context, actor *models.Profile, input BookingInput) (*models.Appointment, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	dateRendezVous, err := time.Parse(time.RFC3339, input.DateRendezVous)
	if err != nil {
		return nil, &models.ValidationError{Field: "date_rendez_vous", Value: input.DateRendezVous}
	}

	professionnel, err := s.profiles.FindByID(ctx, input.ProfessionnelID)
	if err != nil {
		return nil, err
	}
	if professionnel == nil ||
		professionnel.Role != models.RoleProfessionnel ||
		professionnel.StatutApprobation != models.ApprovalApproved {
		return nil, ErrProfessionnelUnavailable
	}

	appointment := &models.Appointment{
		PatientID:       actor.ID,
		ProfessionnelID: professionnel.ID,
		DateRendezVous:  dateRendezVous,
		Statut:          models.AppointmentPlanned,
		Motif:           input.Motif,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}
