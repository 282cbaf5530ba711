package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"magala-server/internal/models"
)

func appointmentFixture() (*fakeAppointmentRepo, *fakeProfileRepo, AppointmentService) {
	appointments := newFakeAppointmentRepo()
	profiles := newFakeProfileRepo()
	return appointments, profiles, NewAppointmentService(appointments, profiles)
}

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()
	patient := &models.Profile{ID: "patient-1", Role: models.RolePatient, StatutApprobation: models.ApprovalApproved}
	when := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)

	t.Run("with an approved professional", func(t *testing.T) {
		_, profiles, service := appointmentFixture()
		profiles.profiles["pro-1"] = &models.Profile{ID: "pro-1", Role: models.RoleProfessionnel, StatutApprobation: models.ApprovalApproved}

		motif := "Consultation de suivi"
		appointment, err := service.Book(ctx, patient, BookingInput{
			ProfessionnelID: "pro-1",
			DateRendezVous:  when,
			Motif:           &motif,
		})
		if err != nil {
			t.Fatalf("Book: %v", err)
		}
		if appointment.Statut != models.AppointmentPlanned {
			t.Errorf("statut = %q, want planifie", appointment.Statut)
		}
		if appointment.PatientID != "patient-1" || appointment.ProfessionnelID != "pro-1" {
			t.Errorf("participants = %s/%s", appointment.PatientID, appointment.ProfessionnelID)
		}
	})

	t.Run("with a pending professional", func(t *testing.T) {
		_, profiles, service := appointmentFixture()
		profiles.profiles["pro-2"] = &models.Profile{ID: "pro-2", Role: models.RoleProfessionnel, StatutApprobation: models.ApprovalPending}

		_, err := service.Book(ctx, patient, BookingInput{ProfessionnelID: "pro-2", DateRendezVous: when})
		if !errors.Is(err, ErrProfessionnelUnavailable) {
			t.Fatalf("expected ErrProfessionnelUnavailable, got %v", err)
		}
	})

	t.Run("with a non-professional target", func(t *testing.T) {
		_, profiles, service := appointmentFixture()
		profiles.profiles["other"] = &models.Profile{ID: "other", Role: models.RolePatient, StatutApprobation: models.ApprovalApproved}

		_, err := service.Book(ctx, patient, BookingInput{ProfessionnelID: "other", DateRendezVous: when})
		if !errors.Is(err, ErrProfessionnelUnavailable) {
			t.Fatalf("expected ErrProfessionnelUnavailable, got %v", err)
		}
	})

	t.Run("with a malformed date", func(t *testing.T) {
		appointments, _, service := appointmentFixture()

		_, err := service.Book(ctx, patient, BookingInput{ProfessionnelID: "pro-1", DateRendezVous: "demain"})
		var validationErr *models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if appointments.calls != 0 {
			t.Error("validation must fail before any repository call")
		}
	})

	t.Run("signed out", func(t *testing.T) {
		_, _, service := appointmentFixture()
		_, err := service.Book(ctx, nil, BookingInput{ProfessionnelID: "pro-1", DateRendezVous: when})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestListForActor(t *testing.T) {
	ctx := context.Background()
	appointments, _, service := appointmentFixture()

	appointments.appointments["a1"] = &models.Appointment{
		BaseModel:       models.BaseModel{ID: "a1"},
		PatientID:       "patient-1",
		ProfessionnelID: "pro-1",
		DateRendezVous:  time.Now().Add(24 * time.Hour),
	}
	appointments.appointments["a2"] = &models.Appointment{
		BaseModel:       models.BaseModel{ID: "a2"},
		PatientID:       "patient-2",
		ProfessionnelID: "pro-1",
		DateRendezVous:  time.Now().Add(48 * time.Hour),
	}

	t.Run("patient sees the appointments they booked", func(t *testing.T) {
		patient := &models.Profile{ID: "patient-1", Role: models.RolePatient}
		list, err := service.ListForActor(ctx, patient)
		if err != nil {
			t.Fatalf("ListForActor: %v", err)
		}
		if len(list) != 1 || list[0].ID != "a1" {
			t.Errorf("unexpected appointments: %v", list)
		}
	})

	t.Run("professional sees the appointments they give", func(t *testing.T) {
		pro := &models.Profile{ID: "pro-1", Role: models.RoleProfessionnel, StatutApprobation: models.ApprovalApproved}
		list, err := service.ListForActor(ctx, pro)
		if err != nil {
			t.Fatalf("ListForActor: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 appointments, got %d", len(list))
		}
		if list[0].ID != "a2" {
			t.Errorf("expected newest scheduled first, got %s", list[0].ID)
		}
	})

	t.Run("signed out", func(t *testing.T) {
		if _, err := service.ListForActor(ctx, nil); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}
