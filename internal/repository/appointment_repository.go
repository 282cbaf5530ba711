package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"magala-server/internal/models"
)

type AppointmentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	Update(ctx context.Context, appointment *models.Appointment) error
	// List returns every appointment with both participant profiles
	// preloaded, newest scheduled date first.
	List(ctx context.Context) ([]models.Appointment, error)
	ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListForProfessionnel(ctx context.Context, professionnelID string) ([]models.Appointment, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Professionnel").
		Order("date_rendez_vous DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Professionnel").
		Where("patient_id = ?", patientID).
		Order("date_rendez_vous DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForProfessionnel(ctx context.Context, professionnelID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("professionnel_id = ?", professionnelID).
		Order("date_rendez_vous DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
