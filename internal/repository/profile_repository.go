package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"magala-server/internal/models"
)

type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	List(ctx context.Context) ([]models.Profile, error)
	// ListApprovedProfessionnels returns the professionals a patient may
	// book with.
	ListApprovedProfessionnels(ctx context.Context) ([]models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert inserts the profile or, when a row with the same id already exists,
// overwrites it. A retried creation therefore never duplicates.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) ListApprovedProfessionnels(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.WithContext(ctx).
		Where("role = ? AND statut_approbation = ?", models.RoleProfessionnel, models.ApprovalApproved).
		Order("nom ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
