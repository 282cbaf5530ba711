package services

import (
	"context"
	"time"

	"magala-server/internal/models"
	"magala-server/internal/repository"
)

// ProfileInput carries the fields a user supplies when creating their
// profile. Enum and date fields arrive as strings and are validated here,
// before any database call.
type ProfileInput struct {
	Prenom                  string
	Nom                     string
	Sexe                    string
	DateNaissance           string // YYYY-MM-DD
	Adresse                 string
	Telephone               string
	Email                   string
	Role                    string
	Qualification           *string
	TitreAcademique         *string
	DocumentAutorisationURL *string
}

// ProfileUpdate carries a partial update of the owner-editable fields. Role
// and approval status are deliberately absent: both change only through the
// admin operations.
type ProfileUpdate struct {
	Prenom                  *string
	Nom                     *string
	Sexe                    *string
	DateNaissance           *string
	Adresse                 *string
	Telephone               *string
	Email                   *string
	Qualification           *string
	TitreAcademique         *string
	DocumentAutorisationURL *string
}

type ProfileService interface {
	// GetByAccount returns the account's profile, or nil when none has been
	// created yet.
	GetByAccount(ctx context.Context, accountID string) (*models.Profile, error)
	// Create creates the account's profile. The profile id is the account id
	// and creation is an upsert: a retried call overwrites, never duplicates.
	Create(ctx context.Context, accountID string, input ProfileInput) (*models.Profile, error)
	Update(ctx context.Context, accountID string, update ProfileUpdate) (*models.Profile, error)
	// ListApprovedProfessionnels returns the professionals available for
	// booking, for any authenticated caller.
	ListApprovedProfessionnels(ctx context.Context) ([]models.Profile, error)
}

type profileService struct {
	profiles repository.ProfileRepository
}

func NewProfileService(profiles repository.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) GetByAccount(ctx context.Context, accountID string) (*models.Profile, error) {
	return s.profiles.FindByID(ctx, accountID)
}

func (s *profileService) Create(ctx context.Context, accountID string, input ProfileInput) (*models.Profile, error) {
	role, err := models.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	sexe, err := models.ParseSex(input.Sexe)
	if err != nil {
		return nil, err
	}
	dateNaissance, err := parseDate(input.DateNaissance)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:                      accountID,
		Prenom:                  input.Prenom,
		Nom:                     input.Nom,
		Sexe:                    sexe,
		DateNaissance:           dateNaissance,
		Adresse:                 input.Adresse,
		Telephone:               input.Telephone,
		Email:                   input.Email,
		Role:                    role,
		Qualification:           input.Qualification,
		TitreAcademique:         input.TitreAcademique,
		DocumentAutorisationURL: input.DocumentAutorisationURL,
		StatutApprobation:       models.InitialApprovalStatus(role),
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, accountID string, update ProfileUpdate) (*models.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, repository.ErrNotFound
	}

	if update.Prenom != nil {
		profile.Prenom = *update.Prenom
	}
	if update.Nom != nil {
		profile.Nom = *update.Nom
	}
	if update.Sexe != nil {
		sexe, err := models.ParseSex(*update.Sexe)
		if err != nil {
			return nil, err
		}
		profile.Sexe = sexe
	}
	if update.DateNaissance != nil {
		dateNaissance, err := parseDate(*update.DateNaissance)
		if err != nil {
			return nil, err
		}
		profile.DateNaissance = dateNaissance
	}
	if update.Adresse != nil {
		profile.Adresse = *update.Adresse
	}
	if update.Telephone != nil {
		profile.Telephone = *update.Telephone
	}
	if update.Email != nil {
		profile.Email = *update.Email
	}
	if update.Qualification != nil {
		profile.Qualification = update.Qualification
	}
	if update.TitreAcademique != nil {
		profile.TitreAcademique = update.TitreAcademique
	}
	if update.DocumentAutorisationURL != nil {
		profile.DocumentAutorisationURL = update.DocumentAutorisationURL
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) ListApprovedProfessionnels(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.ListApprovedProfessionnels(ctx)
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &models.ValidationError{Field: "date_naissance", Value: value}
	}
	return parsed, nil
}
