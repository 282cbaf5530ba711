package services

import (
	"context"
	"errors"
	"testing"

	"magala-server/internal/models"
	"magala-server/internal/repository"
)

func validProfileInput(role string) ProfileInput {
	return ProfileInput{
		Prenom:        "Awa",
		Nom:           "Diallo",
		Sexe:          "femme",
		DateNaissance: "1990-04-12",
		Adresse:       "12 rue des Lilas",
		Telephone:     "+33612345678",
		Email:         "awa@example.com",
		Role:          role,
	}
}

func TestCreateProfileIsAnIdempotentUpsert(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProfileRepo()
	service := NewProfileService(repo)

	first, err := service.Create(ctx, "acct-1", validProfileInput("patient"))
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if first.ID != "acct-1" {
		t.Errorf("profile id = %q, want the account id", first.ID)
	}

	// A retried creation overwrites instead of duplicating.
	retried := validProfileInput("patient")
	retried.Prenom = "Awa-Marie"
	second, err := service.Create(ctx, "acct-1", retried)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if len(repo.profiles) != 1 {
		t.Fatalf("expected exactly one profile, got %d", len(repo.profiles))
	}
	if second.Prenom != "Awa-Marie" {
		t.Errorf("retried create must win, prenom = %q", second.Prenom)
	}
}

func TestCreateProfileInitialApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("patient starts approved", func(t *testing.T) {
		service := NewProfileService(newFakeProfileRepo())
		p, err := service.Create(ctx, "acct-1", validProfileInput("patient"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if p.StatutApprobation != models.ApprovalApproved {
			t.Errorf("approval = %q, want approuve", p.StatutApprobation)
		}
	})

	t.Run("professional starts pending", func(t *testing.T) {
		service := NewProfileService(newFakeProfileRepo())
		input := validProfileInput("professionnel")
		qualification := "Psychologue"
		input.Qualification = &qualification

		p, err := service.Create(ctx, "acct-2", input)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if p.StatutApprobation != models.ApprovalPending {
			t.Errorf("approval = %q, want en_attente", p.StatutApprobation)
		}
	})
}

func TestCreateProfileValidatesBeforeAnyCall(t *testing.T) {
	ctx := context.Background()

	cases := map[string]ProfileInput{}

	badRole := validProfileInput("doctor")
	cases["unknown role"] = badRole

	badSexe := validProfileInput("patient")
	badSexe.Sexe = "unknown"
	cases["unknown sexe"] = badSexe

	badDate := validProfileInput("patient")
	badDate.DateNaissance = "12/04/1990"
	cases["malformed date"] = badDate

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newFakeProfileRepo()
			service := NewProfileService(repo)

			_, err := service.Create(ctx, "acct-1", input)
			var validationErr *models.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if repo.calls != 0 {
				t.Error("validation must fail before any repository call")
			}
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		repo := newFakeProfileRepo()
		service := NewProfileService(repo)
		if _, err := service.Create(ctx, "acct-1", validProfileInput("patient")); err != nil {
			t.Fatalf("Create: %v", err)
		}

		telephone := "+33700000000"
		updated, err := service.Update(ctx, "acct-1", ProfileUpdate{Telephone: &telephone})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Telephone != telephone {
			t.Errorf("telephone = %q", updated.Telephone)
		}
		if updated.Prenom != "Awa" {
			t.Errorf("untouched field changed: prenom = %q", updated.Prenom)
		}
		if updated.Role != models.RolePatient {
			t.Errorf("owner update must not change role, got %q", updated.Role)
		}
	})

	t.Run("update without a profile is not found", func(t *testing.T) {
		service := NewProfileService(newFakeProfileRepo())
		prenom := "X"
		_, err := service.Update(ctx, "ghost", ProfileUpdate{Prenom: &prenom})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestGetByAccountWithoutProfile(t *testing.T) {
	service := NewProfileService(newFakeProfileRepo())
	p, err := service.GetByAccount(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("GetByAccount: %v", err)
	}
	if p != nil {
		t.Error("expected nil profile for an account without one")
	}
}

func TestListApprovedProfessionnels(t *testing.T) {
	repo := newFakeProfileRepo()
	service := NewProfileService(repo)

	repo.profiles["pro-ok"] = &models.Profile{ID: "pro-ok", Nom: "B", Role: models.RoleProfessionnel, StatutApprobation: models.ApprovalApproved}
	repo.profiles["pro-pending"] = &models.Profile{ID: "pro-pending", Nom: "A", Role: models.RoleProfessionnel, StatutApprobation: models.ApprovalPending}
	repo.profiles["patient"] = &models.Profile{ID: "patient", Nom: "C", Role: models.RolePatient, StatutApprobation: models.ApprovalApproved}

	professionnels, err := service.ListApprovedProfessionnels(context.Background())
	if err != nil {
		t.Fatalf("ListApprovedProfessionnels: %v", err)
	}
	if len(professionnels) != 1 || professionnels[0].ID != "pro-ok" {
		t.Errorf("expected only the approved professional, got %v", professionnels)
	}
}
