package models

import (
	"time"
)

// Role enum
type Role string

const (
	RolePatient       Role = "patient"
	RoleProfessionnel Role = "professionnel"
	RoleAdmin         Role = "admin"
)

// Sex enum
type Sex string

const (
	SexHomme Sex = "homme"
	SexFemme Sex = "femme"
	SexAutre Sex = "autre"
)

// ApprovalStatus is the professional vetting workflow state. It is only
// meaningful for profiles with RoleProfessionnel; patients and admins are
// created approved and the value is never consulted for them.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "en_attente"
	ApprovalApproved ApprovalStatus = "approuve"
	ApprovalRejected ApprovalStatus = "rejete"
)

// ParseRole validates a role value received at a boundary.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RolePatient, RoleProfessionnel, RoleAdmin:
		return Role(value), nil
	}
	return "", &ValidationError{Field: "role", Value: value}
}

// ParseSex validates a sex value received at a boundary.
func ParseSex(value string) (Sex, error) {
	switch Sex(value) {
	case SexHomme, SexFemme, SexAutre:
		return Sex(value), nil
	}
	return "", &ValidationError{Field: "sexe", Value: value}
}

// ParseApprovalStatus validates an approval status received at a boundary.
func ParseApprovalStatus(value string) (ApprovalStatus, error) {
	switch ApprovalStatus(value) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return ApprovalStatus(value), nil
	}
	return "", &ValidationError{Field: "statut_approbation", Value: value}
}

// InitialApprovalStatus returns the approval state a freshly created profile
// starts in: professionals await vetting, everyone else is approved.
func InitialApprovalStatus(role Role) ApprovalStatus {
	if role == RoleProfessionnel {
		return ApprovalPending
	}
	return ApprovalApproved
}

// Profile is the application-level record for one account. Its id equals the
// owning account's id: primary key and foreign key at once, which is what
// makes creation an idempotent upsert.
type Profile struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Prenom                  string         `gorm:"size:100;not null" json:"prenom"`
	Nom                     string         `gorm:"size:100;not null" json:"nom"`
	Sexe                    Sex            `gorm:"size:10;not null" json:"sexe"`
	DateNaissance           time.Time      `json:"dateNaissance"`
	Adresse                 string         `gorm:"size:255" json:"adresse"`
	Telephone               string         `gorm:"size:30" json:"telephone"`
	Email                   string         `gorm:"size:255" json:"email"`
	Role                    Role           `gorm:"size:20;default:'patient'" json:"role"`
	Qualification           *string        `gorm:"size:100" json:"qualification,omitempty"`
	TitreAcademique         *string        `gorm:"size:100" json:"titreAcademique,omitempty"`
	DocumentAutorisationURL *string        `gorm:"size:512" json:"documentAutorisationUrl,omitempty"`
	StatutApprobation       ApprovalStatus `gorm:"size:20;default:'approuve'" json:"statutApprobation"`
}

// IsAdmin is the access gate predicate. It shapes what the client may see
// and do; the database layer independently enforces every mutation, so this
// is not a security boundary.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// ChangeRole applies an admin role change. Any role may become any other
// role. Promotion to professionnel restarts the vetting workflow; the
// professional-only fields are kept through a demotion so a later
// re-promotion does not lose them.
func (p *Profile) ChangeRole(newRole Role) {
	if newRole == RoleProfessionnel && p.Role != RoleProfessionnel {
		p.StatutApprobation = ApprovalPending
	}
	p.Role = newRole
}
