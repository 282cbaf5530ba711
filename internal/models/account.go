package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Account represents an authenticated identity. Credentials live here;
// everything about the person behind the account lives on Profile, which
// shares the account's id.
type Account struct {
	BaseModel
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // Never send password in JSON

	// Relations (not always preloaded)
	RefreshTokens []RefreshToken `gorm:"foreignKey:AccountID" json:"-"`
	Profile       *Profile       `gorm:"foreignKey:ID;references:ID" json:"-"`
}

// SetPassword hashes a password and sets it on the account
func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the account's hashed password
func (a *Account) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
	return err == nil
}

// AccountSanitized represents the account data that is safe to send in API responses.
type AccountSanitized struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Sanitize creates an AccountSanitized struct from an Account, excluding sensitive data.
func (a *Account) Sanitize() AccountSanitized {
	return AccountSanitized{
		ID:    a.ID,
		Email: a.Email,
	}
}
