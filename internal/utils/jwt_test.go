package utils

import (
	"testing"

	"magala-server/internal/config"
	"magala-server/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                 "test_secret",
		JWTRefreshSecret:          "test_refresh_secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 168,
	}
}

func TestGenerateAndValidateTokens(t *testing.T) {
	cfg := testConfig()
	account := &models.Account{BaseModel: models.BaseModel{ID: "acct-1"}, Email: "a@example.com"}

	accessToken, refreshToken, err := GenerateTokens(account, cfg)
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	claims, err := ValidateToken(accessToken, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("ValidateToken(access): %v", err)
	}
	if claims.AccountID != "acct-1" {
		t.Errorf("account id = %q", claims.AccountID)
	}
	if claims.Subject != "acct-1" {
		t.Errorf("subject = %q", claims.Subject)
	}

	refreshClaims, err := ValidateToken(refreshToken, cfg.JWTRefreshSecret)
	if err != nil {
		t.Fatalf("ValidateToken(refresh): %v", err)
	}
	if refreshClaims.AccountID != "acct-1" {
		t.Errorf("refresh account id = %q", refreshClaims.AccountID)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	cfg := testConfig()
	account := &models.Account{BaseModel: models.BaseModel{ID: "acct-1"}}

	accessToken, refreshToken, err := GenerateTokens(account, cfg)
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	if _, err := ValidateToken(accessToken, "another_secret"); err == nil {
		t.Error("access token must not validate with the wrong secret")
	}
	// Access and refresh secrets are not interchangeable.
	if _, err := ValidateToken(refreshToken, cfg.JWTSecret); err == nil {
		t.Error("refresh token must not validate with the access secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "secret"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
