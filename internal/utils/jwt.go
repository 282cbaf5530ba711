package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"magala-server/internal/config"
	"magala-server/internal/models"
)

// Claims represents the JWT claims. Tokens carry only the account identity:
// the role lives on the profile row and is read fresh on every gated
// request, so a role change never survives in a stale token.
type Claims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

// GenerateTokens generates both access and refresh tokens for an account.
func GenerateTokens(account *models.Account, cfg *config.Config) (accessToken string, refreshToken string, err error) {
	accessToken, err = generateToken(account, cfg.JWTSecret,
		time.Duration(cfg.JWTExpirationMinutes)*time.Minute)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = generateToken(account, cfg.JWTRefreshSecret,
		time.Duration(cfg.JWTRefreshExpirationHours)*time.Hour)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func generateToken(account *models.Account, secret string, lifetime time.Duration) (string, error) {
	expirationTime := time.Now().Add(lifetime)
	claims := &Claims{
		AccountID: account.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   account.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates a JWT token.
func ValidateToken(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
