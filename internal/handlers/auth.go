package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"magala-server/internal/config"
	"magala-server/internal/models"
	"magala-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SessionResponse represents the response body for successful register/login.
type SessionResponse struct {
	AccessToken  string                  `json:"accessToken"`
	RefreshToken string                  `json:"refreshToken"`
	Account      models.AccountSanitized `json:"account"`
}

// Register handles account registration. The profile is created separately,
// by the owner, right after sign-up.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return // Error response handled by BindAndValidate
	}

	// Check if account already exists
	var existingAccount models.Account
	if err := h.DB.Where("email = ?", req.Email).First(&existingAccount).Error; err == nil {
		utils.BadRequest(c, "An account with this email already exists")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	account := models.Account{
		Email: req.Email,
	}
	if err := account.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Create(&account).Error; err != nil {
		utils.InternalServerError(c, "Failed to create account: "+err.Error())
		return
	}

	// Sign-up opens a session immediately; no separate login step.
	session, err := h.openSession(&account)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Created(c, "Account registered successfully", session)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles account login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var account models.Account
	if err := h.DB.Where("email = ?", req.Email).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Unauthorized(c, "Invalid email or password")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !account.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	session, err := h.openSession(&account)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, "Login successful", session)
}

// openSession mints a token pair and stores the revocable refresh token.
func (h *AuthHandler) openSession(account *models.Account) (*SessionResponse, error) {
	accessToken, refreshTokenString, err := utils.GenerateTokens(account, h.Cfg)
	if err != nil {
		return nil, err
	}

	refreshToken := models.RefreshToken{
		AccountID: account.ID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().Add(time.Duration(h.Cfg.JWTRefreshExpirationHours) * time.Hour),
		IsRevoked: false,
	}
	if err := h.DB.Create(&refreshToken).Error; err != nil {
		return nil, err
	}

	return &SessionResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		Account:      account.Sanitize(),
	}, nil
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshToken handles refreshing an access token using a refresh token.
// The old refresh token is rotated out.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	claims, err := utils.ValidateToken(req.RefreshToken, h.Cfg.JWTRefreshSecret)
	if err != nil {
		utils.Unauthorized(c, "Invalid refresh token structure or signature: "+err.Error())
		return
	}

	// Check if refresh token is revoked or still valid in DB
	var storedToken models.RefreshToken
	if err := h.DB.Where("token = ? AND account_id = ? AND is_revoked = ? AND expires_at > ?",
		req.RefreshToken, claims.AccountID, false, time.Now()).First(&storedToken).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Unauthorized(c, "Refresh token not found, expired, or revoked")
		} else {
			utils.InternalServerError(c, "Database error checking refresh token: "+err.Error())
		}
		return
	}

	var account models.Account
	if err := h.DB.First(&account, "id = ?", claims.AccountID).Error; err != nil {
		utils.InternalServerError(c, "Failed to find account associated with token: "+err.Error())
		return
	}

	// Revoke the old refresh token before issuing a new pair
	storedToken.IsRevoked = true
	h.DB.Save(&storedToken)

	session, err := h.openSession(&account)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, "Access token refreshed successfully", session)
}

// LogoutRequest represents the request body for logout.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Logout revokes the supplied refresh token.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var storedToken models.RefreshToken
	if err := h.DB.Where("token = ? AND is_revoked = ?", req.RefreshToken, false).First(&storedToken).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Token not found or already revoked, which is acceptable for logout.
			utils.Success(c, "Logout successful (token not found or already invalid).", nil)
		} else {
			utils.InternalServerError(c, "Database error during logout: "+err.Error())
		}
		return
	}

	storedToken.IsRevoked = true
	storedToken.ExpiresAt = time.Now()
	if err := h.DB.Save(&storedToken).Error; err != nil {
		utils.InternalServerError(c, "Failed to revoke refresh token: "+err.Error())
		return
	}

	utils.Success(c, "Logout successful. Refresh token has been invalidated.", nil)
}
