package handlers

import (
	"github.com/gin-gonic/gin"

	"magala-server/internal/middleware"
	"magala-server/internal/services"
	"magala-server/internal/utils"
)

// ProfileHandler handles the caller's own profile.
type ProfileHandler struct {
	Profiles services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles services.ProfileService) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

// GetProfile handles fetching the currently authenticated caller's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	accountID, exists := middleware.GetAccountIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	profile, err := h.Profiles.GetByAccount(c.Request.Context(), accountID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch profile: "+err.Error())
		return
	}
	if profile == nil {
		utils.NotFound(c, "Profile not yet created")
		return
	}

	utils.Success(c, "Profile fetched successfully", profile)
}

// GetProfessionnels lists the approved professionals available for booking.
// Accessible to any authenticated caller.
func (h *ProfileHandler) GetProfessionnels(c *gin.Context) {
	professionnels, err := h.Profiles.ListApprovedProfessionnels(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch professionals: "+err.Error())
		return
	}

	utils.Success(c, "Professionals fetched successfully", professionnels)
}

// CreateProfileRequest represents the request body for profile creation.
type CreateProfileRequest struct {
	Prenom                  string  `json:"prenom" binding:"required"`
	Nom                     string  `json:"nom" binding:"required"`
	Sexe                    string  `json:"sexe" binding:"required,oneof=homme femme autre"`
	DateNaissance           string  `json:"dateNaissance" binding:"required"`
	Adresse                 string  `json:"adresse" binding:"required"`
	Telephone               string  `json:"telephone" binding:"required"`
	Email                   string  `json:"email" binding:"required,email"`
	Role                    string  `json:"role" binding:"required,oneof=patient professionnel"`
	Qualification           *string `json:"qualification"`
	TitreAcademique         *string `json:"titreAcademique"`
	DocumentAutorisationURL *string `json:"documentAutorisationUrl"`
}

// CreateProfile handles creating the caller's profile. Creation is an
// upsert keyed on the account id, so a retried request overwrites instead
// of duplicating. The admin role cannot be self-assigned here; it is only
// granted through the admin role-change operation.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	accountID, exists := middleware.GetAccountIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateProfileRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	profile, err := h.Profiles.Create(c.Request.Context(), accountID, services.ProfileInput{
		Prenom:                  req.Prenom,
		Nom:                     req.Nom,
		Sexe:                    req.Sexe,
		DateNaissance:           req.DateNaissance,
		Adresse:                 req.Adresse,
		Telephone:               req.Telephone,
		Email:                   req.Email,
		Role:                    req.Role,
		Qualification:           req.Qualification,
		TitreAcademique:         req.TitreAcademique,
		DocumentAutorisationURL: req.DocumentAutorisationURL,
	})
	if err != nil {
		utils.FromError(c, err)
		return
	}

	utils.Created(c, "Profile created successfully", profile)
}

// UpdateProfileRequest represents the request body for updating the
// caller's profile. All fields are optional; role and approval status are
// excluded because they change only through admin operations.
type UpdateProfileRequest struct {
	Prenom                  *string `json:"prenom"`
	Nom                     *string `json:"nom"`
	Sexe                    *string `json:"sexe"`
	DateNaissance           *string `json:"dateNaissance"`
	Adresse                 *string `json:"adresse"`
	Telephone               *string `json:"telephone"`
	Email                   *string `json:"email"`
	Qualification           *string `json:"qualification"`
	TitreAcademique         *string `json:"titreAcademique"`
	DocumentAutorisationURL *string `json:"documentAutorisationUrl"`
}

// UpdateProfile handles updating the caller's profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	accountID, exists := middleware.GetAccountIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil { // partial update
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	profile, err := h.Profiles.Update(c.Request.Context(), accountID, services.ProfileUpdate{
		Prenom:                  req.Prenom,
		Nom:                     req.Nom,
		Sexe:                    req.Sexe,
		DateNaissance:           req.DateNaissance,
		Adresse:                 req.Adresse,
		Telephone:               req.Telephone,
		Email:                   req.Email,
		Qualification:           req.Qualification,
		TitreAcademique:         req.TitreAcademique,
		DocumentAutorisationURL: req.DocumentAutorisationURL,
	})
	if err != nil {
		utils.FromError(c, err)
		return
	}

	utils.Success(c, "Profile updated successfully", profile)
}
