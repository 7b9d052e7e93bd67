package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"content-platform/internal/domain"
	"content-platform/internal/middleware"
	"content-platform/internal/service"
)

// IdentityHandler handles sign-up, credential checks and profile requests.
type IdentityHandler struct {
	identity service.IdentityServiceInterface
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(identity service.IdentityServiceInterface) *IdentityHandler {
	return &IdentityHandler{identity: identity}
}

// CredentialsRequest is the body of POST /api/auth. Login is a username or e-mail.
type CredentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ExternalProfileRequest is what the OAuth collaborator forwards after a
// successful provider handshake.
type ExternalProfileRequest struct {
	ProviderID    string `json:"providerId"`
	Email         string `json:"email"`
	GivenName     string `json:"givenName"`
	FamilyName    string `json:"familyName"`
	DisplayName   string `json:"displayName"`
	Avatar        string `json:"avatar"`
	EmailVerified bool   `json:"emailVerified"`
}

// Signup handles POST /api/signup
func (h *IdentityHandler) Signup(c *gin.Context) {
	var in domain.SignupInput
	if !bindJSON(c, &in) {
		return
	}
	p, err := h.identity.RegisterLocal(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Authenticate handles POST /api/auth
func (h *IdentityHandler) Authenticate(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.identity.VerifyCredentials(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// AuthenticateExternal handles POST /api/auth/external
func (h *IdentityHandler) AuthenticateExternal(c *gin.Context) {
	var req ExternalProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.identity.ProvisionExternal(c.Request.Context(), domain.ExternalProfile{
		ProviderID:    req.ProviderID,
		Email:         req.Email,
		GivenName:     req.GivenName,
		FamilyName:    req.FamilyName,
		DisplayName:   req.DisplayName,
		Avatar:        req.Avatar,
		EmailVerified: req.EmailVerified,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProfile handles GET /api/userprofile?username=
func (h *IdentityHandler) GetProfile(c *gin.Context) {
	username := strings.TrimSpace(c.Query(queryUsername))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}
	profile, err := h.identity.GetProfile(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PATCH /api/userprofile
func (h *IdentityHandler) UpdateProfile(c *gin.Context) {
	var update domain.ProfileUpdate
	if !bindJSON(c, &update) {
		return
	}
	p, err := h.identity.UpdateProfile(c.Request.Context(), middleware.GetPrincipal(c).Ref(), &update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Overview handles GET /api/userprofile/overview
func (h *IdentityHandler) Overview(c *gin.Context) {
	overview, err := h.identity.Overview(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// SearchUsers handles GET /api/users/search/:query
func (h *IdentityHandler) SearchUsers(c *gin.Context) {
	results, err := h.identity.SearchUsers(c.Request.Context(), c.Param(paramQuery))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": results})
}

// Badge handles GET /api/user/rating/:username
func (h *IdentityHandler) Badge(c *gin.Context) {
	result, err := h.identity.ComputeBadge(c.Request.Context(), c.Param(paramUsername))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *IdentityHandler) DeleteUser(c *gin.Context) {
	if err := h.identity.DeletePrincipal(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
