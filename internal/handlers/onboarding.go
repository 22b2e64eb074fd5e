package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/focusflow/backend/internal/apierror"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
	"github.com/JonnyWalker81/focusflow/backend/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// ListProfiles handles GET /api/v1/profiles
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfile handles GET /api/v1/profiles/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetCurrentProfile handles GET /api/v1/current-profile
func (h *ProfileHandler) GetCurrentProfile(c *gin.Context) {
	profile, err := h.profileService.CurrentProfile(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateProfile handles POST /api/v1/profiles
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.FromBindingError(apierror.GetRequestID(c), err))
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUUID) || errors.Is(err, service.ErrNotUUIDv7) {
			apierror.WriteProblem(c, apierror.NewInvalidIDError(apierror.GetRequestID(c), "id", req.ID))
			return
		}
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// SelectProfile handles POST /api/v1/profiles/:id/select
func (h *ProfileHandler) SelectProfile(c *gin.Context) {
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}

	if err := h.profileService.SelectProfile(c.Request.Context(), profileID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
