package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/focusflow/backend/internal/apierror"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
	"github.com/JonnyWalker81/focusflow/backend/internal/service"
)

type TrackingHandler struct {
	trackingService service.TrackingService
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingService service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ToggleActivity handles POST /api/v1/profiles/:id/activities/:activityId/toggle
func (h *TrackingHandler) ToggleActivity(c *gin.Context) {
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}

	result, err := h.trackingService.ToggleActivity(c.Request.Context(), profileID, c.Param("activityId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SetFocusRating handles PUT /api/v1/profiles/:id/activities/:activityId/rating
func (h *TrackingHandler) SetFocusRating(c *gin.Context) {
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}

	var req models.FocusRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.FromBindingError(apierror.GetRequestID(c), err))
		return
	}

	result, err := h.trackingService.SetFocusRating(c.Request.Context(), profileID, c.Param("activityId"), req.Rating)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
