package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/focusflow/backend/internal/apierror"
	"github.com/JonnyWalker81/focusflow/backend/internal/logger"
	"github.com/JonnyWalker81/focusflow/backend/internal/repository"
	"github.com/JonnyWalker81/focusflow/backend/internal/service"
	"github.com/JonnyWalker81/focusflow/backend/internal/tracking"
)

// writeServiceError maps a service error to a problem response. Unknown
// errors are logged and reported as a bare 500.
func writeServiceError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)
	profileID := c.Param("id")

	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Profile", profileID))
	case errors.Is(err, service.ErrNoCurrentProfile):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Profile", "current"))
	case errors.Is(err, tracking.ErrActivityNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Activity", c.Param("activityId")))
	case errors.Is(err, tracking.ErrActivityNotCompleted):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, "Only activities completed today can be rated"))
	case errors.Is(err, tracking.ErrInvalidFocusRating):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "rating", Message: "must be between 1 and 5", Code: "range"},
		}))
	case errors.Is(err, service.ErrProfileExists):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, "A profile with this ID already exists"))
	case errors.Is(err, service.ErrInvalidProfileName):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "name", Message: "must be 1-20 characters", Code: "length"},
		}))
	case errors.Is(err, service.ErrInvalidProfileType):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "type", Message: "must be one of student, professional, entrepreneur, creative, mom", Code: "oneof"},
		}))
	case errors.Is(err, service.ErrInvalidUUID), errors.Is(err, service.ErrNotUUIDv7):
		apierror.WriteProblem(c, apierror.NewInvalidIDError(requestID, "id", profileID))
	case errors.Is(err, service.ErrFutureTimestamp):
		apierror.WriteProblem(c, apierror.NewFutureTimestampError(requestID, "id"))
	default:
		logger.Ctx(c.Request.Context()).Error("request failed",
			logger.String("route", c.FullPath()),
			logger.String("profile_id", profileID),
			logger.Err(err),
		)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// profileIDParam validates the :id path parameter, writing a 400 when it is
// not a UUID.
func profileIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := service.ValidateProfileID(id); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidIDError(apierror.GetRequestID(c), "id", id))
		return "", false
	}
	c.Request = c.Request.WithContext(logger.WithProfileID(c.Request.Context(), id))
	return id, true
}
