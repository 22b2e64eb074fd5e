package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/focusflow/backend/internal/apierror"
	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
	"github.com/JonnyWalker81/focusflow/backend/internal/service"
)

// WindowResponse wraps an analytics view computed over a lookback window
type WindowResponse struct {
	Window dates.Window `json:"window"`
	Label  string       `json:"label"`
	Data   any          `json:"data"`
}

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	windows          WindowParser
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService, windows WindowParser) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		windows:          windows,
	}
}

// windowView runs a window based view and writes the wrapped result.
func windowView[T any](h *AnalyticsHandler, c *gin.Context, view func(profileID string, w dates.Window) (T, error)) {
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}
	window, problem := h.windows.Parse(c)
	if problem != nil {
		apierror.WriteProblem(c, problem)
		return
	}

	data, err := view(profileID, window)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, WindowResponse{Window: window, Label: window.Label(), Data: data})
}

// GetOverview handles GET /api/v1/profiles/:id/analytics/overview
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	windowView(h, c, func(id string, w dates.Window) (*models.Overview, error) {
		return h.analyticsService.GetOverview(c.Request.Context(), id, w)
	})
}

// GetTrends handles GET /api/v1/profiles/:id/analytics/trends
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	windowView(h, c, func(id string, w dates.Window) ([]models.CompletionTrendPoint, error) {
		return h.analyticsService.GetTrends(c.Request.Context(), id, w)
	})
}

// GetKeyMetrics handles GET /api/v1/profiles/:id/analytics/metrics
func (h *AnalyticsHandler) GetKeyMetrics(c *gin.Context) {
	windowView(h, c, func(id string, w dates.Window) (*models.KeyMetrics, error) {
		return h.analyticsService.GetKeyMetrics(c.Request.Context(), id, w)
	})
}

// GetCategories handles GET /api/v1/profiles/:id/analytics/categories
func (h *AnalyticsHandler) GetCategories(c *gin.Context) {
	windowView(h, c, func(id string, w dates.Window) ([]models.CategoryData, error) {
		return h.analyticsService.GetCategories(c.Request.Context(), id, w)
	})
}

// GetLeaderboard handles GET /api/v1/profiles/:id/analytics/leaderboard?sort=
// Unknown sort keys fall back to completion rate.
func (h *AnalyticsHandler) GetLeaderboard(c *gin.Context) {
	sortBy := models.ParseLeaderboardSort(c.Query("sort"))
	windowView(h, c, func(id string, w dates.Window) ([]models.LeaderboardItem, error) {
		return h.analyticsService.GetLeaderboard(c.Request.Context(), id, w, sortBy)
	})
}

// GetStreakHistory handles GET /api/v1/profiles/:id/analytics/streaks
func (h *AnalyticsHandler) GetStreakHistory(c *gin.Context) {
	windowView(h, c, func(id string, w dates.Window) ([]models.StreakHistoryPoint, error) {
		return h.analyticsService.GetStreakHistory(c.Request.Context(), id, w)
	})
}

// GetTimeOfDay handles GET /api/v1/profiles/:id/analytics/time-of-day
func (h *AnalyticsHandler) GetTimeOfDay(c *gin.Context) {
	windowView(h, c, func(id string, w dates.Window) ([]models.TimeSlot, error) {
		return h.analyticsService.GetTimeOfDay(c.Request.Context(), id, w)
	})
}

// GetInsights handles GET /api/v1/profiles/:id/analytics/insights
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	windowView(h, c, func(id string, w dates.Window) ([]models.Insight, error) {
		return h.analyticsService.GetInsights(c.Request.Context(), id, w)
	})
}

// GetCalendar handles GET /api/v1/profiles/:id/analytics/calendar
func (h *AnalyticsHandler) GetCalendar(c *gin.Context) {
	windowView(h, c, func(id string, w dates.Window) (*models.PerformanceCalendar, error) {
		return h.analyticsService.GetCalendar(c.Request.Context(), id, w)
	})
}

// GetWeekComparison handles GET /api/v1/profiles/:id/analytics/weekly
func (h *AnalyticsHandler) GetWeekComparison(c *gin.Context) {
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}

	comparison, err := h.analyticsService.GetWeekComparison(c.Request.Context(), profileID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// GetHeatmap handles GET /api/v1/profiles/:id/analytics/heatmap?year=&month=
func (h *AnalyticsHandler) GetHeatmap(c *gin.Context) {
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}
	requestID := apierror.GetRequestID(c)

	year, err := optionalInt(c, "year")
	if err != nil || year < 0 {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(requestID, "year", "year must be a positive integer"))
		return
	}
	month, err := optionalInt(c, "month")
	if err != nil || month < 0 || month > 12 {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(requestID, "month", "month must be between 1 and 12"))
		return
	}
	if (year == 0) != (month == 0) {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(requestID, "month", "year and month must be given together"))
		return
	}

	heatmap, err := h.analyticsService.GetHeatmap(c.Request.Context(), profileID, year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, heatmap)
}

// optionalInt reads an integer query parameter, 0 when absent.
func optionalInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
