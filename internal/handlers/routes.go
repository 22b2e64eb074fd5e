package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the profile, analytics and tracking endpoints on rg
// (normally /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, profiles *ProfileHandler, analytics *AnalyticsHandler, tracking *TrackingHandler) {
	rg.GET("/profiles", profiles.ListProfiles)
	rg.POST("/profiles", profiles.CreateProfile)
	rg.GET("/current-profile", profiles.GetCurrentProfile)

	profile := rg.Group("/profiles/:id")
	{
		profile.GET("", profiles.GetProfile)
		profile.POST("/select", profiles.SelectProfile)

		a := profile.Group("/analytics")
		a.GET("/overview", analytics.GetOverview)
		a.GET("/trends", analytics.GetTrends)
		a.GET("/metrics", analytics.GetKeyMetrics)
		a.GET("/categories", analytics.GetCategories)
		a.GET("/leaderboard", analytics.GetLeaderboard)
		a.GET("/streaks", analytics.GetStreakHistory)
		a.GET("/weekly", analytics.GetWeekComparison)
		a.GET("/time-of-day", analytics.GetTimeOfDay)
		a.GET("/insights", analytics.GetInsights)
		a.GET("/calendar", analytics.GetCalendar)
		a.GET("/heatmap", analytics.GetHeatmap)

		profile.POST("/activities/:activityId/toggle", tracking.ToggleActivity)
		profile.PUT("/activities/:activityId/rating", tracking.SetFocusRating)
	}
}
