package models

// CompletionTrendPoint is one day of the completion trend series
type CompletionTrendPoint struct {
	Date           string  `json:"date"`
	CompletionRate float64 `json:"completionRate"`
	Label          string  `json:"label"`     // "Jan 2"
	DayOfWeek      string  `json:"dayOfWeek"` // "Mon"
}

// DayRate pairs a date with its completion rate
type DayRate struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// FavoriteActivity is the most frequently completed activity of a window
type FavoriteActivity struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Icon  string `json:"icon"`
}

// KeyMetrics is the summary card data for a window
type KeyMetrics struct {
	TotalFocusedTime         int               `json:"totalFocusedTime"` // minutes
	AverageCompletionRate    float64           `json:"averageCompletionRate"`
	CurrentStreak            int               `json:"currentStreak"`
	BestStreak               int               `json:"bestStreak"`
	PerfectDays              int               `json:"perfectDays"`
	MostProductiveDay        *DayRate          `json:"mostProductiveDay"`
	FavoriteActivity         *FavoriteActivity `json:"favoriteActivity"`
	ActiveDays               int               `json:"activeDays"`
	TotalActivitiesCompleted int               `json:"totalActivitiesCompleted"`
}

// CategoryData aggregates one category over a window
type CategoryData struct {
	Category       string  `json:"category"`
	TotalTime      int     `json:"totalTime"` // minutes
	CompletedCount int     `json:"completedCount"`
	PlannedCount   int     `json:"plannedCount"`
	CompletionRate float64 `json:"completionRate"`
	Color          string  `json:"color"`
}

// LeaderboardSort selects the ranking key of the activity leaderboard
type LeaderboardSort string

const (
	SortByCompletionRate LeaderboardSort = "completionRate"
	SortByTotalTime      LeaderboardSort = "totalTime"
	SortByCompletedCount LeaderboardSort = "completedCount"
)

// ParseLeaderboardSort maps a query value to a sort key, defaulting to
// completion rate for anything unrecognised.
func ParseLeaderboardSort(s string) LeaderboardSort {
	switch LeaderboardSort(s) {
	case SortByTotalTime:
		return SortByTotalTime
	case SortByCompletedCount:
		return SortByCompletedCount
	default:
		return SortByCompletionRate
	}
}

// LeaderboardItem ranks one activity over a window
type LeaderboardItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Icon           string   `json:"icon"`
	Category       string   `json:"category"`
	Color          string   `json:"color"`
	CompletionRate float64  `json:"completionRate"`
	CompletedCount int      `json:"completedCount"`
	PlannedCount   int      `json:"plannedCount"`
	TotalTime      int      `json:"totalTime"`
	AvgFocusRating *float64 `json:"avgFocusRating"` // nil when nothing was rated
}

// StreakHistoryPoint is one day of the recomputed streak series
type StreakHistoryPoint struct {
	Date           string  `json:"date"`
	Streak         int     `json:"streak"`
	CompletionRate float64 `json:"completionRate"`
	IsPerfectDay   bool    `json:"isPerfectDay"`
}

// ChangeType classifies a week-over-week change
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeNeutral  ChangeType = "neutral"
)

// WeekComparison compares one metric across the current and previous week
type WeekComparison struct {
	Metric       string     `json:"metric"`
	CurrentWeek  float64    `json:"currentWeek"`
	PreviousWeek float64    `json:"previousWeek"`
	Change       float64    `json:"change"` // percentage
	ChangeType   ChangeType `json:"changeType"`
}

// TimeSlot aggregates activity instances scheduled in one hour of the day
type TimeSlot struct {
	Hour            int     `json:"hour"`
	Label           string  `json:"label"`
	CompletionCount int     `json:"completionCount"`
	TotalCount      int     `json:"totalCount"`
	CompletionRate  float64 `json:"completionRate"`
}

// InsightType is the tone of an insight
type InsightType string

const (
	InsightSuccess InsightType = "success"
	InsightWarning InsightType = "warning"
	InsightInfo    InsightType = "info"
)

// Insight is a qualitative observation emitted by the rule engine
type Insight struct {
	Rule        string      `json:"rule"`
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
}

// CalendarDay is one cell of the performance calendar
type CalendarDay struct {
	Date           string        `json:"date"`
	CompletionRate NullableFloat `json:"completionRate"` // null when the day has no record
	Mood           string        `json:"mood,omitempty"`
	DayAbbr        string        `json:"dayAbbr"`
	WeekNumber     int           `json:"weekNumber"`
	Intensity      string        `json:"intensity"`
}

// CalendarStats summarises the performance calendar
type CalendarStats struct {
	TotalDays           int     `json:"totalDays"`
	ActiveDays          int     `json:"activeDays"`
	PerfectDays         int     `json:"perfectDays"`
	HighPerformanceDays int     `json:"highPerformanceDays"`
	AvgCompletion       float64 `json:"avgCompletion"`
}

// PerformanceCalendar is the contribution-style calendar for a window
type PerformanceCalendar struct {
	Days  []CalendarDay   `json:"days"`
	Weeks [][]CalendarDay `json:"weeks"`
	Stats CalendarStats   `json:"stats"`
}

// HeatmapCell is one cell of the monthly heatmap grid; blank cells pad the
// first week and have an empty Date.
type HeatmapCell struct {
	Date       string        `json:"date,omitempty"`
	Day        int           `json:"day,omitempty"`
	Completion NullableFloat `json:"completion"`
	Mood       string        `json:"mood,omitempty"`
	IsToday    bool          `json:"isToday,omitempty"`
	Tier       string        `json:"tier"`
}

// MonthlyHeatmap is a Sunday-first month grid
type MonthlyHeatmap struct {
	Year  int           `json:"year"`
	Month int           `json:"month"` // 1-12
	Cells []HeatmapCell `json:"cells"`
}

// Overview bundles the data of the dashboard overview tab
type Overview struct {
	Metrics    KeyMetrics             `json:"metrics"`
	Trend      []CompletionTrendPoint `json:"trend"`
	Categories []CategoryData         `json:"categories"`
	Goal       float64                `json:"goal"`
	Days       int                    `json:"days"`
}
