package analytics

import (
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

// Calendar intensity tiers.
const (
	IntensityNone      = "none"
	IntensityPerfect   = "perfect"
	IntensityExcellent = "excellent"
	IntensityGood      = "good"
	IntensityMedium    = "medium"
	IntensityFair      = "fair"
	IntensityLow       = "low"
	IntensityZero      = "zero"
)

// Heatmap tiers.
const (
	HeatNone   = "none"
	HeatHigh   = "high"
	HeatMedium = "medium"
	HeatLow    = "low"
)

// HighPerformanceRate is the rate from which a calendar day counts as a high
// performance day.
const HighPerformanceRate = 80.0

func calendarIntensity(rate models.NullableFloat) string {
	if !rate.Valid {
		return IntensityNone
	}
	switch r := rate.Value; {
	case r == 100:
		return IntensityPerfect
	case r >= 90:
		return IntensityExcellent
	case r >= 70:
		return IntensityGood
	case r >= 50:
		return IntensityMedium
	case r >= 30:
		return IntensityFair
	case r > 0:
		return IntensityLow
	default:
		return IntensityZero
	}
}

func heatTier(completion models.NullableFloat) string {
	if !completion.Valid {
		return HeatNone
	}
	switch c := completion.Value; {
	case c >= 80:
		return HeatHigh
	case c >= 50:
		return HeatMedium
	case c > 0:
		return HeatLow
	default:
		return HeatNone
	}
}

// PerformanceCalendar lays out the window as calendar cells, chunked into
// rows of seven oldest first. The last row may be shorter. Days without a
// record have a null completion rate and are left out of the stats averages.
func PerformanceCalendar(records map[string]models.DailyRecord, days int, ref time.Time) models.PerformanceCalendar {
	window := dates.Range(days, ref)
	cal := models.PerformanceCalendar{
		Days:  make([]models.CalendarDay, 0, len(window)),
		Weeks: [][]models.CalendarDay{},
	}

	var rateSum float64
	for _, date := range window {
		day := models.CalendarDay{
			Date:       date,
			DayAbbr:    dates.DayAbbr(date),
			WeekNumber: dates.WeekOfYear(date),
		}
		if rec, ok := records[date]; ok {
			rate := rec.Rate()
			day.CompletionRate = models.Some(rate)
			day.Mood = rec.Mood

			cal.Stats.ActiveDays++
			rateSum += rate
			if rate == 100 {
				cal.Stats.PerfectDays++
			}
			if rate >= HighPerformanceRate {
				cal.Stats.HighPerformanceDays++
			}
		}
		day.Intensity = calendarIntensity(day.CompletionRate)
		cal.Days = append(cal.Days, day)
	}

	for start := 0; start < len(cal.Days); start += 7 {
		end := min(start+7, len(cal.Days))
		cal.Weeks = append(cal.Weeks, cal.Days[start:end:end])
	}

	cal.Stats.TotalDays = len(window)
	cal.Stats.AvgCompletion = mean(rateSum, cal.Stats.ActiveDays)
	return cal
}

// MonthlyHeatmap builds a Sunday-first grid for a calendar month. Blank cells
// pad the grid before the first day and after the last so that it always
// holds whole weeks. A month outside 1-12 yields an empty grid.
func MonthlyHeatmap(records map[string]models.DailyRecord, year, month int, ref time.Time) models.MonthlyHeatmap {
	hm := models.MonthlyHeatmap{Year: year, Month: month, Cells: []models.HeatmapCell{}}
	if month < 1 || month > 12 {
		return hm
	}

	first := time.Date(year, time.Month(month), 1, 12, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := dates.Today(ref)

	for i := 0; i < int(first.Weekday()); i++ {
		hm.Cells = append(hm.Cells, models.HeatmapCell{Tier: HeatNone})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := dates.Format(first.AddDate(0, 0, d-1))
		cell := models.HeatmapCell{
			Date:    date,
			Day:     d,
			IsToday: date == today,
		}
		if rec, ok := records[date]; ok {
			cell.Completion = models.Some(rec.Rate())
			cell.Mood = rec.Mood
		}
		cell.Tier = heatTier(cell.Completion)
		hm.Cells = append(hm.Cells, cell)
	}
	for len(hm.Cells)%7 != 0 {
		hm.Cells = append(hm.Cells, models.HeatmapCell{Tier: HeatNone})
	}
	return hm
}
