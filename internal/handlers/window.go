package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/focusflow/backend/internal/apierror"
	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
)

// WindowParser resolves the lookback window of an analytics request from
// its query string:
//
//	?range=7days|30days|90days
//	?range=custom&start=2024-03-01&end=2024-03-10
//	?days=14
//
// days wins over range. Every window is clamped to MaxDays.
type WindowParser struct {
	DefaultPreset dates.Preset
	MaxDays       int
}

func (p WindowParser) Parse(c *gin.Context) (dates.Window, *apierror.ProblemDetails) {
	requestID := apierror.GetRequestID(c)

	if raw, ok := c.GetQuery("days"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return dates.Window{}, apierror.NewInvalidRangeError(requestID, "days",
				fmt.Sprintf("days must be a positive integer, got %q", raw))
		}
		return p.clamp(dates.Window{Preset: dates.PresetCustom, Days: n}), nil
	}

	preset := p.DefaultPreset
	if preset == "" {
		preset = dates.Preset7Days
	}
	if raw := c.Query("range"); raw != "" {
		parsed, err := dates.ParsePreset(raw)
		if err != nil {
			return dates.Window{}, apierror.NewInvalidRangeError(requestID, "range",
				"range must be one of 7days, 30days, 90days, custom")
		}
		preset = parsed
	}

	start, end := c.Query("start"), c.Query("end")
	if preset == dates.PresetCustom {
		bounds := []struct{ field, value string }{{"start", start}, {"end", end}}
		for _, b := range bounds {
			if b.value == "" {
				continue
			}
			if _, err := dates.Parse(b.value); err != nil {
				return dates.Window{}, apierror.NewInvalidRangeError(requestID, b.field,
					fmt.Sprintf("%s must be a YYYY-MM-DD date, got %q", b.field, b.value))
			}
		}
	}

	window, err := dates.NewWindow(preset, start, end)
	if err != nil {
		return dates.Window{}, apierror.NewInvalidRangeError(requestID, "range", err.Error())
	}
	return p.clamp(window), nil
}

func (p WindowParser) clamp(w dates.Window) dates.Window {
	if p.MaxDays > 0 && w.Days > p.MaxDays {
		w.Days = p.MaxDays
	}
	return w
}
