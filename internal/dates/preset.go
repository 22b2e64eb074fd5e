package dates

import (
	"errors"
	"fmt"
)

// ErrInvalidPreset indicates an unknown window preset name
var ErrInvalidPreset = errors.New("invalid range preset")

// Preset names a lookback window selectable on the dashboard
type Preset string

const (
	Preset7Days  Preset = "7days"
	Preset30Days Preset = "30days"
	Preset90Days Preset = "90days"
	PresetCustom Preset = "custom"
)

// DefaultWindowDays is used when a custom range is missing a bound.
const DefaultWindowDays = 7

// ParsePreset validates a preset name.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case Preset7Days, Preset30Days, Preset90Days, PresetCustom:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPreset, s)
	}
}

// Window is a resolved lookback period
type Window struct {
	Preset Preset `json:"preset"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
	Days   int    `json:"days"`
}

// NewWindow resolves a preset (and, for custom, its bounds) to a day count.
// A custom window spans |end-start|+1 days; without both bounds it falls
// back to DefaultWindowDays.
func NewWindow(p Preset, start, end string) (Window, error) {
	w := Window{Preset: p}
	switch p {
	case Preset7Days:
		w.Days = 7
	case Preset30Days:
		w.Days = 30
	case Preset90Days:
		w.Days = 90
	case PresetCustom:
		w.Start, w.End = start, end
		if start == "" || end == "" {
			w.Days = DefaultWindowDays
			return w, nil
		}
		diff, err := DaysBetween(start, end)
		if err != nil {
			return Window{}, err
		}
		if diff < 0 {
			diff = -diff
		}
		w.Days = diff + 1
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidPreset, p)
	}
	return w, nil
}

// Label returns the dashboard caption of the window.
func (w Window) Label() string {
	switch w.Preset {
	case Preset30Days:
		return "Last 30 Days"
	case Preset90Days:
		return "Last 90 Days"
	case PresetCustom:
		if w.Start != "" && w.End != "" {
			return fmt.Sprintf("%s to %s", w.Start, w.End)
		}
		return "Custom Range"
	default:
		return "Last 7 Days"
	}
}
