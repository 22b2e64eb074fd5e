package models

import "sort"

// DefaultCompletionGoal is the streak qualification threshold used when a
// profile has no explicit preference.
const DefaultCompletionGoal = 70

// Activity is a catalog entry describing a repeatable daily task
type Activity struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Duration  int         `json:"duration"`  // default duration in minutes
	StartTime NullableInt `json:"startTime"` // minutes since midnight
	Color     string      `json:"color"`
	Icon      string      `json:"icon"`
	Category  string      `json:"category"`
	Order     NullableInt `json:"order"`
	IsDefault bool        `json:"isDefault,omitempty"`
}

// ActivityRecord is the outcome of one activity on one day
type ActivityRecord struct {
	Completed      bool         `json:"completed"`
	Planned        bool         `json:"planned"`
	ActualDuration int          `json:"actualDuration"`
	CompletedAt    NullableTime `json:"completedAt"`
	FocusRating    NullableInt  `json:"focusRating"`
	Notes          string       `json:"notes"`
}

// DailyRecord holds every ActivityRecord of a calendar day
type DailyRecord struct {
	Date               string                    `json:"date"`
	Activities         map[string]ActivityRecord `json:"activities"`
	CompletionRate     NullableFloat             `json:"completionRate"`
	Mood               string                    `json:"mood,omitempty"`
	TotalPlannedTime   int                       `json:"totalPlannedTime,omitempty"`
	TotalCompletedTime int                       `json:"totalCompletedTime,omitempty"`
}

// Rate returns the precomputed completion rate, or 0 when it was never set.
func (r *DailyRecord) Rate() float64 {
	if r == nil {
		return 0
	}
	return r.CompletionRate.Or(0)
}

// ActivityIDs returns the ids of the day's records in ascending order.
// Every aggregator iterates a day through this so output is deterministic.
func (r *DailyRecord) ActivityIDs() []string {
	if r == nil || len(r.Activities) == 0 {
		return nil
	}
	ids := make([]string, 0, len(r.Activities))
	for id := range r.Activities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Streaks is the authoritative streak state, mutated only by completion toggles
type Streaks struct {
	Current     int    `json:"current"`
	Best        int    `json:"best"`
	PerfectDays int    `json:"perfectDays"`
	LastUpdate  string `json:"lastUpdate"`
}

// WorkingHours is the preferred daily working window ("06:00"-"22:00")
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Preferences holds per-profile settings
type Preferences struct {
	CompletionGoal int          `json:"completionGoal"`
	WorkingHours   WorkingHours `json:"workingHours"`
	BreakReminders bool         `json:"breakReminders"`
	WeeklyGoal     int          `json:"weeklyGoal"`
}

// Goal returns the completion goal, falling back to DefaultCompletionGoal.
func (p Preferences) Goal() float64 {
	if p.CompletionGoal <= 0 {
		return DefaultCompletionGoal
	}
	return float64(p.CompletionGoal)
}

// Profile is the aggregate root supplied to the analytics engine
type Profile struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Type         string                 `json:"type"`
	Avatar       string                 `json:"avatar"`
	Created      string                 `json:"created"`
	Activities   map[string]Activity    `json:"activities"`
	DailyRecords map[string]DailyRecord `json:"dailyRecords"`
	Streaks      Streaks                `json:"streaks"`
	Preferences  Preferences            `json:"preferences"`
}

// Record returns the daily record for date, or nil when the day has no data.
func (p *Profile) Record(date string) *DailyRecord {
	rec, ok := p.DailyRecords[date]
	if !ok {
		return nil
	}
	return &rec
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := *p
	out.Activities = make(map[string]Activity, len(p.Activities))
	for id, a := range p.Activities {
		out.Activities[id] = a
	}
	out.DailyRecords = make(map[string]DailyRecord, len(p.DailyRecords))
	for date, rec := range p.DailyRecords {
		out.DailyRecords[date] = rec.clone()
	}
	return &out
}

func (r DailyRecord) clone() DailyRecord {
	acts := make(map[string]ActivityRecord, len(r.Activities))
	for id, a := range r.Activities {
		acts[id] = a
	}
	r.Activities = acts
	return r
}

// ProfileSummary is the list view of a profile
type ProfileSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Avatar        string `json:"avatar"`
	ActivityCount int    `json:"activityCount"`
	RecordedDays  int    `json:"recordedDays"`
	CurrentStreak int    `json:"currentStreak"`
}

// Summary builds the list view of the profile.
func (p *Profile) Summary() ProfileSummary {
	return ProfileSummary{
		ID:            p.ID,
		Name:          p.Name,
		Type:          p.Type,
		Avatar:        p.Avatar,
		ActivityCount: len(p.Activities),
		RecordedDays:  len(p.DailyRecords),
		CurrentStreak: p.Streaks.Current,
	}
}

// AppSettings mirrors the settings block of the stored app document
type AppSettings struct {
	CurrentProfile *string `json:"currentProfile"`
	Theme          string  `json:"theme"`
	Notifications  bool    `json:"notifications"`
	Sound          bool    `json:"sound"`
	Language       string  `json:"language"`
}

// AppInfo mirrors the app block of the stored app document
type AppInfo struct {
	FirstLaunch   string  `json:"firstLaunch"`
	TotalSessions int     `json:"totalSessions"`
	LastBackup    *string `json:"lastBackup"`
}

// AppData is the persisted document holding every profile
type AppData struct {
	Version  string              `json:"version"`
	Profiles map[string]*Profile `json:"profiles"`
	Settings AppSettings         `json:"settings"`
	App      AppInfo             `json:"app"`
}
