package models

// ProfileType selects the activity template a new profile is seeded with
type ProfileType string

const (
	ProfileStudent      ProfileType = "student"
	ProfileProfessional ProfileType = "professional"
	ProfileEntrepreneur ProfileType = "entrepreneur"
	ProfileCreative     ProfileType = "creative"
	ProfileMom          ProfileType = "mom"
)

// MaxProfileNameLength bounds the display name of a profile
const MaxProfileNameLength = 20

// ActivityTemplate is a seed activity of a profile type
type ActivityTemplate struct {
	Key      string
	Name     string
	Duration int
	Color    string
	Icon     string
	Category string
}

// ActivityTemplates lists the seed activities of every profile type in
// display order.
var ActivityTemplates = map[ProfileType][]ActivityTemplate{
	ProfileStudent: {
		{"study-sessions", "Study Sessions", 120, "#8B5CF6", "📚", "academic"},
		{"attend-classes", "Attend Classes", 60, "#3B82F6", "🎓", "academic"},
		{"assignments", "Complete Assignments", 90, "#10B981", "✍️", "academic"},
		{"exercise", "Exercise/Break", 60, "#F59E0B", "🏃‍♂️", "wellness"},
		{"personal-time", "Personal Time", 60, "#EC4899", "🎮", "personal"},
		{"social-meals", "Social/Meals", 60, "#F97316", "🍕", "social"},
	},
	ProfileProfessional: {
		{"deep-work", "Deep Work", 120, "#3B82F6", "💻", "work"},
		{"meetings", "Meetings", 60, "#10B981", "👥", "work"},
		{"email-admin", "Email/Admin", 30, "#F59E0B", "📧", "work"},
		{"learning", "Learning/Development", 60, "#8B5CF6", "📚", "development"},
		{"lunch", "Lunch Break", 60, "#EC4899", "🍽️", "break"},
		{"personal-tasks", "Personal Tasks", 30, "#F97316", "📝", "personal"},
	},
	ProfileEntrepreneur: {
		{"business-dev", "Business Development", 120, "#F59E0B", "📈", "business"},
		{"product-work", "Product Work", 120, "#3B82F6", "🛠️", "product"},
		{"marketing", "Marketing/Content", 60, "#EC4899", "📱", "marketing"},
		{"networking", "Networking", 60, "#10B981", "🤝", "networking"},
		{"planning", "Planning/Strategy", 60, "#8B5CF6", "🗺️", "strategy"},
		{"self-care", "Self-Care", 60, "#F97316", "🧘‍♂️", "wellness"},
	},
	ProfileCreative: {
		{"creative-work", "Creative Work", 180, "#EC4899", "🎨", "creative"},
		{"research", "Research/Inspiration", 60, "#8B5CF6", "🔍", "research"},
		{"admin-tasks", "Admin/Business Tasks", 60, "#3B82F6", "📊", "business"},
		{"skill-dev", "Skill Development", 60, "#10B981", "🎯", "learning"},
		{"breaks", "Breaks/Recharge", 60, "#F59E0B", "☕", "break"},
		{"life-maintenance", "Life Maintenance", 60, "#F97316", "🏠", "personal"},
	},
	ProfileMom: {
		{"morning-routine", "Morning Routine", 45, "#F59E0B", "☀️", "personal"},
		{"kids-prep", "Kids Prep & School", 60, "#3B82F6", "🎒", "family"},
		{"meal-prep", "Meal Prep & Cooking", 90, "#10B981", "🍳", "household"},
		{"self-care", "Self-Care Time", 45, "#EC4899", "💆‍♀️", "personal"},
		{"learning", "Learning/Personal Growth", 60, "#8B5CF6", "📚", "development"},
		{"family-calls", "Family Calls/Relatives", 30, "#F97316", "📞", "social"},
		{"household", "Household Management", 60, "#06B6D4", "🏠", "household"},
		{"family-time", "Evening Family Time", 90, "#EF4444", "👨‍👩‍👧‍👦", "family"},
	},
}

// Valid reports whether t has an activity template.
func (t ProfileType) Valid() bool {
	_, ok := ActivityTemplates[t]
	return ok
}

// CreateProfileRequest is the body of a profile creation request. ID is
// optional; clients working offline may supply their own UUIDv7.
type CreateProfileRequest struct {
	ID     string      `json:"id,omitempty"`
	Name   string      `json:"name" binding:"required,min=1,max=20"`
	Type   ProfileType `json:"type" binding:"required"`
	Avatar string      `json:"avatar"`
}

// FocusRatingRequest is the body of a focus rating update
type FocusRatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}
