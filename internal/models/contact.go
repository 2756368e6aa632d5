package models

type WarmthLevel string

const (
	WarmthCold WarmthLevel = "cold"
	WarmthWarm WarmthLevel = "warm"
	WarmthHot  WarmthLevel = "hot"
)

func (w WarmthLevel) IsValid() bool {
	switch w {
	case WarmthCold, WarmthWarm, WarmthHot:
		return true
	}
	return false
}

type Contact struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Company         string        `json:"company"`
	Role            string        `json:"role"`
	LinkedIn        string        `json:"linkedin"`
	HowWeMet        string        `json:"howWeMet"`
	Interests       string        `json:"interests"`
	Notes           string        `json:"notes"`
	Tags            []string      `json:"tags"`
	WarmthLevel     WarmthLevel   `json:"warmthLevel"`
	Interactions    []Interaction `json:"interactions"`
	CreatedAt       string        `json:"createdAt"`
	LastContactDate *string       `json:"lastContactDate"`
}

// HasTag reports exact membership, matching the tag filter semantics.
func (c Contact) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type Interaction struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Notes string `json:"notes"`
	Date  string `json:"date"`
}

const InteractionGeneratedMessage = "generated-message"

type Settings struct {
	AIModel               string `json:"aiModel"`
	MessageTone           string `json:"messageTone"`
	FollowUpNotifications bool   `json:"followUpNotifications"`
	ReminderFrequency     string `json:"reminderFrequency"`
	DarkMode              bool   `json:"darkMode"`
}

const (
	AIModelSimple = "simple-ai"
	AIModelGemini = "gemini"
)

func DefaultSettings() Settings {
	return Settings{
		AIModel:               AIModelSimple,
		MessageTone:           "professional",
		FollowUpNotifications: true,
		ReminderFrequency:     "weekly",
	}
}

type Backup struct {
	Contacts   []Contact `json:"contacts"`
	ExportDate string    `json:"exportDate"`
	Version    string    `json:"version"`
}

const BackupVersion = "1.0"
