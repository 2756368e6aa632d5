package api

import (
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/assistant"
	"github.com/BerylCAtieno/network-navigator/internal/message"
	"github.com/BerylCAtieno/network-navigator/internal/models"
)

// Message generator payloads
type GenerateRequest struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Company      string `json:"company"`
	Context      string `json:"context"`
	PersonalInfo string `json:"personalInfo"`
	Tone         string `json:"tone"`
	Count        int    `json:"count,omitempty"`
}

func (r GenerateRequest) toMessageRequest(tone string) message.Request {
	return message.Request{
		Name:         r.Name,
		Role:         r.Role,
		Company:      r.Company,
		Context:      r.Context,
		PersonalInfo: r.PersonalInfo,
		Tone:         message.ParseTone(tone),
	}
}

type VariationsResponse struct {
	Variations []assistant.Result `json:"variations"`
}

type InteractionRequest struct {
	Type  string `json:"type"`
	Notes string `json:"notes"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

// ContactView is a contact plus the derived follow-up fields shown on a card.
type ContactView struct {
	models.Contact
	DaysSinceContact *int `json:"daysSinceContact"`
	NeedsFollowUp    bool `json:"needsFollowUp"`
}

type ContactsResponse struct {
	Contacts []ContactView `json:"contacts"`
	Count    int           `json:"count"`
}

type Diagnostics struct {
	Status          string   `json:"status"`
	GeneratorReady  bool     `json:"generatorReady"`
	Tones           []string `json:"tones"`
	AIModel         string   `json:"aiModel"`
	GeminiAvailable bool     `json:"geminiAvailable"`
	StorePath       string   `json:"storePath"`
	Contacts        int      `json:"contacts"`
	Timestamp       string   `json:"timestamp"`
	Hints           []string `json:"hints,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
