package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/analytics"
	"github.com/BerylCAtieno/network-navigator/internal/models"
)

// FormatContacts renders contacts as markdown cards, the text equivalent of
// the contact grid.
func FormatContacts(contacts []models.Contact, now time.Time) string {
	if len(contacts) == 0 {
		return "No contacts found. Add your first contact to get started with networking!\n"
	}

	a := analytics.NewAnalyzer(analytics.DefaultConfig(), now)

	var builder strings.Builder
	for i, contact := range contacts {
		if i > 0 {
			builder.WriteString("\n---\n\n")
		}
		writeCard(&builder, contact, a)
	}
	return builder.String()
}

func writeCard(builder *strings.Builder, contact models.Contact, a *analytics.Analyzer) {
	builder.WriteString(fmt.Sprintf("## %s [%s]\n", contact.Name, contact.WarmthLevel))
	builder.WriteString(fmt.Sprintf("- ID: %s\n", contact.ID))
	builder.WriteString(fmt.Sprintf("- Company: %s\n", orDefault(contact.Company, "No company")))
	builder.WriteString(fmt.Sprintf("- Role: %s\n", orDefault(contact.Role, "No title")))

	if contact.LinkedIn != "" {
		builder.WriteString(fmt.Sprintf("- LinkedIn: %s\n", contact.LinkedIn))
	}
	if contact.HowWeMet != "" {
		builder.WriteString(fmt.Sprintf("- How we met: %s\n", contact.HowWeMet))
	}
	if a.NeedsFollowUp(contact) {
		days, _ := a.DaysSinceContact(contact)
		builder.WriteString(fmt.Sprintf("- **Needs follow-up** (%d days ago)\n", days))
	}
	if len(contact.Tags) > 0 {
		builder.WriteString(fmt.Sprintf("- Tags: %s\n", strings.Join(contact.Tags, ", ")))
	}

	last := "Never"
	if contact.LastContactDate != nil {
		last = shortDate(*contact.LastContactDate)
	}
	builder.WriteString(fmt.Sprintf("- Last contact: %s\n", last))

	if n := len(contact.Interactions); n > 0 {
		builder.WriteString("\n**Recent Interactions:**\n")
		start := n - 2
		if start < 0 {
			start = 0
		}
		for _, in := range contact.Interactions[start:] {
			builder.WriteString(fmt.Sprintf("- %s (%s): %s\n", in.Type, shortDate(in.Date), strings.TrimSpace(in.Notes)))
		}
	}
}

func shortDate(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Format(time.DateOnly)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
