package api

import (
	"strings"
	"testing"
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatContacts(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	stale := now.Add(-40 * 24 * time.Hour).Format(time.RFC3339)

	contacts := []models.Contact{
		{
			ID:              "c1",
			Name:            "Ada",
			WarmthLevel:     models.WarmthWarm,
			Tags:            []string{"math", "engines"},
			LastContactDate: &stale,
			Interactions: []models.Interaction{
				{Type: "email", Notes: "first", Date: stale},
				{Type: "call", Notes: "second", Date: stale},
				{Type: "meeting", Notes: "third", Date: stale},
			},
		},
		{ID: "c2", Name: "Bob", Company: "Acme", Role: "CTO", WarmthLevel: models.WarmthCold},
	}

	out := FormatContacts(contacts, now)

	assert.Contains(t, out, "## Ada [warm]")
	assert.Contains(t, out, "- Company: No company")
	assert.Contains(t, out, "**Needs follow-up** (40 days ago)")
	assert.Contains(t, out, "- Tags: math, engines")
	assert.Contains(t, out, "- Last contact: 2025-03-22")
	assert.NotContains(t, out, "first")
	assert.Contains(t, out, "call (2025-03-22): second")
	assert.Contains(t, out, "meeting (2025-03-22): third")
	assert.Equal(t, 1, strings.Count(out, "\n---\n"))
	assert.Contains(t, out, "- Last contact: Never")
	assert.Contains(t, out, "- Role: CTO")

	assert.Contains(t, FormatContacts(nil, now), "No contacts found")
}
