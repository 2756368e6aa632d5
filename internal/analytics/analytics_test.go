package analytics

import (
	"testing"
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC)

func ago(d time.Duration) string {
	return now.Add(-d).Format(time.RFC3339Nano)
}

func ptr(s string) *string { return &s }

func fixture() []models.Contact {
	return []models.Contact{
		{
			Name:            "hot recent",
			WarmthLevel:     models.WarmthHot,
			CreatedAt:       ago(2 * day),
			LastContactDate: ptr(ago(1 * day)),
			Interactions: []models.Interaction{
				{Type: "email", Date: ago(1 * day)},
				{Type: "call", Date: ago(1 * day)},
				{Type: "meeting", Date: ago(45 * day)},
			},
		},
		{
			Name:            "warm stale",
			WarmthLevel:     models.WarmthWarm,
			CreatedAt:       ago(90 * day),
			LastContactDate: ptr(ago(31 * day)),
			Interactions: []models.Interaction{
				{Type: "email", Date: ago(31 * day)},
			},
		},
		{
			Name:        "cold never",
			WarmthLevel: models.WarmthCold,
			CreatedAt:   ago(40 * day),
		},
		{
			Name:            "cold exactly thirty",
			WarmthLevel:     models.WarmthCold,
			CreatedAt:       ago(60 * day),
			LastContactDate: ptr(ago(30 * day)),
		},
	}
}

func TestStats(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), now)

	got := a.Stats(fixture())
	want := Stats{
		TotalContacts:     4,
		HotContacts:       1,
		TotalInteractions: 4,
		NeedsFollowUp:     2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}

func TestStats_UnreadableDateNotFlagged(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), now)
	cs := []models.Contact{
		{Name: "garbled", LastContactDate: ptr("last tuesday")},
		{Name: "never"},
	}

	assert.Equal(t, 1, a.Stats(cs).NeedsFollowUp)
	assert.False(t, a.NeedsFollowUp(cs[0]))
}

func TestNeedsFollowUp(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), now)
	cs := fixture()

	assert.False(t, a.NeedsFollowUp(cs[0]))
	assert.True(t, a.NeedsFollowUp(cs[1]))
	assert.False(t, a.NeedsFollowUp(cs[2]), "never contacted is not flagged on the card")
	assert.False(t, a.NeedsFollowUp(cs[3]))

	days, ok := a.DaysSinceContact(cs[1])
	require.True(t, ok)
	assert.Equal(t, 31, days)
}

func TestWarmth(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), now)

	got := a.Warmth(fixture())
	want := []WarmthShare{
		{Level: models.WarmthCold, Count: 2, Percent: 50},
		{Level: models.WarmthWarm, Count: 1, Percent: 25},
		{Level: models.WarmthHot, Count: 1, Percent: 25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Warmth mismatch (-want +got):\n%s", diff)
	}

	for _, share := range a.Warmth(nil) {
		assert.Zero(t, share.Percent)
	}
}

func TestActivity(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), now)

	days := a.Activity(fixture())
	require.Len(t, days, 30)
	assert.Equal(t, "2025-06-01", days[0].Date)
	assert.Equal(t, "2025-06-30", days[29].Date)

	total := 0
	for _, d := range days {
		total += d.Count
	}
	assert.Equal(t, 2, total, "only the two interactions from yesterday fall in the window")
	assert.Equal(t, 2, days[28].Count)
}

func TestInsights(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), now)

	got := a.Insights(fixture())
	var titles []string
	for _, in := range got {
		titles = append(titles, in.Title)
	}
	assert.Equal(t, []string{"Follow-up Needed", "Strong Network", "Active Networking", "Network Growth"}, titles)
	assert.Contains(t, got[0].Description, "You have 2 contacts")
	assert.Contains(t, got[1].Description, "25% of your contacts")
	assert.Contains(t, got[2].Description, "You average 1 interactions")
	assert.Contains(t, got[3].Description, "You've added 1 new contacts")

	assert.Empty(t, a.Insights(nil))
}

func TestReport(t *testing.T) {
	r := NewAnalyzer(DefaultConfig(), now).Report(fixture())

	assert.Equal(t, 4, r.Stats.TotalContacts)
	assert.Len(t, r.Warmth, 3)
	assert.Len(t, r.Activity, 30)
	assert.NotEmpty(t, r.Insights)
}
