package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/models"
)

const day = 24 * time.Hour

type Config struct {
	FollowUpDays int
	ActivityDays int
	GrowthDays   int
}

func DefaultConfig() Config {
	return Config{
		FollowUpDays: 30,
		ActivityDays: 30,
		GrowthDays:   30,
	}
}

type Analyzer struct {
	config Config
	now    time.Time
}

func NewAnalyzer(cfg Config, now time.Time) *Analyzer {
	return &Analyzer{config: cfg, now: now}
}

type Stats struct {
	TotalContacts     int `json:"totalContacts"`
	HotContacts       int `json:"hotContacts"`
	TotalInteractions int `json:"totalInteractions"`
	NeedsFollowUp     int `json:"needsFollowUp"`
}

type WarmthShare struct {
	Level   models.WarmthLevel `json:"level"`
	Count   int                `json:"count"`
	Percent float64            `json:"percent"`
}

type DayActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Report struct {
	Stats    Stats         `json:"stats"`
	Warmth   []WarmthShare `json:"warmth"`
	Activity []DayActivity `json:"activity"`
	Insights []Insight     `json:"insights"`
}

func (a *Analyzer) Report(contacts []models.Contact) Report {
	return Report{
		Stats:    a.Stats(contacts),
		Warmth:   a.Warmth(contacts),
		Activity: a.Activity(contacts),
		Insights: a.Insights(contacts),
	}
}

func (a *Analyzer) Stats(contacts []models.Contact) Stats {
	stats := Stats{TotalContacts: len(contacts)}

	for _, c := range contacts {
		if c.WarmthLevel == models.WarmthHot {
			stats.HotContacts++
		}
		stats.TotalInteractions += len(c.Interactions)

		// Never contacted counts; an unreadable date does not.
		if c.LastContactDate == nil || a.NeedsFollowUp(c) {
			stats.NeedsFollowUp++
		}
	}

	return stats
}

// DaysSinceContact returns whole days since the last interaction. ok is false
// when the contact has never been reached or the date is unreadable.
func (a *Analyzer) DaysSinceContact(c models.Contact) (int, bool) {
	if c.LastContactDate == nil {
		return 0, false
	}
	last, err := parseTime(*c.LastContactDate)
	if err != nil {
		return 0, false
	}
	return int(math.Floor(a.now.Sub(last).Hours() / 24)), true
}

// NeedsFollowUp is the per-card flag: reached before, and over the threshold.
func (a *Analyzer) NeedsFollowUp(c models.Contact) bool {
	days, ok := a.DaysSinceContact(c)
	return ok && days > a.config.FollowUpDays
}

func (a *Analyzer) Warmth(contacts []models.Contact) []WarmthShare {
	counts := map[models.WarmthLevel]int{}
	for _, c := range contacts {
		counts[c.WarmthLevel]++
	}

	levels := []models.WarmthLevel{models.WarmthCold, models.WarmthWarm, models.WarmthHot}
	total := 0
	for _, l := range levels {
		total += counts[l]
	}

	shares := make([]WarmthShare, 0, len(levels))
	for _, l := range levels {
		share := WarmthShare{Level: l, Count: counts[l]}
		if total > 0 {
			share.Percent = float64(counts[l]) / float64(total) * 100
		}
		shares = append(shares, share)
	}
	return shares
}

// Activity counts interactions per UTC day over the trailing window, oldest first.
func (a *Analyzer) Activity(contacts []models.Contact) []DayActivity {
	today := a.now.UTC().Truncate(day)

	days := make([]DayActivity, a.config.ActivityDays)
	index := make(map[string]int, len(days))
	for i := range days {
		date := today.Add(-time.Duration(a.config.ActivityDays-1-i) * day).Format(time.DateOnly)
		days[i] = DayActivity{Date: date}
		index[date] = i
	}

	for _, c := range contacts {
		for _, in := range c.Interactions {
			t, err := parseTime(in.Date)
			if err != nil {
				continue
			}
			if i, ok := index[t.UTC().Format(time.DateOnly)]; ok {
				days[i].Count++
			}
		}
	}

	return days
}

func (a *Analyzer) Insights(contacts []models.Contact) []Insight {
	stats := a.Stats(contacts)
	var insights []Insight

	if stats.NeedsFollowUp > 0 {
		insights = append(insights, Insight{
			Title:       "Follow-up Needed",
			Description: fmt.Sprintf("You have %d contacts who haven't been contacted in over %d days. Consider reaching out to maintain these relationships.", stats.NeedsFollowUp, a.config.FollowUpDays),
		})
	}

	if stats.HotContacts > 0 {
		pct := math.Round(float64(stats.HotContacts) / float64(stats.TotalContacts) * 100)
		insights = append(insights, Insight{
			Title:       "Strong Network",
			Description: fmt.Sprintf("%d%% of your contacts are \"hot\" relationships. This indicates good relationship building!", int(pct)),
		})
	}

	if stats.TotalInteractions > 0 {
		avg := math.Round(float64(stats.TotalInteractions) / float64(stats.TotalContacts))
		insights = append(insights, Insight{
			Title:       "Active Networking",
			Description: fmt.Sprintf("You average %d interactions per contact. Keep up the consistent communication!", int(avg)),
		})
	}

	cutoff := a.now.Add(-time.Duration(a.config.GrowthDays) * day)
	recent := 0
	for _, c := range contacts {
		created, err := parseTime(c.CreatedAt)
		if err == nil && created.After(cutoff) {
			recent++
		}
	}
	if recent > 0 {
		insights = append(insights, Insight{
			Title:       "Network Growth",
			Description: fmt.Sprintf("You've added %d new contacts in the last %d days. Great networking momentum!", recent, a.config.GrowthDays),
		})
	}

	return insights
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
