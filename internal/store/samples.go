package store

import (
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/models"
)

// SeedSamples adds two demonstration contacts when the store is empty.
// It reports whether anything was added.
func (s *Store) SeedSamples() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.contacts) > 0 {
		return false, nil
	}

	now := s.now().UTC()
	daysAgo := func(d int) string {
		return now.Add(-time.Duration(d) * 24 * time.Hour).Format(time.RFC3339Nano)
	}
	sevenDays, threeDays := daysAgo(7), daysAgo(3)

	s.contacts = []models.Contact{
		{
			ID:          "sample1",
			Name:        "Sarah Johnson",
			Company:     "TechCorp",
			Role:        "VP of Engineering",
			LinkedIn:    "https://linkedin.com/in/sarahjohnson",
			HowWeMet:    "LinkedIn",
			Interests:   "AI, Machine Learning, Team Leadership",
			Notes:       "Very responsive, interested in discussing AI trends",
			Tags:        []string{"hiring-manager", "target-company"},
			WarmthLevel: models.WarmthWarm,
			Interactions: []models.Interaction{
				{ID: "int1", Type: "linkedin", Notes: "Initial connection request accepted", Date: sevenDays},
			},
			CreatedAt:       sevenDays,
			LastContactDate: &sevenDays,
		},
		{
			ID:          "sample2",
			Name:        "Mike Chen",
			Company:     "StartupXYZ",
			Role:        "CTO",
			LinkedIn:    "https://linkedin.com/in/mikechen",
			HowWeMet:    "Industry Conference",
			Interests:   "Product Development, Scaling Teams",
			Notes:       "Met at TechConf 2024, very knowledgeable about scaling",
			Tags:        []string{"industry-peer", "startup"},
			WarmthLevel: models.WarmthHot,
			Interactions: []models.Interaction{
				{ID: "int2", Type: "meeting", Notes: "Had coffee chat, discussed scaling challenges", Date: threeDays},
			},
			CreatedAt:       daysAgo(10),
			LastContactDate: &threeDays,
		},
	}

	if err := s.persist(); err != nil {
		s.contacts = []models.Contact{}
		return false, err
	}
	return true, nil
}
