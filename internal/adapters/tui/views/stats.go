package views

import (
	"fmt"
	"strings"

	"moodlog/internal/adapters/tui/styles"
	"moodlog/internal/domain"
)

// RenderStats renders the summary line. Colors come from the tiers of s
// alone, so nothing from a previous render carries over.
func RenderStats(s domain.Stats) string {
	parts := []string{
		styles.InputLabel.Render("Entries") + " " + fmt.Sprintf("%d", s.Total),
		styles.InputLabel.Render("Avg mood") + " " + RenderTier(fmt.Sprintf("%.1f", s.AvgMood), s.MoodTier),
		styles.InputLabel.Render("Avg sentiment") + " " + RenderTier(fmt.Sprintf("%.2f", s.AvgSentiment), s.SentimentTier),
	}
	return strings.Join(parts, "   ")
}
