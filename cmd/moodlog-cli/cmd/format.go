package cmd

import (
	"fmt"
	"io"
	"strings"

	"moodlog/internal/domain"
)

func printEntries(w io.Writer, entries []domain.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}
	for _, e := range entries {
		printEntry(w, e)
	}
}

func printEntry(w io.Writer, e domain.Entry) {
	fmt.Fprintf(w, "#%d  %s  mood %d  sentiment %s", e.ID, e.DisplayTime(), e.Mood, e.SentimentString())
	if a := e.Anomaly(); a.IsAnomaly() {
		fmt.Fprintf(w, "  [%s]", a)
	}
	fmt.Fprintln(w)
	for _, line := range strings.Split(e.Content, "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
}

func printStats(w io.Writer, s domain.Stats) {
	fmt.Fprintf(w, "Entries:        %d\n", s.Total)
	fmt.Fprintf(w, "Avg mood:       %.1f (%s)\n", s.AvgMood, s.MoodTier)
	fmt.Fprintf(w, "Avg sentiment:  %.2f (%s)\n", s.AvgSentiment, s.SentimentTier)
}
