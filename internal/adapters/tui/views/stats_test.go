package views

import (
	"strings"
	"testing"

	"moodlog/internal/domain"
)

func TestRenderStats(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.Entry
		want    []string
	}{
		{"empty", nil, []string{"Entries 0", "Avg mood 0.0", "Avg sentiment 0.00"}},
		{"mixed", []domain.Entry{{Mood: 8, Sentiment: 0.5}, {Mood: 2, Sentiment: -0.5}}, []string{"Entries 2", "5.0", "0.00"}},
		{"rounded", []domain.Entry{{Mood: 7, Sentiment: 0.333}, {Mood: 8, Sentiment: 0.333}}, []string{"7.5", "0.33"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderStats(domain.ComputeStats(tt.entries))
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("RenderStats() = %q, missing %q", got, w)
				}
			}
		})
	}
}
