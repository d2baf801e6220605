package domain

import "testing"

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)

	if s.Total != 0 || s.AvgMood != 0 || s.AvgSentiment != 0 {
		t.Fatalf("expected zero stats, got %+v", s)
	}
	if s.MoodTier != TierNegative {
		t.Errorf("mood tier = %s, want negative", s.MoodTier)
	}
	// 0 >= -0.2, so an empty list lands in the neutral sentiment tier
	if s.SentimentTier != TierNeutral {
		t.Errorf("sentiment tier = %s, want neutral", s.SentimentTier)
	}
}

func TestComputeStats_Mixed(t *testing.T) {
	entries := []Entry{
		{ID: 1, Mood: 8, Sentiment: 0.5},
		{ID: 2, Mood: 2, Sentiment: -0.5},
	}

	s := ComputeStats(entries)

	if s.Total != 2 {
		t.Errorf("total = %d, want 2", s.Total)
	}
	if s.AvgMood != 5.0 {
		t.Errorf("avg mood = %v, want 5.0", s.AvgMood)
	}
	if s.MoodTier != TierNeutral {
		t.Errorf("mood tier = %s, want neutral", s.MoodTier)
	}
	if s.AvgSentiment != 0 {
		t.Errorf("avg sentiment = %v, want 0", s.AvgSentiment)
	}
	if s.SentimentTier != TierNeutral {
		t.Errorf("sentiment tier = %s, want neutral", s.SentimentTier)
	}
}

func TestComputeStats_Rounding(t *testing.T) {
	entries := []Entry{
		{Mood: 7, Sentiment: 0.333},
		{Mood: 8, Sentiment: 0.333},
		{Mood: 8, Sentiment: 0.334},
	}

	s := ComputeStats(entries)

	if s.AvgMood != 7.7 {
		t.Errorf("avg mood = %v, want 7.7", s.AvgMood)
	}
	if s.AvgSentiment != 0.33 {
		t.Errorf("avg sentiment = %v, want 0.33", s.AvgSentiment)
	}
	if s.MoodTier != TierPositive || s.SentimentTier != TierPositive {
		t.Errorf("tiers = %s/%s, want positive/positive", s.MoodTier, s.SentimentTier)
	}
}

func TestMoodTier(t *testing.T) {
	tests := []struct {
		avg  float64
		want Tier
	}{
		{10, TierPositive},
		{7, TierPositive},
		{6.9, TierNeutral},
		{4, TierNeutral},
		{3.9, TierNegative},
		{0, TierNegative},
	}

	for _, tt := range tests {
		if got := MoodTier(tt.avg); got != tt.want {
			t.Errorf("MoodTier(%v) = %s, want %s", tt.avg, got, tt.want)
		}
	}
}

func TestSentimentTier(t *testing.T) {
	tests := []struct {
		avg  float64
		want Tier
	}{
		{1, TierPositive},
		{0.2, TierPositive},
		{0.19, TierNeutral},
		{-0.2, TierNeutral},
		{-0.21, TierNegative},
		{-1, TierNegative},
	}

	for _, tt := range tests {
		if got := SentimentTier(tt.avg); got != tt.want {
			t.Errorf("SentimentTier(%v) = %s, want %s", tt.avg, got, tt.want)
		}
	}
}
