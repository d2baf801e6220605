package domain

import "math"

// Tier is the visual classification bucket for an aggregate
type Tier int

const (
	TierNegative Tier = iota
	TierNeutral
	TierPositive
)

// String returns the string representation of the tier
func (t Tier) String() string {
	switch t {
	case TierPositive:
		return "positive"
	case TierNeutral:
		return "neutral"
	default:
		return "negative"
	}
}

// Stats holds aggregates over a list of entries
type Stats struct {
	Total         int
	AvgMood       float64 // rounded to 1 decimal
	AvgSentiment  float64 // rounded to 2 decimals
	MoodTier      Tier
	SentimentTier Tier
}

// ComputeStats aggregates entries. Averages are 0 for an empty list and
// tiers are derived from the rounded averages.
func ComputeStats(entries []Entry) Stats {
	s := Stats{Total: len(entries)}
	if s.Total > 0 {
		var sumMood, sumSentiment float64
		for _, e := range entries {
			sumMood += float64(e.Mood)
			sumSentiment += e.Sentiment
		}
		s.AvgMood = round(sumMood/float64(s.Total), 1)
		s.AvgSentiment = round(sumSentiment/float64(s.Total), 2)
	}
	s.MoodTier = MoodTier(s.AvgMood)
	s.SentimentTier = SentimentTier(s.AvgSentiment)
	return s
}

// MoodTier classifies an average mood on the 1-10 scale
func MoodTier(avg float64) Tier {
	switch {
	case avg >= 7:
		return TierPositive
	case avg >= 4:
		return TierNeutral
	default:
		return TierNegative
	}
}

// SentimentTier classifies an average sentiment on the -1..1 scale
func SentimentTier(avg float64) Tier {
	switch {
	case avg >= 0.2:
		return TierPositive
	case avg >= -0.2:
		return TierNeutral
	default:
		return TierNegative
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0 // normalize -0
	}
	return r
}
