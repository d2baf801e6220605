package domain

import (
	"fmt"
	"time"
)

// Mood bounds accepted by the backend
const (
	MinMood = 1
	MaxMood = 10
)

// Entry is one journal record as returned by the backend.
// The backend owns the authoritative copy; sentiment is computed from content
// server-side and is read-only here.
type Entry struct {
	ID        int     `json:"id"`
	Content   string  `json:"content"`
	Mood      int     `json:"mood"`
	Sentiment float64 `json:"sentiment"`
	CreatedAt string  `json:"created_at"`
}

// timestamp layouts emitted by the backend, tried in order
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time parses CreatedAt. Timestamps without a zone are treated as UTC,
// which is how the backend stores them.
func (e Entry) Time() (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, e.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DisplayTime formats the creation time in local time, falling back to the raw value
func (e Entry) DisplayTime() string {
	t, ok := e.Time()
	if !ok {
		return e.CreatedAt
	}
	return t.Local().Format("2006-01-02 15:04")
}

// DisplayDate formats the creation date for chart labels
func (e Entry) DisplayDate() string {
	t, ok := e.Time()
	if !ok {
		return e.CreatedAt
	}
	return t.Local().Format("Jan 2")
}

// SentimentString renders the sentiment with two decimals
func (e Entry) SentimentString() string {
	return fmt.Sprintf("%.2f", e.Sentiment)
}

// Anomaly returns the anomaly label for this entry
func (e Entry) Anomaly() Anomaly {
	return Classify(e.Mood, e.Sentiment)
}
