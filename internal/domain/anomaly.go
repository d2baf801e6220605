package domain

// Anomaly labels a mismatch between self-reported mood and computed sentiment
type Anomaly string

const (
	AnomalyNone         Anomaly = ""
	AnomalyMasking      Anomaly = "Masking?"      // high mood, negative text
	AnomalyOverCritical Anomaly = "Over-Critical" // low mood, positive text
)

// sentiment magnitude that must be exceeded to contradict the mood
const anomalySentimentEdge = 0.2

// Classify returns the anomaly label for a (mood, sentiment) pair.
// Rules are evaluated in order and the first match wins. Moods 5 and 6
// never flag regardless of sentiment.
func Classify(mood int, sentiment float64) Anomaly {
	if mood >= 7 && sentiment < -anomalySentimentEdge {
		return AnomalyMasking
	}
	if mood <= 4 && sentiment > anomalySentimentEdge {
		return AnomalyOverCritical
	}
	return AnomalyNone
}

// IsAnomaly reports whether a label was assigned
func (a Anomaly) IsAnomaly() bool {
	return a != AnomalyNone
}

func (a Anomaly) String() string {
	return string(a)
}
