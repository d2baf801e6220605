package domain

import (
	"testing"
	"time"
)

func TestEntryTime(t *testing.T) {
	tests := []struct {
		name      string
		createdAt string
		wantOK    bool
		want      time.Time
	}{
		{
			name:      "naive microseconds",
			createdAt: "2024-03-05T14:30:00.123456",
			wantOK:    true,
			want:      time.Date(2024, 3, 5, 14, 30, 0, 123456000, time.UTC),
		},
		{
			name:      "rfc3339 with zone",
			createdAt: "2024-03-05T14:30:00+00:00",
			wantOK:    true,
			want:      time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			name:      "space separated",
			createdAt: "2024-03-05 14:30:00",
			wantOK:    true,
			want:      time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			name:      "garbage",
			createdAt: "yesterday",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Entry{CreatedAt: tt.createdAt}.Time()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Time() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntryDisplay_FallsBackToRaw(t *testing.T) {
	e := Entry{CreatedAt: "not a date"}
	if e.DisplayTime() != "not a date" {
		t.Errorf("DisplayTime() = %q", e.DisplayTime())
	}
	if e.DisplayDate() != "not a date" {
		t.Errorf("DisplayDate() = %q", e.DisplayDate())
	}
}

func TestEntrySentimentString(t *testing.T) {
	tests := map[float64]string{
		0.5:    "0.50",
		-0.125: "-0.12",
		0:      "0.00",
		1:      "1.00",
	}
	for in, want := range tests {
		if got := (Entry{Sentiment: in}).SentimentString(); got != want {
			t.Errorf("SentimentString(%v) = %q, want %q", in, got, want)
		}
	}
}
