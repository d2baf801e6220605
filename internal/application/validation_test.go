package application

import (
	"errors"
	"testing"
)

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid value",
			value: "Slept well",
			want:  "Slept well",
		},
		{
			name:  "trims surrounding whitespace",
			value: "  Slept well\n",
			want:  "Slept well",
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			value:   " \t\n ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateContent(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateContent() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != "content" {
					t.Errorf("expected field content, got %s", valErr.Field)
				}
				if !errors.Is(err, ErrEmptyContent) {
					t.Errorf("expected ErrEmptyContent, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ValidateContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseMood(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "valid", raw: "7", want: 7},
		{name: "surrounding whitespace", raw: " 10 ", want: 10},
		{name: "lower bound", raw: "1", want: 1},
		{name: "not a number", raw: "happy", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "fraction", raw: "7.5", wantErr: true},
		{name: "below range", raw: "0", wantErr: true},
		{name: "above range", raw: "11", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMood(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMood(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidMood) {
					t.Errorf("expected ErrInvalidMood, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseMood(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID("42"); err != nil || id != 42 {
		t.Errorf("ParseID(42) = %d, %v", id, err)
	}
	for _, raw := range []string{"", "abc", "0", "-3"} {
		if _, err := ParseID(raw); !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParseID(%q) error = %v, want ErrInvalidID", raw, err)
		}
	}
}

func TestStatusError_IsNotFound(t *testing.T) {
	err := error(&StatusError{Op: "delete entry", Status: 404})
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected 404 StatusError to match ErrNotFound")
	}

	err = &StatusError{Op: "delete entry", Status: 500}
	if errors.Is(err, ErrNotFound) {
		t.Error("500 StatusError must not match ErrNotFound")
	}
}
