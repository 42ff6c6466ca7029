package mimetypes

import (
	"testing"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Plain text with charset", "text/plain; charset=utf-8", TextPlain, true},
		{"CSV", "text/csv", TextCSV, true},
		{"CSV with charset", "text/csv; charset=utf-8", TextCSV, true},

		{"Mismatch", "text/plain; charset=utf-8", TextCSV, false},
		{"Unknown type", "application/octet-stream", TextPlain, false},
		{"Invalid MIME", "not a mime", TextPlain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			if ok != tt.want {
				t.Errorf("Matches(%q, %q) = %v; want %v", tt.detected, tt.expected, ok, tt.want)
			}
		})
	}
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		want     MIME
		ok       bool
	}{
		{"CSV is tabular", "text/csv", TextCSV, true},
		{"Plain text is tabular", "text/plain; charset=utf-8", TextPlain, true},
		{"PDF is not tabular", "application/pdf", Unknown, false},
		{"Zip is not tabular", "application/zip", Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchesAny(tt.detected, Tabular...)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MatchesAny(%q) = %v, %v; want %v, %v", tt.detected, got, ok, tt.want, tt.ok)
			}
		})
	}
}
