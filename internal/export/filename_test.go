package export

import (
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name   string
		client string
		want   string
	}{
		{"plain name", "Jane Doe", "assessment_jane-doe_2026-09-01.pdf"},
		{"accents stripped", "Léa Müller", "assessment_la-mller_2026-09-01.pdf"},
		{"empty name", "", "assessment_client_2026-09-01.pdf"},
		{"symbols only", "@#$", "assessment_client_2026-09-01.pdf"},
		{"surrounding space", "  Bob  ", "assessment_bob_2026-09-01.pdf"},
	}
	for _, tc := range cases {
		if got := Filename(tc.client, now); got != tc.want {
			t.Errorf("%s: Filename(%q) = %q, want %q", tc.name, tc.client, got, tc.want)
		}
	}
}
