package export

import (
	"strings"
	"time"
)

// Filename derives the download name from the client name and export date,
// e.g. "assessment_jane-doe_2026-09-01.pdf".
func Filename(clientName string, now time.Time) string {
	slug := strings.ToLower(strings.TrimSpace(clientName))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		}
		return -1
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "client"
	}
	return "assessment_" + slug + "_" + now.Format("2006-01-02") + ".pdf"
}
