// Package contact extracts email addresses and phone numbers from resume text.
package contact

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region used to interpret phone numbers written
// without a country code.
const DefaultRegion = "US"

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phoneCandidatePattern is deliberately permissive: it only nominates
	// substrings that look like a phone number (optional country code,
	// optional parens, common separators). Each candidate is then validated
	// with the phonenumbers library, which does the real filtering.
	phoneCandidatePattern = regexp.MustCompile(`\+?\d{0,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// Emails returns every email address found in the text, in first-seen order,
// with duplicates collapsed case-insensitively.
func Emails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)

	seen := make(map[string]bool, len(matches))
	emails := make([]string, 0, len(matches))
	for _, match := range matches {
		key := strings.ToLower(match)
		if seen[key] {
			continue
		}
		seen[key] = true
		emails = append(emails, match)
	}
	return emails
}

// Phones returns every valid phone number found in the text, normalized to
// E.164 and deduplicated, in first-seen order. Numbers without an explicit
// country code are interpreted in defaultRegion ("" falls back to
// DefaultRegion). Candidates the phonenumbers library rejects are dropped.
func Phones(text string, defaultRegion string) []string {
	if defaultRegion == "" {
		defaultRegion = DefaultRegion
	}

	candidates := phoneCandidatePattern.FindAllString(text, -1)

	seen := make(map[string]bool, len(candidates))
	phones := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		number, err := phonenumbers.Parse(strings.TrimSpace(candidate), defaultRegion)
		if err != nil || !phonenumbers.IsValidNumber(number) {
			continue
		}
		formatted := phonenumbers.Format(number, phonenumbers.E164)
		if seen[formatted] {
			continue
		}
		seen[formatted] = true
		phones = append(phones, formatted)
	}
	return phones
}
