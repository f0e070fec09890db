// Package types defines the data model shared across the ranking pipeline.
package types

import "github.com/google/uuid"

// Candidate holds everything extracted from a single uploaded resume.
// It is populated in one pass by the pipeline; Score is set once by the
// ranker and the struct is not mutated afterwards.
type Candidate struct {
	ID             uuid.UUID `json:"id"`
	SourceFilename string    `json:"source_filename"`
	RawText        string    `json:"raw_text,omitempty"`
	Name           string    `json:"name,omitempty"`
	Emails         []string  `json:"emails"`
	Phones         []string  `json:"phones"`
	Skills         []string  `json:"skills"`
	Score          int       `json:"score"`
}

// JobDescription is derived once per ranking run from the pasted or fetched
// job posting text.
type JobDescription struct {
	RawText        string   `json:"raw_text,omitempty"`
	RequiredSkills []string `json:"required_skills"`
}

// FileFailure records a resume that could not be processed. Failures are
// reported alongside successful results and never abort the batch.
type FileFailure struct {
	SourceFilename string `json:"source_filename"`
	Reason         string `json:"reason"`
}

// Report is the outcome of one ranking run: the analyzed job description,
// candidates sorted by score descending (ties keep upload order), and any
// per-file failures.
type Report struct {
	Job        *JobDescription `json:"job"`
	Candidates []Candidate     `json:"candidates"`
	Failures   []FileFailure   `json:"failures,omitempty"`
}

// MatchedSkillCount returns how many of the candidate's skills appear in the
// required set. Both sides come from the same matcher, so terms compare as
// exact lowercase strings.
func (c *Candidate) MatchedSkillCount(required []string) int {
	if len(c.Skills) == 0 || len(required) == 0 {
		return 0
	}
	requiredSet := make(map[string]bool, len(required))
	for _, skill := range required {
		requiredSet[skill] = true
	}
	count := 0
	for _, skill := range c.Skills {
		if requiredSet[skill] {
			count++
		}
	}
	return count
}
