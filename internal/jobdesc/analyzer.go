// Package jobdesc derives the required-skill set from a job description.
package jobdesc

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-ranker/internal/fetch"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Analyze runs the skill matcher over the job description text. It is the
// same matching algorithm applied to resumes, so the required-skill set and
// candidate skill sets share one canonical term space.
func Analyze(text string, matcher *skills.Matcher) *types.JobDescription {
	return &types.JobDescription{
		RawText:        text,
		RequiredSkills: matcher.Match(text),
	}
}

// FromURL fetches a job posting page and strips it down to its main text
// using selectors tuned for job boards.
func FromURL(ctx context.Context, urlStr string) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("failed to extract job posting text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("job posting at %s contained no readable text", urlStr)
	}
	return text, nil
}
