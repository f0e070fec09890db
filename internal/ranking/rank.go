// Package ranking scores candidates against the required-skill set and
// orders them.
package ranking

import (
	"sort"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Score returns the raw intersection count between a candidate's skills and
// the required set. No normalization by resume length or skill count — a
// candidate matching 3 of 10 required skills scores 3.
func Score(candidateSkills, requiredSkills []string) int {
	c := types.Candidate{Skills: candidateSkills}
	return c.MatchedSkillCount(requiredSkills)
}

// Rank sets each candidate's score and sorts the slice by score descending.
// The sort is stable, so candidates with equal scores keep their original
// upload order. The input slice is modified in place and returned.
func Rank(candidates []types.Candidate, requiredSkills []string) []types.Candidate {
	for i := range candidates {
		candidates[i].Score = candidates[i].MatchedSkillCount(requiredSkills)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}
