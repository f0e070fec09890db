package ranking

import (
	"testing"

	"github.com/jonathan/resume-ranker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	assert.Equal(t, 2, Score([]string{"python", "sql", "react"}, []string{"python", "sql", "docker"}))
	assert.Equal(t, 0, Score([]string{"react"}, []string{"python"}))
	assert.Equal(t, 0, Score(nil, []string{"python"}))
	assert.Equal(t, 0, Score([]string{"python"}, nil))
}

func TestRank_Descending(t *testing.T) {
	candidates := []types.Candidate{
		{SourceFilename: "a.pdf", Skills: []string{"python"}},
		{SourceFilename: "b.pdf", Skills: []string{"python", "sql", "docker"}},
		{SourceFilename: "c.pdf", Skills: []string{"python", "sql"}},
	}

	ranked := Rank(candidates, []string{"python", "sql", "docker"})

	require.Len(t, ranked, 3)
	assert.Equal(t, "b.pdf", ranked[0].SourceFilename)
	assert.Equal(t, 3, ranked[0].Score)
	assert.Equal(t, "c.pdf", ranked[1].SourceFilename)
	assert.Equal(t, 2, ranked[1].Score)
	assert.Equal(t, "a.pdf", ranked[2].SourceFilename)
	assert.Equal(t, 1, ranked[2].Score)
}

func TestRank_TiesKeepUploadOrder(t *testing.T) {
	candidates := []types.Candidate{
		{SourceFilename: "first.pdf", Skills: []string{"python"}},
		{SourceFilename: "second.pdf", Skills: []string{"python"}},
		{SourceFilename: "third.pdf", Skills: []string{"sql"}},
		{SourceFilename: "winner.pdf", Skills: []string{"python", "sql"}},
	}

	ranked := Rank(candidates, []string{"python", "sql"})

	assert.Equal(t, "winner.pdf", ranked[0].SourceFilename)
	assert.Equal(t, "first.pdf", ranked[1].SourceFilename)
	assert.Equal(t, "second.pdf", ranked[2].SourceFilename)
	assert.Equal(t, "third.pdf", ranked[3].SourceFilename)
}

func TestRank_ScoreInvariant(t *testing.T) {
	required := []string{"python", "sql", "docker"}
	candidates := []types.Candidate{
		{Skills: []string{"python", "sql", "kubernetes", "git"}},
		{Skills: nil},
	}

	ranked := Rank(candidates, required)
	for _, c := range ranked {
		assert.Equal(t, c.MatchedSkillCount(required), c.Score)
	}
}
