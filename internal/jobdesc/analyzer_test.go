package jobdesc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	matcher, err := skills.NewMatcher([]string{"python", "sql", "docker", "kubernetes"})
	require.NoError(t, err)

	job := Analyze("We are hiring: must know Python, SQL and Docker.", matcher)

	assert.Equal(t, []string{"python", "sql", "docker"}, job.RequiredSkills)
	assert.Contains(t, job.RawText, "hiring")
}

func TestAnalyze_NoSkillsFound(t *testing.T) {
	matcher, err := skills.NewMatcher([]string{"python"})
	require.NoError(t, err)

	job := Analyze("Looking for a shepherd.", matcher)
	assert.Empty(t, job.RequiredSkills)
}

func TestFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="job-description">Python and SQL required.</div></body></html>`))
	}))
	defer srv.Close()

	text, err := FromURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Python and SQL required.", text)
}

func TestFromURL_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL)
	assert.Error(t, err)
}
