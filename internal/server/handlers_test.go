package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/types"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	s, err := New(Config{Port: 0})
	require.NoError(t, err)
	return s.routes()
}

// multipartBody builds a rank request with the given resumes and form fields.
func multipartBody(t *testing.T, resumes map[string]string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, content := range resumes {
		part, err := writer.CreateFormFile("resumes", name)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestHandleRank(t *testing.T) {
	handler := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{
			"strong.txt": "Python, SQL and Docker daily.\nstrong@example.com",
			"weak.txt":   "Some Python exposure.",
		},
		map[string]string{"job_description": "Looking for Python, SQL, Docker."},
	)

	req := httptest.NewRequest(http.MethodPost, "/rank", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report types.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.ElementsMatch(t, []string{"python", "sql", "docker"}, report.Job.RequiredSkills)
	require.Len(t, report.Candidates, 2)
	assert.Equal(t, "strong.txt", report.Candidates[0].SourceFilename)
	assert.Equal(t, 3, report.Candidates[0].Score)
	assert.Equal(t, []string{"strong@example.com"}, report.Candidates[0].Emails)
}

func TestHandleRank_FailuresReported(t *testing.T) {
	handler := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{
			"broken.pdf": "this is not a pdf",
			"ok.txt":     "SQL developer",
		},
		map[string]string{"job_description": "SQL required."},
	)

	req := httptest.NewRequest(http.MethodPost, "/rank", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report types.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "broken.pdf", report.Failures[0].SourceFilename)
	require.Len(t, report.Candidates, 1)
}

func TestHandleRank_MissingJob(t *testing.T) {
	handler := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{"r.txt": "Python"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/rank", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_description or job_url")
}

func TestHandleRank_JobSourcesMutuallyExclusive(t *testing.T) {
	handler := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{"r.txt": "Python"},
		map[string]string{
			"job_description": "Python",
			"job_url":         "https://example.com/job",
		})

	req := httptest.NewRequest(http.MethodPost, "/rank", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mutually exclusive")
}

func TestHandleRank_NoResumes(t *testing.T) {
	handler := newTestServer(t)

	body, contentType := multipartBody(t, nil,
		map[string]string{"job_description": "Python"})

	req := httptest.NewRequest(http.MethodPost, "/rank", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resumes")
}

func TestHandleRank_JobURL(t *testing.T) {
	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div class="job-description">Needs Docker and Kubernetes.</div></body></html>`)
	}))
	defer posting.Close()

	handler := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{"r.txt": "Kubernetes operator experience."},
		map[string]string{"job_url": posting.URL})

	req := httptest.NewRequest(http.MethodPost, "/rank", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report types.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.ElementsMatch(t, []string{"docker", "kubernetes"}, report.Job.RequiredSkills)
	require.Len(t, report.Candidates, 1)
	assert.Equal(t, 1, report.Candidates[0].Score)
}

func TestHandleRank_JobURLUnreachable(t *testing.T) {
	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer posting.Close()

	handler := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{"r.txt": "Python"},
		map[string]string{"job_url": posting.URL})

	req := httptest.NewRequest(http.MethodPost, "/rank", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleVocabulary(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/vocabulary", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["skills"], "python")
}

func TestHandleListRuns_NoDatabase(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleGetRun_NoDatabase(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/runs/8b7d3f9e-8c5a-4f29-b9d8-1a2b3c4d5e6f", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, false, resp["persistent"])
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/rank", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
