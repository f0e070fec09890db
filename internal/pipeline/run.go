// Package pipeline provides the high-level orchestration for the resume
// ranking process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-ranker/internal/contact"
	"github.com/jonathan/resume-ranker/internal/db"
	"github.com/jonathan/resume-ranker/internal/extraction"
	"github.com/jonathan/resume-ranker/internal/jobdesc"
	"github.com/jonathan/resume-ranker/internal/names"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
	"github.com/jonathan/resume-ranker/internal/vocabulary"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	File    string `json:"file,omitempty"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Pipeline step names reported through ProgressEvent.Step.
const (
	StepJobDescription = "job_description"
	StepExtraction     = "extraction"
	StepCandidate      = "candidate"
	StepFailure        = "failure"
	StepRanking        = "ranking"
)

// InputFile is a resume file already read into memory.
type InputFile struct {
	Name string
	Data []byte
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePaths []string // Paths to resume files on disk
	JobPath     string   // Path to a job description text file
	JobURL      string   // URL to fetch the job description from
	JobText     string   // Inline job description text
	Vocabulary  string   // Path to a skill vocabulary JSON file; empty uses the built-in list
	Region      string   // Default phone region; empty uses contact.DefaultRegion
	Verbose     bool
	DatabaseURL string
	OnProgress  ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(onProgress ProgressCallback, step, file, message string) {
	if onProgress != nil {
		onProgress(ProgressEvent{Step: step, File: file, Message: message})
	}
}

// Process runs the core ranking flow over in-memory inputs: analyze the job
// description, build one candidate per readable resume, score and sort.
// Files are processed sequentially in the order given; a file that cannot be
// parsed is recorded as a failure and never aborts the run.
func Process(ctx context.Context, files []InputFile, jobText string, vocab []string, region string, onProgress ProgressCallback) (*types.Report, error) {
	matcher, err := skills.NewMatcher(vocab)
	if err != nil {
		return nil, fmt.Errorf("failed to build skill matcher: %w", err)
	}
	if region == "" {
		region = contact.DefaultRegion
	}

	job := jobdesc.Analyze(jobText, matcher)
	emitProgress(onProgress, StepJobDescription, "",
		fmt.Sprintf("Job description requires %d skills", len(job.RequiredSkills)))

	report := &types.Report{Job: job}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		emitProgress(onProgress, StepExtraction, file.Name, "Extracting text")
		text, err := extraction.ExtractText(file.Name, file.Data)
		if err != nil {
			report.Failures = append(report.Failures, types.FileFailure{
				SourceFilename: file.Name,
				Reason:         err.Error(),
			})
			emitProgress(onProgress, StepFailure, file.Name, err.Error())
			continue
		}

		candidate := types.Candidate{
			ID:             uuid.New(),
			SourceFilename: file.Name,
			RawText:        text,
			Emails:         contact.Emails(text),
			Phones:         contact.Phones(text, region),
			Skills:         matcher.Match(text),
		}

		// Name detection is best effort; a resume without a detectable
		// name is still a valid candidate.
		if name, err := names.Detect(text); err == nil {
			candidate.Name = name
		}

		report.Candidates = append(report.Candidates, candidate)
		emitProgress(onProgress, StepCandidate, file.Name,
			fmt.Sprintf("Found %d skills", len(candidate.Skills)))
	}

	report.Candidates = ranking.Rank(report.Candidates, job.RequiredSkills)
	emitProgress(onProgress, StepRanking, "",
		fmt.Sprintf("Ranked %d candidates (%d failures)", len(report.Candidates), len(report.Failures)))

	return report, nil
}

// loadJobText resolves the job description from the first configured source:
// inline text, a local file, or a URL.
func loadJobText(ctx context.Context, opts *RunOptions) (string, error) {
	switch {
	case opts.JobText != "":
		return opts.JobText, nil
	case opts.JobPath != "":
		data, err := os.ReadFile(opts.JobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	case opts.JobURL != "":
		text, err := jobdesc.FromURL(ctx, opts.JobURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("no job description provided: set one of --job-text, --job, or --job-url")
	}
}

// readResumeFiles loads every resume path into memory. A missing or
// unreadable file becomes an InputFile with nil Data so the run still
// records it as a failure downstream.
func readResumeFiles(paths []string) ([]InputFile, []types.FileFailure) {
	var files []InputFile
	var failures []types.FileFailure
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			failures = append(failures, types.FileFailure{
				SourceFilename: filepath.Base(path),
				Reason:         fmt.Sprintf("failed to read file: %v", err),
			})
			continue
		}
		files = append(files, InputFile{Name: filepath.Base(path), Data: data})
	}
	return files, failures
}

// persistReport writes a completed report to the database. Persistence is
// best effort: the report has already been produced, so failures only warn.
func persistReport(ctx context.Context, database *db.DB, report *types.Report) {
	runID, err := database.CreateRun(ctx, report.Job)
	if err != nil {
		fmt.Printf("Warning: failed to persist run: %v\n", err)
		return
	}

	status := "completed"
	for i := range report.Candidates {
		if err := database.SaveCandidate(ctx, runID, i+1, &report.Candidates[i]); err != nil {
			fmt.Printf("Warning: %v\n", err)
			status = "partial"
		}
	}
	for i := range report.Failures {
		if err := database.SaveFailure(ctx, runID, &report.Failures[i]); err != nil {
			fmt.Printf("Warning: %v\n", err)
			status = "partial"
		}
	}
	if err := database.CompleteRun(ctx, runID, status); err != nil {
		fmt.Printf("Warning: failed to complete run: %v\n", err)
	}
}

// Run orchestrates a full ranking run from filesystem inputs: load the
// vocabulary and job description, process the resumes, optionally persist.
func Run(ctx context.Context, opts RunOptions) (*types.Report, error) {
	printer := observability.NewPrinter(os.Stdout)

	// Initialize database connection if configured
	var database *db.DB
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	vocab := vocabulary.Default
	if opts.Vocabulary != "" {
		var err error
		vocab, err = vocabulary.Load(opts.Vocabulary)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}

	jobText, err := loadJobText(ctx, &opts)
	if err != nil {
		return nil, err
	}

	files, readFailures := readResumeFiles(opts.ResumePaths)
	if len(files) == 0 && len(readFailures) == 0 {
		return nil, fmt.Errorf("no resume files provided")
	}

	report, err := Process(ctx, files, jobText, vocab, opts.Region, opts.OnProgress)
	if err != nil {
		return nil, err
	}
	report.Failures = append(readFailures, report.Failures...)

	if opts.Verbose {
		printer.PrintJobSkills(report.Job)
		printer.PrintRankedCandidates(report.Candidates)
		printer.PrintFailures(report.Failures)
	}

	if database != nil {
		persistReport(ctx, database, report)
	}

	return report, nil
}
