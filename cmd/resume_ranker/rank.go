package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/pipeline"
)

var rankCommand = &cobra.Command{
	Use:   "rank",
	Short: "Rank resume files against a job description",
	Long: `Extracts text, contact details, and vocabulary skills from each resume, analyzes the job description with the same skill matcher, and prints candidates sorted by how many required skills they match.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRankCmd,
}

var (
	rankConfigPath  string
	rankResumes     []string
	rankJob         string
	rankJobURL      string
	rankJobText     string
	rankVocabulary  string
	rankRegion      string
	rankOut         string
	rankVerbose     bool
	rankDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	rankCommand.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rankCommand.Flags().StringSliceVarP(&rankResumes, "resume", "r", nil, "Resume file or directory (repeatable; directories are scanned for .pdf, .docx, .txt)")
	rankCommand.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job description text file")
	rankCommand.Flags().StringVar(&rankJobURL, "job-url", "", "URL to fetch the job description from")
	rankCommand.Flags().StringVar(&rankJobText, "job-text", "", "Inline job description text")
	rankCommand.Flags().StringVar(&rankVocabulary, "vocabulary", "", "Path to skill vocabulary JSON file (defaults to the built-in list)")
	rankCommand.Flags().StringVar(&rankRegion, "region", "", "Default phone region as ISO 3166-1 alpha-2 (defaults to US)")
	rankCommand.Flags().StringVarP(&rankOut, "out", "o", "", "Write the JSON report to this path instead of stdout")
	rankCommand.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed progress information")
	rankCommand.Flags().StringVar(&rankDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(rankCommand)
}

// resumeExtensions are the file types picked up when scanning a directory.
var resumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// expandResumePaths resolves the --resume arguments into a sorted list of
// files. Directories are scanned one level deep for supported extensions;
// explicit file paths are kept as-is so unsupported files still surface as
// failures instead of being silently dropped.
func expandResumePaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// Keep the path; the pipeline records it as a failure.
			paths = append(paths, arg)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		var found []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if resumeExtensions[ext] {
				found = append(found, filepath.Join(arg, entry.Name()))
			}
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

func runRankCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if rankConfigPath != "" {
		loadedCfg, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if rankVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", rankConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("job") {
		cfg.Job = rankJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = rankJobURL
	}
	if cmd.Flags().Changed("vocabulary") {
		cfg.Vocabulary = rankVocabulary
	}
	if cmd.Flags().Changed("region") {
		cfg.Region = rankRegion
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = rankOut
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rankVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = rankDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{Region: "US"})

	// Step 4: Validate required fields
	jobSources := 0
	for _, set := range []bool{cfg.Job != "", cfg.JobURL != "", rankJobText != ""} {
		if set {
			jobSources++
		}
	}
	if jobSources == 0 {
		return fmt.Errorf("one of --job, --job-url, or --job-text must be provided (via flag or config)")
	}
	if jobSources > 1 {
		return fmt.Errorf("--job, --job-url, and --job-text are mutually exclusive; provide only one")
	}
	if len(rankResumes) == 0 {
		return fmt.Errorf("at least one --resume file or directory is required")
	}

	// Step 5: Database URL handling (optional)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	resumePaths, err := expandResumePaths(rankResumes)
	if err != nil {
		return err
	}
	if len(resumePaths) == 0 {
		return fmt.Errorf("no resume files found under the given --resume paths")
	}

	report, err := pipeline.Run(ctx, pipeline.RunOptions{
		ResumePaths: resumePaths,
		JobPath:     cfg.Job,
		JobURL:      cfg.JobURL,
		JobText:     rankJobText,
		Vocabulary:  cfg.Vocabulary,
		Region:      cfg.Region,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if cfg.Out != "" {
		if err := os.WriteFile(cfg.Out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", cfg.Out)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
