package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfields/resume-screener/internal/config"
	"github.com/jfields/resume-screener/internal/ingestion"
	"github.com/jfields/resume-screener/internal/observability"
	"github.com/jfields/resume-screener/internal/pipeline"
	"github.com/jfields/resume-screener/internal/semantic"
	"github.com/jfields/resume-screener/internal/types"
	"github.com/jfields/resume-screener/internal/vocab"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long: `Runs the full screening pipeline: text extraction -> signal extraction -> skill matching -> weighted scoring -> recommendations.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath    string
	analyzeResume        string
	analyzeJob           string
	analyzeJobURL        string
	analyzeVocabulary    string
	analyzeAPIKey        string
	analyzeMergeOverlaps bool
	analyzeVerbose       bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume document (txt, pdf, or docx)")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job-description text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	analyzeCommand.Flags().StringVar(&analyzeVocabulary, "vocabulary", "", "Path to a vocabulary JSON file (built-in vocabulary when omitted)")
	analyzeCommand.Flags().BoolVar(&analyzeMergeOverlaps, "merge-overlaps", false, "Merge overlapping date ranges instead of naively summing them")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key for the semantic score (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}

	// Resolve the vocabulary
	vocabulary := vocab.Default()
	if cfg.Vocabulary != "" {
		vocabulary, err = vocab.Load(cfg.Vocabulary)
		if err != nil {
			return err
		}
	}

	// Obtain resume and job text
	resumeText, err := ingestion.ExtractText(cfg.Resume)
	if err != nil {
		return fmt.Errorf("resume ingestion failed: %w", err)
	}

	var jobText string
	if cfg.JobURL != "" {
		jobText, err = ingestion.FetchFromURL(ctx, cfg.JobURL)
	} else {
		jobText, err = ingestion.ExtractText(cfg.Job)
	}
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}

	// Semantic scorer is optional; without an API key the signal degrades to 0
	var scorer semantic.Scorer
	if cfg.APIKey != "" {
		gemini, err := semantic.NewGeminiScorer(ctx, cfg.APIKey)
		if err != nil {
			fmt.Printf("Warning: semantic scorer unavailable: %v\n", err)
		} else {
			defer func() { _ = gemini.Close() }()
			scorer = gemini
		}
	}

	result, err := pipeline.RunScreening(ctx, pipeline.Options{
		ResumeText:      resumeText,
		JobText:         jobText,
		Vocabulary:      vocabulary,
		Semantic:        scorer,
		SemanticTimeout: time.Duration(cfg.SemanticTimeoutSeconds) * time.Second,
		MergeOverlaps:   cfg.MergeOverlaps,
		Verbose:         cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("screening failed: %w", err)
	}

	printResult(result, cfg.Verbose)
	return nil
}

// mergedConfig loads the optional config file and applies CLI overrides.
func mergedConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
	}

	// CLI overrides only when the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("vocabulary") {
		cfg.Vocabulary = analyzeVocabulary
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("merge-overlaps") {
		cfg.MergeOverlaps = analyzeMergeOverlaps
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if cfg.Job != "" && cfg.JobURL != "" {
		return cfg, fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	cfg = cfg.MergeWithDefaults(config.Config{SemanticTimeoutSeconds: 30})

	return cfg, nil
}

func printResult(result *types.ScreeningResult, verbose bool) {
	printer := observability.NewPrinter(os.Stdout)

	if verbose {
		printer.PrintSignals("Resume Signals", &result.Resume)
		printer.PrintSignals("Job Description Signals", &result.Job)
	}
	printer.PrintMatch(&result.Match)
	printer.PrintBreakdown(&result.Breakdown, result.Verdict)
	printer.PrintRecommendations(result.Recommendations)
}
