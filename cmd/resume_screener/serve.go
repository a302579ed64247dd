package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jfields/resume-screener/internal/config"
	"github.com/jfields/resume-screener/internal/semantic"
	"github.com/jfields/resume-screener/internal/server"
	"github.com/jfields/resume-screener/internal/vocab"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the screening HTTP server",
	Long:  `Starts an HTTP server exposing the screening pipeline at POST /screen and a health check at GET /health.`,
	RunE:  runServeCmd,
}

var (
	serveConfigPath    string
	servePort          int
	serveVocabulary    string
	serveAPIKey        string
	serveMergeOverlaps bool
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCommand.Flags().StringVar(&serveVocabulary, "vocabulary", "", "Path to a vocabulary JSON file (built-in vocabulary when omitted)")
	serveCommand.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key for the semantic score (optional, defaults to GEMINI_API_KEY env var)")
	serveCommand.Flags().BoolVar(&serveMergeOverlaps, "merge-overlaps", false, "Merge overlapping date ranges instead of naively summing them")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("vocabulary") {
		cfg.Vocabulary = serveVocabulary
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if cmd.Flags().Changed("merge-overlaps") {
		cfg.MergeOverlaps = serveMergeOverlaps
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	vocabulary := vocab.Default()
	if cfg.Vocabulary != "" {
		loaded, err := vocab.Load(cfg.Vocabulary)
		if err != nil {
			return err
		}
		vocabulary = loaded
	}

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

	srv := server.New(server.Config{
		Port:          cfg.Port,
		Vocabulary:    vocabulary,
		Semantic:      scorer,
		MergeOverlaps: cfg.MergeOverlaps,
	})
	return srv.Start()
}
