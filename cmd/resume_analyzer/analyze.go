package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/domain"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/gap"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/suggest"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze one resume against a job description",
	Long: `Extracts contact details and skills from a resume, scores it against a job
description using embedding similarity with a domain adjustment, and prints
a skill-gap report with improvement suggestions.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath  string
	analyzeJob         string
	analyzeAPIKey      string
	analyzeDatabaseURL string
	analyzeUserEmail   string
	analyzeVerbose     bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "OpenAI API key (optional, defaults to OPENAI_API_KEY env var)")
	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL for prediction history (optional, defaults to DATABASE_URL env var)")
	analyzeCommand.Flags().StringVar(&analyzeUserEmail, "user-email", "", "Email to attribute saved predictions to")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, analyzeConfigPath, map[string]*string{
		"job":        &analyzeJob,
		"api-key":    &analyzeAPIKey,
		"db-url":     &analyzeDatabaseURL,
		"user-email": &analyzeUserEmail,
	})
	if err != nil {
		return err
	}

	if cfg.Job == "" {
		return fmt.Errorf("a job description is required: pass --job or set it in the config file")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("an OpenAI API key is required: pass --api-key or set OPENAI_API_KEY")
	}

	jobText, err := readJobText(cfg.Job)
	if err != nil {
		return err
	}

	resumePath := args[0]
	rawText, err := extractFile(resumePath)
	if err != nil {
		return err
	}
	profile := extraction.BuildProfile(rawText)

	scorer := matching.NewScorer(matching.NewOpenAIEmbedder(cfg.APIKey), domain.NewKeywordClassifier())
	match, err := scorer.Score(ctx, profile.RawText, jobText)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	report := gap.NewAnalyzer().Analyze(profile.Skills, jobText)
	role := classify.NewRoleClassifier().Classify(profile.RawText)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(&profile, role)
	printer.PrintMatch(&match, analyzeVerbose)
	printer.PrintGapReport(&report)

	fmt.Println()
	fmt.Println(suggest.Render(suggest.NewEngine().Generate(profile.RawText, jobText)))

	saveAnalyzePrediction(ctx, cfg, filepath.Base(resumePath), role, profile.RawText)
	return nil
}

// saveAnalyzePrediction persists the role prediction when a database is
// configured. Failures are warnings; the analysis already printed.
func saveAnalyzePrediction(ctx context.Context, cfg config.Config, filename, role, rawText string) {
	if cfg.DatabaseURL == "" {
		return
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not connect to database: %v\n", err)
		return
	}
	defer database.Close()

	if err := database.SavePrediction(ctx, filename, role, rawText, cfg.UserEmail); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save prediction: %v\n", err)
		return
	}
	fmt.Println("Prediction saved to history.")
}

// loadMergedConfig loads the optional config file, fills from the
// environment, and applies explicitly-set CLI flags on top.
func loadMergedConfig(cmd *cobra.Command, configPath string, flags map[string]*string) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	for name, value := range flags {
		if cmd.Flags().Changed(name) {
			switch name {
			case "job":
				cfg.Job = *value
			case "api-key":
				cfg.APIKey = *value
			case "db-url":
				cfg.DatabaseURL = *value
			case "user-email":
				cfg.UserEmail = *value
			case "listen-addr":
				cfg.ListenAddr = *value
			}
		}
	}

	cfg.FromEnv()
	return cfg, nil
}

func readJobText(path string) (string, error) {
	text, err := extractFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return text, nil
}

// extractFile reads a resume or job file and extracts its text, treating
// .pdf uploads as PDF and everything else as plain text.
func extractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mediaType := extraction.MediaTypeText
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		mediaType = extraction.MediaTypePDF
	}

	return extraction.NewDocumentExtractor().Extract(data, mediaType)
}
