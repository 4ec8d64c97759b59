package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/batch"
	"github.com/jonathan/resume-analyzer/internal/domain"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/gap"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var batchCommand = &cobra.Command{
	Use:   "batch <resume-file>...",
	Short: "Screen many resumes against one job description",
	Long: `Runs the analysis pipeline over every resume file, ranks the candidates,
prints a summary, and optionally writes the recruiter CSV export. A resume
that fails to parse is reported and skipped; the rest of the batch
continues.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatchCmd,
}

var (
	batchConfigPath string
	batchJob        string
	batchAPIKey     string
	batchMinScore   float64
	batchSkill      string
	batchSort       string
	batchCSVPath    string
)

func init() {
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCommand.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description text file")
	batchCommand.Flags().StringVar(&batchAPIKey, "api-key", "", "OpenAI API key (optional, defaults to OPENAI_API_KEY env var)")
	batchCommand.Flags().Float64Var(&batchMinScore, "min-score", 0, "Hide candidates scoring below this value")
	batchCommand.Flags().StringVar(&batchSkill, "skill", "", "Only show candidates listing this skill")
	batchCommand.Flags().StringVar(&batchSort, "sort", string(batch.SortByScoreDesc), "Sort order: score_desc, score_asc, name, skill_match")
	batchCommand.Flags().StringVarP(&batchCSVPath, "csv", "o", "", "Write the ranked candidates to a CSV file")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, batchConfigPath, map[string]*string{
		"job":     &batchJob,
		"api-key": &batchAPIKey,
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

	resumes := make([]batch.Resume, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read resume %s: %w", path, err)
		}
		mediaType := extraction.MediaTypeText
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			mediaType = extraction.MediaTypePDF
		}
		resumes = append(resumes, batch.Resume{
			Filename:  filepath.Base(path),
			MediaType: mediaType,
			Data:      data,
		})
	}

	scorer := matching.NewScorer(matching.NewOpenAIEmbedder(cfg.APIKey), domain.NewKeywordClassifier())
	processor := batch.NewProcessor(extraction.NewDocumentExtractor(), scorer, gap.NewAnalyzer(), nil)

	outcomes, err := processor.Process(ctx, jobText, resumes)
	if err != nil {
		return err
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Skipped %s: %v\n", outcome.Filename, outcome.Err)
		}
	}

	session := batch.NewSession()
	session.SetResults(outcomes)
	candidates := session.Filter(batch.FilterOptions{
		MinScore:      batchMinScore,
		RequiredSkill: batchSkill,
		SortBy:        batch.SortOrder(batchSort),
	})
	stats := session.Stats(candidates)

	fmt.Printf("Processed %d resumes (%d failed), showing %d of %d candidates\n",
		len(outcomes), failed, len(candidates), len(session.Results()))

	observability.NewPrinter(os.Stdout).PrintCandidates(candidates, stats)

	if batchCSVPath != "" {
		f, err := os.Create(batchCSVPath)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		defer f.Close()
		if err := batch.WriteResultsCSV(f, candidates); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Printf("Wrote %s\n", batchCSVPath)
	}

	return nil
}
