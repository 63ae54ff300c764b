package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-checker/internal/checker"
	"github.com/jonathan/ats-checker/internal/extraction"
	"github.com/jonathan/ats-checker/internal/observability"
	"github.com/jonathan/ats-checker/internal/types"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a resume for ATS compatibility",
	Long: `Analyze a resume file (PDF, DOCX, or plain text) against the ATS rubric
and print the score with categorized feedback. With no file argument,
resume text is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw analysis result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	chk := checker.New()

	var result *types.AnalysisResult
	var err error

	if len(args) == 1 {
		format, ferr := extraction.FormatFromPath(args[0])
		if ferr != nil {
			return ferr
		}
		data, rerr := os.ReadFile(args[0])
		if rerr != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], rerr)
		}
		result, err = chk.SubmitDocument(types.RawDocument{Data: data, Format: format})
	} else {
		text, rerr := io.ReadAll(cmd.InOrStdin())
		if rerr != nil {
			return fmt.Errorf("failed to read stdin: %w", rerr)
		}
		result, err = chk.SubmitText(string(text))
	}
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintStatus(chk.Status())
	printer.PrintAnalysis(result)
	return nil
}
