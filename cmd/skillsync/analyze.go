package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillsync/internal/ats"
	"github.com/jonathan/skillsync/internal/extract"
	"github.com/jonathan/skillsync/internal/llm"
	"github.com/jonathan/skillsync/internal/logger"
)

var (
	analyzeJobDescFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Score a resume from the command line",
	Long:  `Analyze a PDF or DOCX resume and print the score report as JSON. Uses the AI report when GEMINI_API_KEY is set, the heuristic fallback otherwise.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJobDescFile, "jd", "", "Path to a job description text file for targeted scoring")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	mimeType, err := mimeTypeForFile(args[0])
	if err != nil {
		return err
	}

	var jobDescription string
	if analyzeJobDescFile != "" {
		jd, err := os.ReadFile(analyzeJobDescFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(jd)
	}

	log, err := logger.New(false, os.Getenv("DEBUG") == "true")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	var reporter ats.Reporter
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		defer func() { _ = client.Close() }()
		reporter = llm.NewReportGenerator(client)
	}

	analyzer := ats.NewAnalyzer(extract.NewDocumentExtractor(), reporter, log)
	report, err := analyzer.Analyze(ctx, data, mimeType, jobDescription)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func mimeTypeForFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extract.MimePDF, nil
	case ".docx":
		return extract.MimeDOCX, nil
	case ".doc":
		return extract.MimeDOC, nil
	default:
		return "", fmt.Errorf("unsupported file extension %q, expected .pdf or .docx", filepath.Ext(path))
	}
}
