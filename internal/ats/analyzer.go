package ats

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/skillsync/internal/types"
)

// Extractor converts uploaded document bytes into plain text. Implemented by
// extract.DocumentExtractor; stubbed in tests.
type Extractor interface {
	Extract(data []byte, mimeType string) (string, error)
}

// Reporter generates the structured AI report for a resume. A nil or failing
// Reporter routes analysis through the heuristic fallback.
type Reporter interface {
	GenerateReport(ctx context.Context, resumeText, jobDescription string) (*types.AIReport, error)
}

// Analyzer orchestrates one resume analysis: extraction, baseline scoring,
// the fire-once AI call, and fallback assembly. It holds no mutable state
// between requests.
type Analyzer struct {
	extractor Extractor
	reporter  Reporter
	logger    *zap.Logger
}

// NewAnalyzer creates an Analyzer. reporter may be nil, in which case every
// analysis uses the heuristic fallback.
func NewAnalyzer(extractor Extractor, reporter Reporter, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{extractor: extractor, reporter: reporter, logger: logger}
}

// Analyze scores the uploaded document against an optional job description
// and returns the assembled report. Extraction errors surface to the caller;
// AI adapter failures never do.
func (a *Analyzer) Analyze(ctx context.Context, data []byte, mimeType, jobDescription string) (*types.ScoreReport, error) {
	text, err := a.extractor.Extract(data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to extract document text: %w", err)
	}

	baseline := ComputeBaseline(text, jobDescription)

	var report *types.AIReport
	if a.reporter != nil {
		report, err = a.reporter.GenerateReport(ctx, text, jobDescription)
		if err != nil {
			// Fire-once policy: no retry, recover with the fallback.
			a.logger.Warn("ai report generation failed, using fallback", zap.Error(err))
			report = nil
		}
	}
	if report == nil {
		report = BuildFallbackReport(baseline, text)
	}
	report.Score = types.ClampScore(report.Score)

	return assembleReport(baseline, report), nil
}

// assembleReport merges the deterministic baseline signals with the AI or
// fallback report into the caller-facing shape.
func assembleReport(baseline *Baseline, report *types.AIReport) *types.ScoreReport {
	weaknesses := types.Truncate(report.Weaknesses, types.MaxWeaknesses)
	suggestions := types.Truncate(report.Suggestions, types.MaxSuggestions)

	improvements := make([]types.Improvement, 0,
		len(baseline.Improvements)+len(weaknesses)+len(suggestions))
	improvements = append(improvements, baseline.Improvements...)
	for _, w := range weaknesses {
		improvements = append(improvements, types.Improvement{Type: types.SeverityMajor, Text: w})
	}
	for _, s := range suggestions {
		improvements = append(improvements, types.Improvement{Type: types.SeverityMinor, Text: s})
	}

	return &types.ScoreReport{
		Score:           report.Score,
		Summary:         report.Summary,
		Strengths:       types.Truncate(report.Strengths, types.MaxStrengths),
		Weaknesses:      weaknesses,
		Suggestions:     suggestions,
		MatchedKeywords: baseline.Keywords.Matched,
		MissingKeywords: baseline.Keywords.Missing,
		SectionsFound:   baseline.Sections.Found,
		SectionsMissing: baseline.Sections.Missing,
		Improvements:    improvements,
	}
}
