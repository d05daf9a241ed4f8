package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/jonathan/skillsync/internal/schemas"
	"github.com/jonathan/skillsync/internal/types"
)

// maxResumeChars bounds the resume text sent to the model.
const maxResumeChars = 3000

// defaultJobDescription stands in when the caller supplied no description.
const defaultJobDescription = "General job market standard"

// ReportGenerator turns resume text into a structured AI report via the
// model client. It implements the reporter capability consumed by the
// analyzer; any error it returns routes the analysis to the fallback.
type ReportGenerator struct {
	client Client
}

// NewReportGenerator creates a ReportGenerator around a model client.
func NewReportGenerator(client Client) *ReportGenerator {
	return &ReportGenerator{client: client}
}

// GenerateReport sends the analysis prompt and parses the structured report
// out of the response, tolerating surrounding prose around the JSON payload.
func (g *ReportGenerator) GenerateReport(ctx context.Context, resumeText, jobDescription string) (*types.AIReport, error) {
	if g.client == nil {
		return nil, fmt.Errorf("no model client configured")
	}

	raw, err := g.client.GenerateJSON(ctx, buildReportPrompt(resumeText, jobDescription))
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	return parseReport(raw)
}

// buildReportPrompt assembles the analysis prompt, truncating the resume and
// defaulting the job description.
func buildReportPrompt(resumeText, jobDescription string) string {
	if len(resumeText) > maxResumeChars {
		// Cut on a rune boundary so a multibyte character at the limit is
		// dropped whole rather than split into invalid bytes.
		if runes := []rune(resumeText); len(runes) > maxResumeChars {
			resumeText = string(runes[:maxResumeChars])
		}
	}
	if jobDescription == "" {
		jobDescription = defaultJobDescription
	}

	return fmt.Sprintf(`Analyze this resume text against the job description below.
Provide a detailed report in JSON format with exactly these keys:
"aiScore" (number 0-100),
"aiSummary" (string, 2 sentences),
"strengths" (array of 3 points),
"weaknesses" (array of 3 points),
"suggestions" (array of 5 specific action items).

Resume Content:
%s

Job Description:
%s
`, resumeText, jobDescription)
}

// parseReport extracts the first balanced JSON object from the raw response,
// validates it against the report schema and unmarshals it.
func parseReport(raw string) (*types.AIReport, error) {
	payload := ExtractJSONObject(raw)
	if payload == "" {
		return nil, fmt.Errorf("no JSON object found in model response")
	}

	if err := schemas.ValidateAIReport([]byte(payload)); err != nil {
		return nil, fmt.Errorf("model response failed validation: %w", err)
	}

	// aiScore may legitimately arrive as a float.
	var decoded struct {
		Score       float64  `json:"aiScore"`
		Summary     string   `json:"aiSummary"`
		Strengths   []string `json:"strengths"`
		Weaknesses  []string `json:"weaknesses"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model response: %w", err)
	}

	return &types.AIReport{
		Score:       types.ClampScore(int(math.Round(decoded.Score))),
		Summary:     decoded.Summary,
		Strengths:   decoded.Strengths,
		Weaknesses:  decoded.Weaknesses,
		Suggestions: decoded.Suggestions,
	}, nil
}
