package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	response string
	err      error
	prompt   string
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

const validPayload = `{
	"aiScore": 77.6,
	"aiSummary": "Strong resume. Could use more metrics.",
	"strengths": ["a", "b", "c"],
	"weaknesses": ["w1", "w2", "w3"],
	"suggestions": ["s1", "s2", "s3", "s4", "s5"]
}`

func TestGenerateReport_ParsesValidResponse(t *testing.T) {
	client := &stubClient{response: validPayload}
	gen := NewReportGenerator(client)

	report, err := gen.GenerateReport(context.Background(), "resume text", "job description")
	require.NoError(t, err)

	assert.Equal(t, 78, report.Score, "fractional scores round to the nearest integer")
	assert.Equal(t, "Strong resume. Could use more metrics.", report.Summary)
	assert.Equal(t, []string{"a", "b", "c"}, report.Strengths)
	assert.Len(t, report.Suggestions, 5)
}

func TestGenerateReport_ToleratesSurroundingProse(t *testing.T) {
	client := &stubClient{response: "Sure! Here is the report:\n" + validPayload + "\nLet me know if you need anything else."}
	gen := NewReportGenerator(client)

	report, err := gen.GenerateReport(context.Background(), "resume text", "")
	require.NoError(t, err)
	assert.Equal(t, 78, report.Score)
}

func TestGenerateReport_Errors(t *testing.T) {
	tests := []struct {
		name     string
		response string
		errMsg   string
	}{
		{"No JSON in response", "I could not analyze this resume.", "no JSON object found"},
		{"Score out of schema range", `{"aiScore": 150, "aiSummary": "x", "strengths": [], "weaknesses": [], "suggestions": []}`, "failed validation"},
		{"Missing required key", `{"aiScore": 50, "strengths": [], "weaknesses": [], "suggestions": []}`, "failed validation"},
		{"Wrong value type", `{"aiScore": "high", "aiSummary": "x", "strengths": [], "weaknesses": [], "suggestions": []}`, "failed validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewReportGenerator(&stubClient{response: tt.response})
			report, err := gen.GenerateReport(context.Background(), "resume", "")
			require.Error(t, err)
			assert.Nil(t, report)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGenerateReport_ClientError(t *testing.T) {
	gen := NewReportGenerator(&stubClient{err: errors.New("quota exceeded")})
	report, err := gen.GenerateReport(context.Background(), "resume", "")
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestGenerateReport_NilClient(t *testing.T) {
	gen := NewReportGenerator(nil)
	_, err := gen.GenerateReport(context.Background(), "resume", "")
	require.Error(t, err)
}

func TestBuildReportPrompt(t *testing.T) {
	t.Run("Defaults empty job description", func(t *testing.T) {
		prompt := buildReportPrompt("resume text", "")
		assert.Contains(t, prompt, "General job market standard")
	})

	t.Run("Truncates long resumes", func(t *testing.T) {
		long := strings.Repeat("x", maxResumeChars*2)
		prompt := buildReportPrompt(long, "jd")
		assert.Less(t, len(prompt), maxResumeChars+500, "resume content is bounded")
	})

	t.Run("Truncates on a rune boundary", func(t *testing.T) {
		// A multibyte character straddling the byte limit must be dropped
		// whole, never split into invalid bytes.
		long := strings.Repeat("é", maxResumeChars*2)
		prompt := buildReportPrompt(long, "jd")
		assert.True(t, utf8.ValidString(prompt))
		assert.Equal(t, maxResumeChars, strings.Count(prompt, "é"))
	})

	t.Run("Requests the exact response keys", func(t *testing.T) {
		prompt := buildReportPrompt("resume", "jd")
		for _, key := range []string{"aiScore", "aiSummary", "strengths", "weaknesses", "suggestions"} {
			assert.Contains(t, prompt, key)
		}
	})
}
