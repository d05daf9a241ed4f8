package ats

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillsync/internal/types"
)

func TestComputeBaseline_FullScore(t *testing.T) {
	// Every signal at its maximum: all keywords matched, all sections
	// present, a list-shaped skills block, an email address, and a word
	// count inside the band.
	text := "Summary of my experience and education. Skills: golang, postgres. Projects below. Contact me@example.com. " +
		strings.Repeat("impact ", 400)

	b := ComputeBaseline(text, "golang postgres")

	assert.Equal(t, 100, b.Score)
	assert.Empty(t, b.Improvements, "no advisory when every signal scores")
	assert.InDelta(t, 100.0, b.Keywords.Score, 0.0001)
	assert.InDelta(t, 100.0, b.Sections.Score, 0.0001)
	assert.Greater(t, b.WordCount, 300)
	assert.Less(t, b.WordCount, 1500)
}

func TestComputeBaseline_EverySignalMissing(t *testing.T) {
	b := ComputeBaseline("short text", "kubernetes terraform")

	// Only the format signal (10) and the off-band length signal (5) score.
	assert.Equal(t, 15, b.Score)

	require.Len(t, b.Improvements, 5)
	assert.Equal(t, types.SeverityCritical, b.Improvements[0].Type)
	assert.Equal(t, "Keyword matches are low. Add these from the JD: kubernetes, terraform", b.Improvements[0].Text)
	assert.Equal(t, types.SeverityMajor, b.Improvements[1].Type)
	assert.Contains(t, b.Improvements[1].Text, "Missing standard sections: summary, experience, education, skills, projects")
	assert.Equal(t, types.SeverityMinor, b.Improvements[2].Type)
	assert.Contains(t, b.Improvements[2].Text, `"Skills" section`)
	assert.Equal(t, types.SeverityCritical, b.Improvements[3].Type)
	assert.Contains(t, b.Improvements[3].Text, "email address")
	assert.Equal(t, types.SeverityMinor, b.Improvements[4].Type)
	assert.Contains(t, b.Improvements[4].Text, "very short")
}

func TestComputeBaseline_LengthBand(t *testing.T) {
	// Base document with every non-length signal scoring so the length
	// contribution is isolated.
	base := "Summary experience education. Skills: golang, sql. Projects. me@example.com "

	short := ComputeBaseline(base, "golang")
	long := ComputeBaseline(base+strings.Repeat("impact ", 1600), "golang")
	inBand := ComputeBaseline(base+strings.Repeat("impact ", 400), "golang")

	assert.Equal(t, inBand.Score-5, short.Score, "short documents lose half the length points")
	assert.Equal(t, inBand.Score-5, long.Score, "long documents lose half the length points")

	assert.Contains(t, lastImprovement(short).Text, "very short")
	assert.Contains(t, lastImprovement(long).Text, "too long")
}

func TestComputeBaseline_WordCountBandEdges(t *testing.T) {
	// 8 base words plus the repeated filler.
	base := "Summary experience education. Skills: golang, sql. Projects. me@example.com "

	atMin := ComputeBaseline(base+strings.Repeat("impact ", 292), "golang")
	require.Equal(t, 300, atMin.WordCount)
	assert.Contains(t, lastImprovement(atMin).Text, "too long",
		"exactly 300 words is outside the band on the long side")

	atMax := ComputeBaseline(base+strings.Repeat("impact ", 1492), "golang")
	require.Equal(t, 1500, atMax.WordCount)
	assert.Contains(t, lastImprovement(atMax).Text, "too long")

	justInside := ComputeBaseline(base+strings.Repeat("impact ", 293), "golang")
	require.Equal(t, 301, justInside.WordCount)
	assert.Equal(t, atMin.Score+5, justInside.Score)
	assert.Empty(t, justInside.Improvements)
}

func TestComputeBaseline_LowKeywordAdvisoryListsFirstThree(t *testing.T) {
	b := ComputeBaseline("nothing matches", "zeta66 etaeta theta8 iota99 kappa0")

	require.NotEmpty(t, b.Improvements)
	assert.Equal(t, "Keyword matches are low. Add these from the JD: zeta66, etaeta, theta8", b.Improvements[0].Text,
		"advisory names at most the first three missing keywords")
}

func TestComputeBaseline_ScoreAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	vocab := []string{
		"summary", "experience", "education", "skills", "projects",
		"golang", "postgres", "me@example.com", ",", "impact", "the", "x",
	}

	for i := 0; i < 200; i++ {
		var words []string
		for j := 0; j < rng.Intn(2000); j++ {
			words = append(words, vocab[rng.Intn(len(vocab))])
		}
		text := strings.Join(words, " ")

		jd := ""
		if rng.Intn(2) == 0 {
			jd = "golang postgres kubernetes"
		}

		b := ComputeBaseline(text, jd)
		require.GreaterOrEqual(t, b.Score, 0)
		require.LessOrEqual(t, b.Score, 100)
	}
}

func TestComputeBaseline_Deterministic(t *testing.T) {
	text := "Summary experience. Skills: go, sql. me@example.com"
	jd := "golang postgres"

	first := ComputeBaseline(text, jd)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeBaseline(text, jd))
	}
}

func lastImprovement(b *Baseline) types.Improvement {
	return b.Improvements[len(b.Improvements)-1]
}
