package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckKeywords_NoJobDescription(t *testing.T) {
	t.Run("Vocabulary richness score", func(t *testing.T) {
		// Six unique tokens longer than five characters.
		text := "golang kubernetes docker postgres terraform ansible"
		result := CheckKeywords(text, "")

		assert.InDelta(t, 4.0, result.Score, 0.0001, "6 unique qualifying tokens / 1.5")
		assert.Equal(t, []string{"golang", "kubernetes", "docker", "postgres", "terraform"}, result.Matched,
			"matched is capped at the first 5 in encounter order")
		assert.Equal(t, []string{"Add Job Description for targeting"}, result.Missing)
	})

	t.Run("Score capped at 85", func(t *testing.T) {
		var words []string
		for i := 0; i < 200; i++ {
			words = append(words, strings.Repeat("x", 6)+string(rune('a'+i%26))+strings.Repeat("z", i/26))
		}
		result := CheckKeywords(strings.Join(words, " "), "")
		assert.InDelta(t, 85.0, result.Score, 0.0001)
	})

	t.Run("Duplicates and short tokens excluded", func(t *testing.T) {
		result := CheckKeywords("golang golang go grpc", "")
		assert.Len(t, result.Matched, 1, "only one unique token longer than 5 chars")
		assert.InDelta(t, 1.0/1.5, result.Score, 0.0001)
	})

	t.Run("Stop words excluded", func(t *testing.T) {
		// All tokens are short or stop words.
		result := CheckKeywords("the with from that this", "")
		assert.InDelta(t, 0.0, result.Score, 0.0001)
		assert.Empty(t, result.Matched)
	})
}

func TestCheckKeywords_WithJobDescription(t *testing.T) {
	t.Run("Containment ratio", func(t *testing.T) {
		// Required set: python, javascript, docker. The resume has one.
		result := CheckKeywords("Expert in Python.", "python javascript docker")

		assert.InDelta(t, 100.0/3.0, result.Score, 0.0001)
		assert.Equal(t, []string{"python"}, result.Matched)
		assert.Equal(t, []string{"javascript", "docker"}, result.Missing)
	})

	t.Run("Substring containment matches inside larger words", func(t *testing.T) {
		result := CheckKeywords("I write javascript daily", "script")
		require.InDelta(t, 100.0, result.Score, 0.0001, "\"script\" is contained in \"javascript\"")
		assert.Equal(t, []string{"script"}, result.Matched)
	})

	t.Run("All requirements present", func(t *testing.T) {
		result := CheckKeywords("python and javascript on kubernetes", "python javascript kubernetes")
		assert.InDelta(t, 100.0, result.Score, 0.0001)
		assert.Empty(t, result.Missing)
	})

	t.Run("No qualifying requirement tokens scores 100", func(t *testing.T) {
		// Every description token is a stop word or too short.
		result := CheckKeywords("anything at all", "the and for go js")
		assert.InDelta(t, 100.0, result.Score, 0.0001)
		assert.Empty(t, result.Matched)
		assert.Empty(t, result.Missing)
	})

	t.Run("Four-character tokens excluded from requirements", func(t *testing.T) {
		// "java" is 4 chars, below the targeted cutoff.
		result := CheckKeywords("nothing relevant here", "java")
		assert.InDelta(t, 100.0, result.Score, 0.0001)
		assert.Empty(t, result.Missing)
	})

	t.Run("Matched and missing truncated", func(t *testing.T) {
		jd := "alpha1x beta2xx gamma3 delta4 epsilon5 zeta66 etaeta theta8 iota99 kappa0 lambda1 muumuu"
		result := CheckKeywords("no overlap whatsoever", jd)
		assert.InDelta(t, 0.0, result.Score, 0.0001)
		assert.Empty(t, result.Matched)
		assert.Len(t, result.Missing, 5, "missing list is capped at 5")
	})
}
