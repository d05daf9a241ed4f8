package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Simple words", "Go and Python", []string{"go", "and", "python"}},
		{"Tech suffixes survive", "C++ C# node.js", []string{"c++", "c#", "node.js"}},
		{"Trailing period stripped", "Experienced in Docker.", []string{"experienced", "in", "docker"}},
		{"Punctuation splits", "skills: golang, postgres", []string{"skills", "golang", "postgres"}},
		{"Digits kept", "managed 3 teams", []string{"managed", "3", "teams"}},
		{"Empty input", "", nil},
		{"Only separators", " ,;! ", nil},
		{"Mixed case lowered", "JavaScript KUBERNETES", []string{"javascript", "kubernetes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "Python", "python"},
		{"Trims whitespace", "  Go  ", "go"},
		{"Already normalized", "react", "react"},
		{"Whitespace only", "   ", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkill(tt.input))
		})
	}
}

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Basic list", "Go, Python, SQL", []string{"Go", "Python", "SQL"}},
		{"Extra commas dropped", "Go,,Python,", []string{"Go", "Python"}},
		{"Whitespace trimmed", "  Go ,  Python ", []string{"Go", "Python"}},
		{"Empty string", "", []string{}},
		{"Single skill", "Rust", []string{"Rust"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSkills(tt.input))
		})
	}
}
