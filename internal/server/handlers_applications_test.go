package server

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeFileName(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		name     string
		original string
		ext      string
		wantErr  bool
	}{
		{"PDF accepted", "resume.pdf", ".pdf", false},
		{"DOCX accepted", "My Resume.docx", ".docx", false},
		{"DOC accepted", "cv.doc", ".doc", false},
		{"Extension case insensitive", "resume.PDF", ".pdf", false},
		{"Plain text rejected", "resume.txt", "", true},
		{"No extension rejected", "resume", "", true},
		{"Executable rejected", "resume.exe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resumeFileName(tt.original, now)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "pdf, doc, docx")
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, "resume-1700000000"))
			assert.True(t, strings.HasSuffix(got, tt.ext))
			assert.NotContains(t, got, " ", "stored name never carries the client's file name")
		})
	}
}

func TestResumeFileName_Unique(t *testing.T) {
	now := time.Now()
	first, err := resumeFileName("resume.pdf", now)
	require.NoError(t, err)
	second, err := resumeFileName("resume.pdf", now)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "same instant still yields distinct names")
}
