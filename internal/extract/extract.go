// Package extract converts uploaded resume documents into plain text.
// PDF and DOCX are supported; the legacy DOC format is explicitly rejected.
package extract

import "strings"

// Supported and recognized MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC  = "application/msword"
)

// DocumentExtractor dispatches extraction on MIME type.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a DocumentExtractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract returns the plain text of the document, or a typed extraction
// error describing why the bytes could not be used.
func (e *DocumentExtractor) Extract(data []byte, mimeType string) (string, error) {
	var text string
	var err error

	switch mimeType {
	case MimePDF:
		text, err = extractPDF(data)
	case MimeDOCX:
		text, err = extractDOCX(data)
	case MimeDOC:
		return "", unsupportedFormat("old .doc format is not supported, save as .docx or PDF")
	default:
		return "", unsupportedFormat("invalid file format, upload PDF or DOCX")
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", emptyDocument("no text could be extracted, the document may be image-based")
	}
	return text, nil
}
