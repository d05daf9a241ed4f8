package extract

import "fmt"

// Extraction failure kinds. Unsupported formats and empty documents are user
// input errors; corrupt documents are extraction failures. None are retried.
const (
	KindUnsupportedFormat = "unsupported_format"
	KindCorruptDocument   = "corrupt_document"
	KindEmptyDocument     = "empty_document"
)

// Error represents a document extraction failure with its taxonomy kind.
type Error struct {
	Kind    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error (%s): %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsUserInput reports whether the failure was caused by the uploaded file
// itself rather than by the extraction machinery.
func (e *Error) IsUserInput() bool {
	return e.Kind == KindUnsupportedFormat || e.Kind == KindEmptyDocument
}

func unsupportedFormat(msg string) *Error {
	return &Error{Kind: KindUnsupportedFormat, Message: msg}
}

func corruptDocument(msg string, cause error) *Error {
	return &Error{Kind: KindCorruptDocument, Message: msg, Cause: cause}
}

func emptyDocument(msg string) *Error {
	return &Error{Kind: KindEmptyDocument, Message: msg}
}
