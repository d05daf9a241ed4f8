package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls plain text out of a PDF. The pdf library panics on some
// malformed inputs, so the recover converts those into corrupt-document
// errors instead of taking down the request.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = corruptDocument("pdf parser panicked", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", corruptDocument("failed to open pdf", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", corruptDocument("failed to read pdf text", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", corruptDocument("failed to read pdf text stream", err)
	}
	return buf.String(), nil
}
