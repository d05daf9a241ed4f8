package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// extractDOCX reads the main document part of a DOCX archive and returns its
// text runs, one line per paragraph. A DOCX file is a zip containing
// word/document.xml; nothing beyond the text runs is needed here.
func extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", corruptDocument("not a valid docx archive", err)
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", corruptDocument("docx archive has no word/document.xml", nil)
	}

	rc, err := document.Open()
	if err != nil {
		return "", corruptDocument("failed to open docx document part", err)
	}
	defer rc.Close()

	text, err := decodeDocumentXML(rc)
	if err != nil {
		return "", corruptDocument("failed to parse docx document xml", err)
	}
	return text, nil
}

// decodeDocumentXML walks WordprocessingML, collecting <w:t> character data
// and emitting newlines at paragraph ends so section headers stay on their
// own lines.
func decodeDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
