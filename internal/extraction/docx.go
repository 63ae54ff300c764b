package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// minDOCXLength is the floor for extracted DOCX text. DOCX extraction is
// lossless enough that a lower floor than the PDF one is appropriate.
const minDOCXLength = 50

// ExtractDOCX extracts the raw text stream from an Office Open XML
// word-processing document: word/document.xml inside the ZIP package,
// paragraphs separated by newlines.
func ExtractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Stage: "DOCX", Cause: err}
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", &ExtractionError{Stage: "DOCX", Cause: errors.New("word/document.xml not found in archive")}
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", &ExtractionError{Stage: "DOCX", Cause: err}
	}
	defer rc.Close()

	text, err := documentText(rc)
	if err != nil {
		return "", &ExtractionError{Stage: "DOCX", Cause: err}
	}

	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minDOCXLength {
		return "", &EmptyDocumentError{Extracted: len(trimmed)}
	}
	return trimmed, nil
}

// documentText walks the WordprocessingML token stream and collects the
// text runs: w:t contents concatenated per paragraph, paragraphs separated
// by newlines, tabs and explicit breaks preserved as whitespace.
func documentText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	var paragraph strings.Builder
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
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				paragraph.WriteByte(' ')
			case "br":
				paragraph.WriteByte('\n')
			}

		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := strings.TrimSpace(paragraph.String()); text != "" {
					if sb.Len() > 0 {
						sb.WriteByte('\n')
					}
					sb.WriteString(text)
				}
				paragraph.Reset()
			}
		}
	}

	return sb.String(), nil
}
