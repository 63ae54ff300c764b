// Package extraction converts uploaded resume documents into a single
// cleaned plain-text representation suitable for scoring.
//
// Supported inputs:
//   - PDF   — page-by-page text-layer extraction via pdfcpu, bounded pages
//   - DOCX  — raw text from word/document.xml (archive/zip + encoding/xml)
//   - plain text — trimmed passthrough
//
// All failures are typed (see errors.go) so callers can map them to
// user-facing guidance.
package extraction

import (
	"path/filepath"
	"strings"

	"github.com/jonathan/ats-checker/internal/types"
)

// MinContentLength is the minimum cleaned-text length considered a viable
// analysis input.
const MinContentLength = 100

// FormatFromMIME maps a declared MIME type to a document format.
func FormatFromMIME(mime string) (types.Format, error) {
	// Strip parameters like "; charset=utf-8".
	if idx := strings.IndexByte(mime, ';'); idx >= 0 {
		mime = mime[:idx]
	}
	switch strings.TrimSpace(strings.ToLower(mime)) {
	case types.MIMEPDF:
		return types.FormatPDF, nil
	case types.MIMEDOCX:
		return types.FormatDOCX, nil
	case types.MIMEPlainText:
		return types.FormatPlainText, nil
	default:
		return "", &UnsupportedFormatError{MIME: mime}
	}
}

// FormatFromPath maps a file extension to a document format. Used by the
// CLI and as a fallback when an upload carries no usable Content-Type.
func FormatFromPath(path string) (types.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return types.FormatPDF, nil
	case ".docx":
		return types.FormatDOCX, nil
	case ".txt", ".text":
		return types.FormatPlainText, nil
	default:
		return "", &UnsupportedFormatError{MIME: ext}
	}
}

// Normalize extracts cleaned text from a raw document. The dispatch on
// Format is total over the closed format set; the resulting text must be at
// least MinContentLength characters.
func Normalize(doc types.RawDocument) (types.NormalizedText, error) {
	var text string
	var err error

	switch doc.Format {
	case types.FormatPDF:
		text, err = ExtractPDF(doc.Data)
	case types.FormatDOCX:
		text, err = ExtractDOCX(doc.Data)
	case types.FormatPlainText:
		text = strings.TrimSpace(string(doc.Data))
	default:
		return types.NormalizedText{}, &UnsupportedFormatError{MIME: string(doc.Format)}
	}
	if err != nil {
		return types.NormalizedText{}, err
	}

	if len(text) < MinContentLength {
		return types.NormalizedText{}, &InsufficientContentError{Length: len(text)}
	}

	return types.NormalizedText{Content: text, SourceLength: len(doc.Data)}, nil
}
