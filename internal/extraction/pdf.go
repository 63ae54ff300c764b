package extraction

import (
	"bytes"
	"io"
	"log"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const (
	// MaxPDFSize is the upload size limit for PDF inputs, enforced before
	// any parsing.
	MaxPDFSize = 5 * 1024 * 1024

	// MaxPDFPages bounds how many pages are scanned. Pages beyond the
	// limit are silently ignored to cap worst-case latency.
	MaxPDFPages = 5
)

// ExtractPDF extracts the text layer from a PDF document. At most
// MaxPDFPages pages are read, in document order; a page whose extraction
// fails is skipped. The result is scrubbed to resume-safe characters. If
// fewer than MinContentLength characters survive, the document is treated
// as image-based.
func ExtractPDF(data []byte) (string, error) {
	if int64(len(data)) > MaxPDFSize {
		return "", &FileTooLargeError{Size: int64(len(data)), Limit: MaxPDFSize}
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return "", &ExtractionError{Stage: "PDF", Cause: err}
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= pagesToScan(ctx.PageCount); pageNr++ {
		pageText, err := extractPageText(ctx, pageNr)
		if err != nil {
			log.Printf("Error extracting text from page %d: %v", pageNr, err)
			continue
		}
		if pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(pageText)
	}

	clean := scrubResumeText(sb.String())
	if len(clean) < MinContentLength {
		return "", &ImageOnlyPDFError{Extracted: len(clean)}
	}
	return clean, nil
}

// pagesToScan bounds the page loop to MaxPDFPages.
func pagesToScan(pageCount int) int {
	if pageCount > MaxPDFPages {
		return MaxPDFPages
	}
	return pageCount
}

// extractPageText extracts the text runs of a single page from its content
// stream.
func extractPageText(ctx *model.Context, pageNr int) (string, error) {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return textRunsFromStream(data), nil
}

// String literals and the show-text operations that carry them. Producers
// are free to pack a whole page onto one line, so detection scans the
// stream for operand-operator pairs rather than keying on line structure.
var (
	stringLiteralPattern = regexp.MustCompile(`\(([^)]*)\)`)
	showTextPattern      = regexp.MustCompile(`\[([^\]]*)\]\s*TJ\b|\(([^)]*)\)\s*(?:Tj\b|')`)
)

// textRunsFromStream collects the text runs a PDF content stream shows and
// joins them with single spaces, collapsing run-internal whitespace.
// Recognized operations: Tj and ' with a string operand, TJ with an array
// operand.
func textRunsFromStream(data []byte) string {
	var runs []string

	for _, loc := range showTextPattern.FindAllSubmatchIndex(data, -1) {
		switch {
		case loc[2] >= 0: // [...] TJ
			for _, m := range stringLiteralPattern.FindAllSubmatch(data[loc[2]:loc[3]], -1) {
				runs = appendRun(runs, m[1])
			}
		case loc[4] >= 0: // (...) Tj or '
			runs = appendRun(runs, data[loc[4]:loc[5]])
		}
	}

	return strings.TrimSpace(strings.Join(runs, " "))
}

// appendRun decodes one string literal into a whitespace-collapsed run.
func appendRun(runs []string, raw []byte) []string {
	text := strings.Join(strings.Fields(decodeStringLiteral(raw)), " ")
	if text == "" {
		return runs
	}
	return append(runs, text)
}

// decodeStringLiteral handles the PDF string escape sequences, including
// octal escapes like \040.
func decodeStringLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// Characters outside this allow-list carry no signal for the rubric and are
// replaced by spaces: word characters, whitespace, and @ . , - / # + ( ) :
var disallowedCharPattern = regexp.MustCompile(`[^\w\s@.,\-/#+()\n:]`)

var whitespaceRunPattern = regexp.MustCompile(`\s+`)

// scrubResumeText strips disallowed characters, collapses whitespace runs
// to single spaces, and trims.
func scrubResumeText(text string) string {
	text = disallowedCharPattern.ReplaceAllString(text, " ")
	text = whitespaceRunPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
