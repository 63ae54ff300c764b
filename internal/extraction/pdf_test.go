package extraction

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF assembles a minimal multi-page PDF with one single-line content
// stream per page.
func buildPDF(t *testing.T, pageTexts ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pageTexts)))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	for i, text := range pageTexts {
		writeObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefOffset)
	return buf.Bytes()
}

func TestExtractPDF_FileTooLarge(t *testing.T) {
	data := make([]byte, MaxPDFSize+1)

	_, err := ExtractPDF(data)

	var tooLarge *FileTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, int64(MaxPDFSize+1), tooLarge.Size)
	assert.Equal(t, int64(MaxPDFSize), tooLarge.Limit)

	// The size check runs before any parsing: a parse of this buffer
	// would have failed differently.
	var extractErr *ExtractionError
	assert.False(t, errors.As(err, &extractErr), "size limit must be reported, not a parser fault")
}

func TestExtractPDF_NotAPDF(t *testing.T) {
	_, err := ExtractPDF([]byte("this is not a pdf document at all"))

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "PDF", extractErr.Stage)
	assert.Error(t, extractErr.Unwrap())
}

func TestExtractPDF_SingleLineContentStream(t *testing.T) {
	data := buildPDF(t, "Jane Doe jane@x.com experience education skills summary projects "+
		"developed managed increased built delivered launched optimized")

	text, err := ExtractPDF(data)

	require.NoError(t, err)
	assert.Contains(t, text, "jane@x.com")
	assert.Contains(t, text, "experience")
	assert.Contains(t, text, "optimized")
}

func TestExtractPDF_PageCap(t *testing.T) {
	pages := make([]string, 6)
	for i := range pages {
		pages[i] = fmt.Sprintf("PAGE%dMARKER experience education skills developed managed delivered resume content", i+1)
	}

	text, err := ExtractPDF(buildPDF(t, pages...))

	require.NoError(t, err)
	for i := 1; i <= MaxPDFPages; i++ {
		assert.Contains(t, text, fmt.Sprintf("PAGE%dMARKER", i))
	}
	assert.NotContains(t, text, "PAGE6MARKER")
}

func TestPagesToScan_Bounded(t *testing.T) {
	assert.Equal(t, 0, pagesToScan(0))
	assert.Equal(t, 3, pagesToScan(3))
	assert.Equal(t, 5, pagesToScan(5))
	assert.Equal(t, 5, pagesToScan(6))
	assert.Equal(t, 5, pagesToScan(200))
}

func TestTextRunsFromStream_Operators(t *testing.T) {
	stream := []byte("BT\n" +
		"/F1 12 Tf\n" +
		"(Hello) Tj\n" +
		"[(Wo) -20 (rld)] TJ\n" +
		"(next line) '\n" +
		"T*\n" +
		"ET\n")

	text := textRunsFromStream(stream)
	assert.Equal(t, "Hello Wo rld next line", text)
}

func TestTextRunsFromStream_SingleLine(t *testing.T) {
	// Minifying producers emit the whole page as one line of
	// whitespace-separated operators.
	stream := []byte("BT /F1 12 Tf 72 720 Td (Hello) Tj 0 -14 Td [(Wo) -20 (rld)] TJ ET")
	assert.Equal(t, "Hello Wo rld", textRunsFromStream(stream))
}

func TestTextRunsFromStream_CollapsesRunWhitespace(t *testing.T) {
	text := textRunsFromStream([]byte("(a   b\tc) Tj\n"))
	assert.Equal(t, "a b c", text)
}

func TestTextRunsFromStream_IgnoresNonTextOperators(t *testing.T) {
	stream := []byte("q\n1 0 0 1 50 700 cm\nQ\n0.5 g\n(visible) Tj\n")
	assert.Equal(t, "visible", textRunsFromStream(stream))
}

func TestDecodeStringLiteral(t *testing.T) {
	assert.Equal(t, "plain", decodeStringLiteral([]byte("plain")))
	assert.Equal(t, "a\nb", decodeStringLiteral([]byte(`a\nb`)))
	assert.Equal(t, "tab\there", decodeStringLiteral([]byte(`tab\there`)))
	assert.Equal(t, `back\slash`, decodeStringLiteral([]byte(`back\\slash`)))
	assert.Equal(t, "()", decodeStringLiteral([]byte(`\(\)`)))
	// Octal escapes: \040 is space, \101 is A.
	assert.Equal(t, " ", decodeStringLiteral([]byte(`\040`)))
	assert.Equal(t, "A", decodeStringLiteral([]byte(`\101`)))
}

func TestScrubResumeText_AllowList(t *testing.T) {
	in := "Jane Doe — jane@x.com | (555) 123-4567 ★ C#/C++ engineer: 10+ yrs"
	out := scrubResumeText(in)

	assert.NotContains(t, out, "—")
	assert.NotContains(t, out, "|")
	assert.NotContains(t, out, "★")
	assert.Contains(t, out, "jane@x.com")
	assert.Contains(t, out, "(555) 123-4567")
	assert.Contains(t, out, "C#/C++")
	assert.Contains(t, out, "10+")
}

func TestScrubResumeText_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", scrubResumeText("  a\n\nb\t \tc  "))
}

func TestScrubResumeText_SymbolOnlyInputStripsToNothing(t *testing.T) {
	// The shape of an image-based PDF: pages read fine but the text layer
	// holds no resume-safe characters.
	assert.Equal(t, "", scrubResumeText("★☆✦ ≈≈≈ ░░░ ☺"))
}
