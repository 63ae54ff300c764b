package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-checker/internal/types"
)

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.AnalysisResult{
		Score: 85,
		Categories: types.CategoryScores{
			Formatting: 75,
			Keywords:   50,
			Structure:  70,
			Content:    60,
		},
		Feedback: []types.FeedbackItem{
			{Severity: types.SeveritySuccess, Category: types.CategoryContactInfo, Message: "Email address found"},
			{Severity: types.SeverityWarning, Category: types.CategoryKeywords, Message: "Consider adding more action verbs"},
			{Severity: types.SeverityError, Category: types.CategoryStructure, Message: "Missing key sections"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS Score")
	assert.Contains(t, out, "Overall:     85 / 100  (good)")
	assert.Contains(t, out, "Formatting:  75 / 100")
	assert.Contains(t, out, "Keywords:    50 / 100")
	assert.Contains(t, out, "Structure:   70 / 100")
	assert.Contains(t, out, "Content:     60 / 100")
	assert.Contains(t, out, "✓ [Contact Info] Email address found")
	assert.Contains(t, out, "! [Keywords] Consider adding more action verbs")
	assert.Contains(t, out, "✗ [Structure] Missing key sections")
}

func TestPrintAnalysis_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStatus("Successfully extracted text (482 chars)")
	assert.Equal(t, "Successfully extracted text (482 chars)\n", buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("Title", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestScoreVerdict(t *testing.T) {
	assert.Equal(t, "(good)", scoreVerdict(80))
	assert.Equal(t, "(fair)", scoreVerdict(60))
	assert.Equal(t, "(poor)", scoreVerdict(59))
}
