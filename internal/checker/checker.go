// Package checker coordinates document ingestion and rubric scoring.
//
// A Checker owns the single "active analysis input" slot and the single
// "current result" slot. File uploads run through the extraction
// normalizer; pasted text bypasses it. Both entry points converge on the
// same guard-and-score path: text is only analyzed when it exceeds the
// minimum analyzable length, and a short input leaves the previous result
// stale rather than clearing it.
package checker

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/ats-checker/internal/extraction"
	"github.com/jonathan/ats-checker/internal/scoring"
	"github.com/jonathan/ats-checker/internal/types"
)

// ErrSuperseded indicates a submission finished after a newer submission
// took over the active input slot; its result was discarded.
var ErrSuperseded = errors.New("analysis superseded by newer input")

// StatusNotAnalyzed is the status before any input has been analyzed.
const StatusNotAnalyzed = "Not analyzed yet. Upload a resume file or paste text to get started"

// Checker tracks the active analysis input, the most recent result, and a
// human-readable status line. Safe for concurrent use.
type Checker struct {
	mu     sync.Mutex
	run    uuid.UUID // token of the most recent submission
	text   string    // active analysis input
	result *types.AnalysisResult
	status string
}

// New creates a Checker with no active input.
func New() *Checker {
	return &Checker{status: StatusNotAnalyzed}
}

// SubmitDocument normalizes an uploaded document and, when enough text
// survives, scores it and commits it as the active input. On failure the
// previous active text and result remain unchanged and the error becomes
// the status line.
func (c *Checker) SubmitDocument(doc types.RawDocument) (*types.AnalysisResult, error) {
	token := c.begin(extractingStatus(doc.Format))

	norm, err := extraction.Normalize(doc)
	if err != nil {
		c.fail(token, err)
		return nil, err
	}

	return c.commit(token, norm.Content)
}

// SubmitText makes pasted text the active analysis input directly, with no
// normalization step beyond trimming. Text at or below the minimum
// analyzable length still becomes the active input but is not scored; the
// previous result is left stale and an InsufficientContentError is
// returned so callers can report "not yet analyzed".
func (c *Checker) SubmitText(text string) (*types.AnalysisResult, error) {
	token := c.begin("Analyzing resume text...")
	return c.commit(token, strings.TrimSpace(text))
}

// Result returns the most recent committed analysis, if any.
func (c *Checker) Result() (types.AnalysisResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return types.AnalysisResult{}, false
	}
	return *c.result, true
}

// ActiveText returns the current active analysis input.
func (c *Checker) ActiveText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Status returns the human-readable status line for UI display.
func (c *Checker) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// begin claims the active input slot with a fresh run token and sets a
// transient status.
func (c *Checker) begin(status string) uuid.UUID {
	token := uuid.New()
	c.mu.Lock()
	c.run = token
	c.status = status
	c.mu.Unlock()
	return token
}

// commit stores text as the active input and, when it exceeds the
// analyzable minimum, its analysis as the current result. A stale token
// means a newer submission won the slot: nothing is stored and the stale
// result is discarded.
func (c *Checker) commit(token uuid.UUID, text string) (*types.AnalysisResult, error) {
	var res *types.AnalysisResult
	if len(text) > scoring.MinAnalyzableLength {
		r := scoring.Analyze(text)
		res = &r
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.run != token {
		return nil, ErrSuperseded
	}

	c.text = text
	if res == nil {
		c.status = fmt.Sprintf("Text too short to analyze (%d characters, need more than %d)", len(text), scoring.MinAnalyzableLength)
		return nil, &extraction.InsufficientContentError{Length: len(text)}
	}
	c.result = res
	c.status = fmt.Sprintf("Successfully extracted text (%d chars)", len(text))
	return res, nil
}

// fail records an extraction failure as the status line. The previous
// active text and result stay usable.
func (c *Checker) fail(token uuid.UUID, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.run != token {
		return
	}
	c.status = err.Error()
}

func extractingStatus(format types.Format) string {
	switch format {
	case types.FormatPDF:
		return "Extracting text from PDF..."
	case types.FormatDOCX:
		return "Extracting text from DOCX..."
	default:
		return "Processing file..."
	}
}
