// Package types provides type definitions for structured data used throughout the ats-checker system.
package types

// Severity classifies the tone of a feedback item.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Feedback category labels as shown to the user.
const (
	CategoryContactInfo = "Contact Info"
	CategoryStructure   = "Structure"
	CategoryKeywords    = "Keywords"
	CategoryContent     = "Content"
	CategoryFormatting  = "Formatting"
)

// FeedbackItem is one rubric check's human-readable verdict.
type FeedbackItem struct {
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
	Message  string   `json:"message"`
}

// CategoryScores tracks per-category sub-scores, each clamped to [0,100].
// The categories are scored independently of the overall score.
type CategoryScores struct {
	Formatting int `json:"formatting"`
	Keywords   int `json:"keywords"`
	Structure  int `json:"structure"`
	Content    int `json:"content"`
}

// AnalysisResult is the outcome of one rubric run over normalized resume text.
// Every analysis produces a fresh value; results are never mutated in place.
// Feedback items appear in the fixed order the checks run in.
type AnalysisResult struct {
	Score      int            `json:"score"`
	Categories CategoryScores `json:"categories"`
	Feedback   []FeedbackItem `json:"feedback"`
}
