package scoring

import (
	"regexp"

	"github.com/jonathan/ats-checker/internal/types"
)

// Bullet detection: a bullet glyph followed by whitespace anywhere, or a
// line starting with * or - as plain-text markers.
var (
	bulletGlyphPattern = regexp.MustCompile(`[•·‣⁃-]\s`)
	bulletLinePattern  = regexp.MustCompile(`(?m)^\s*[*\-]\s`)
)

// checkBulletPoints contributes +10 overall and +25 formatting when bullet
// points are present; their absence is a warning.
func checkBulletPoints(text string, res *types.AnalysisResult) {
	if bulletGlyphPattern.MatchString(text) || bulletLinePattern.MatchString(text) {
		res.Score += 10
		res.Categories.Formatting += 25
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeveritySuccess,
			Category: types.CategoryFormatting,
			Message:  "Good use of bullet points - easy for ATS to parse",
		})
		return
	}
	res.Feedback = append(res.Feedback, types.FeedbackItem{
		Severity: types.SeverityWarning,
		Category: types.CategoryFormatting,
		Message:  "Use bullet points (• or *) for better ATS readability",
	})
}
