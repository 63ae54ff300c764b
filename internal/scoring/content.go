package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-checker/internal/types"
)

// quantifiablePattern detects metrics: percentages, dollar amounts, "N+",
// durations, and increase/reduce/save phrasing.
var quantifiablePattern = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\+|\d+\s*(years|months|days)|increased by|reduced by|saved\s+\$?\d+`)

// checkWordCount scores content length: 300+ words is a pass (+15 overall,
// +50 content), 200-299 is a partial (+10, +30), fewer is a fail.
func checkWordCount(text string, res *types.AnalysisResult) {
	wordCount := len(strings.Fields(text))

	switch {
	case wordCount >= 300:
		res.Score += 15
		res.Categories.Content += 50
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeveritySuccess,
			Category: types.CategoryContent,
			Message:  "Good content length with sufficient details",
		})
	case wordCount >= 200:
		res.Score += 10
		res.Categories.Content += 30
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeverityWarning,
			Category: types.CategoryContent,
			Message:  "Resume could use more details about your achievements",
		})
	default:
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeverityError,
			Category: types.CategoryContent,
			Message:  "Resume seems too short. Add more details about your roles and accomplishments",
		})
	}
}

// checkQuantifiableResults contributes +20 overall and +60 content when the
// text contains measurable outcomes; their absence is a warning.
func checkQuantifiableResults(text string, res *types.AnalysisResult) {
	if quantifiablePattern.MatchString(text) {
		res.Score += 20
		res.Categories.Content += 60
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeveritySuccess,
			Category: types.CategoryContent,
			Message:  "Great! Found quantifiable results - ATS systems love metrics",
		})
		return
	}
	res.Feedback = append(res.Feedback, types.FeedbackItem{
		Severity: types.SeverityWarning,
		Category: types.CategoryContent,
		Message:  `Add numbers & metrics like "increased efficiency by 25%" or "managed $500K budget"`,
	})
}
