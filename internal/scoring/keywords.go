package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-checker/internal/types"
)

// actionVerbs is the fixed list of strong resume verbs the rubric rewards.
// Matched as whole words, case-insensitively; each verb counts once.
var actionVerbs = []string{
	"achieved", "created", "developed", "implemented", "managed", "led", "designed",
	"built", "optimized", "increased", "improved", "delivered", "launched", "established",
	"spearheaded", "transformed", "initiated", "coordinated", "executed", "mentored",
}

var actionVerbPatterns = compileWordPatterns(actionVerbs)

// checkActionVerbs scores action-verb density: eight or more distinct verbs
// is a pass (+25 overall, +80 keywords), four to seven is a partial
// (+15, +50), fewer is a fail.
func checkActionVerbs(text string, res *types.AnalysisResult) {
	found := matchWords(text, actionVerbs, actionVerbPatterns)

	switch {
	case len(found) >= 8:
		res.Score += 25
		res.Categories.Keywords += 80
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeveritySuccess,
			Category: types.CategoryKeywords,
			Message:  fmt.Sprintf("Excellent! Found %d strong action verbs", len(found)),
		})
	case len(found) >= 4:
		res.Score += 15
		res.Categories.Keywords += 50
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeverityWarning,
			Category: types.CategoryKeywords,
			Message:  fmt.Sprintf("Good start with %d action verbs. Try adding more like: %s", len(found), strings.Join(actionVerbs[:5], ", ")),
		})
	default:
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeverityError,
			Category: types.CategoryKeywords,
			Message:  "Use more action verbs like: developed, managed, achieved, implemented",
		})
	}
}
