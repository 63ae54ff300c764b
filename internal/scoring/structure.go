package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/ats-checker/internal/types"
)

// sectionKeywords are the section headers the rubric looks for, matched as
// whole words, case-insensitively. Order matters: feedback lists the found
// sections in this order.
var sectionKeywords = []string{
	"experience", "education", "skills", "work", "employment", "summary", "projects",
}

var sectionPatterns = compileWordPatterns(sectionKeywords)

// compileWordPatterns builds a case-insensitive whole-word matcher per keyword.
func compileWordPatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return patterns
}

// matchWords returns the keywords whose patterns match the text, preserving
// keyword order.
func matchWords(text string, words []string, patterns []*regexp.Regexp) []string {
	var found []string
	for i, p := range patterns {
		if p.MatchString(text) {
			found = append(found, words[i])
		}
	}
	return found
}

// checkSections scores section coverage: three or more known section
// headers is a pass (+20 overall, +70 structure), exactly two is a partial
// (+10, +40), fewer is a fail.
func checkSections(text string, res *types.AnalysisResult) {
	found := matchWords(text, sectionKeywords, sectionPatterns)

	switch {
	case len(found) >= 3:
		res.Score += 20
		res.Categories.Structure += 70
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeveritySuccess,
			Category: types.CategoryStructure,
			Message:  fmt.Sprintf("Excellent! Found %d key sections: %s", len(found), strings.Join(found, ", ")),
		})
	case len(found) >= 2:
		res.Score += 10
		res.Categories.Structure += 40
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeverityWarning,
			Category: types.CategoryStructure,
			Message:  fmt.Sprintf(`Found %d sections. Consider adding more sections like "Summary" or "Projects"`, len(found)),
		})
	default:
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeverityError,
			Category: types.CategoryStructure,
			Message:  `Add clear section headers like "Experience", "Education", "Skills"`,
		})
	}
}
