package scoring

import (
	"regexp"

	"github.com/jonathan/ats-checker/internal/types"
)

// emailPattern matches a standard local@domain.tld address.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

// phonePattern matches common phone number shapes: optional country code,
// optional parentheses around the area code, dot/dash/space separators.
var phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

// checkEmail contributes +10 overall and +25 formatting when an email
// address is present. A missing email is an error: ATS systems require it.
func checkEmail(text string, res *types.AnalysisResult) {
	if emailPattern.MatchString(text) {
		res.Score += 10
		res.Categories.Formatting += 25
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeveritySuccess,
			Category: types.CategoryContactInfo,
			Message:  "Email address found - good for ATS systems",
		})
		return
	}
	res.Feedback = append(res.Feedback, types.FeedbackItem{
		Severity: types.SeverityError,
		Category: types.CategoryContactInfo,
		Message:  "Missing email address - ATS systems need contact information",
	})
}

// checkPhone contributes +10 overall and +25 formatting when a phone number
// is present. A missing phone is only a warning.
func checkPhone(text string, res *types.AnalysisResult) {
	if phonePattern.MatchString(text) {
		res.Score += 10
		res.Categories.Formatting += 25
		res.Feedback = append(res.Feedback, types.FeedbackItem{
			Severity: types.SeveritySuccess,
			Category: types.CategoryContactInfo,
			Message:  "Phone number found - good for recruiters",
		})
		return
	}
	res.Feedback = append(res.Feedback, types.FeedbackItem{
		Severity: types.SeverityWarning,
		Category: types.CategoryContactInfo,
		Message:  "Consider adding a phone number for better contact",
	})
}
