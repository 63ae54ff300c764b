// Package scoring implements the rule-based ATS compatibility rubric.
//
// Analyze runs seven independent checks over normalized resume text in a
// fixed order. Each check contributes fixed points to the overall score and
// to exactly one category, and emits exactly one feedback item. The point
// table is a deliberate, auditable heuristic: the overall score is the sum
// of per-check points, not a weighted average of the category scores, and
// the two may diverge.
package scoring

import "github.com/jonathan/ats-checker/internal/types"

// MinAnalyzableLength is the guard applied before any analysis: inputs
// whose length does not exceed this are treated as "not yet analyzed".
const MinAnalyzableLength = 100

// Analyze scores resume text against the rubric. Pure and deterministic:
// identical input always yields an identical result.
func Analyze(text string) types.AnalysisResult {
	var res types.AnalysisResult

	checkEmail(text, &res)
	checkPhone(text, &res)
	checkSections(text, &res)
	checkActionVerbs(text, &res)
	checkWordCount(text, &res)
	checkQuantifiableResults(text, &res)
	checkBulletPoints(text, &res)

	res.Categories.Formatting = clampScore(res.Categories.Formatting)
	res.Categories.Keywords = clampScore(res.Categories.Keywords)
	res.Categories.Structure = clampScore(res.Categories.Structure)
	res.Categories.Content = clampScore(res.Categories.Content)
	res.Score = clampScore(res.Score)

	return res
}

// clampScore bounds a score to [0,100]. The overall point table sums to 110,
// so the upper clamp is reachable.
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
