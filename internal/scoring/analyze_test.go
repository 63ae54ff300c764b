package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-checker/internal/types"
)

// sampleResume exercises every check: email, phone, three sections, four
// action verbs (developed, managed, built, increased), quantifiable
// results, and bullet points. Word count stays under 200.
const sampleResume = "Experienced engineer. Contact: jane@x.com, (555) 123-4567. " +
	"EXPERIENCE: developed and managed systems. EDUCATION: BS CS. SKILLS: Go, Rust. " +
	"• Built tools. • Increased throughput by 30%."

func TestAnalyze_SampleResume(t *testing.T) {
	res := Analyze(sampleResume)

	// 10 (email) + 10 (phone) + 20 (sections) + 15 (verbs, partial tier)
	// + 0 (word count) + 20 (quantifiable) + 10 (bullets)
	assert.Equal(t, 85, res.Score)

	assert.Equal(t, 75, res.Categories.Formatting)
	assert.Equal(t, 50, res.Categories.Keywords)
	assert.Equal(t, 70, res.Categories.Structure)
	assert.Equal(t, 60, res.Categories.Content)
}

func TestAnalyze_FeedbackOrderIsFixed(t *testing.T) {
	res := Analyze(sampleResume)

	require.Len(t, res.Feedback, 7)
	assert.Equal(t, types.CategoryContactInfo, res.Feedback[0].Category) // email
	assert.Equal(t, types.CategoryContactInfo, res.Feedback[1].Category) // phone
	assert.Equal(t, types.CategoryStructure, res.Feedback[2].Category)
	assert.Equal(t, types.CategoryKeywords, res.Feedback[3].Category)
	assert.Equal(t, types.CategoryContent, res.Feedback[4].Category) // word count
	assert.Equal(t, types.CategoryContent, res.Feedback[5].Category) // quantifiable
	assert.Equal(t, types.CategoryFormatting, res.Feedback[6].Category)

	assert.Equal(t, types.SeveritySuccess, res.Feedback[0].Severity)
	assert.Equal(t, types.SeveritySuccess, res.Feedback[1].Severity)
	assert.Equal(t, types.SeveritySuccess, res.Feedback[2].Severity)
	assert.Equal(t, types.SeverityWarning, res.Feedback[3].Severity) // 4 verbs: partial
	assert.Equal(t, types.SeverityError, res.Feedback[4].Severity)   // under 200 words
	assert.Equal(t, types.SeveritySuccess, res.Feedback[5].Severity)
	assert.Equal(t, types.SeveritySuccess, res.Feedback[6].Severity)
}

func TestAnalyze_Idempotent(t *testing.T) {
	first := Analyze(sampleResume)
	second := Analyze(sampleResume)
	require.Equal(t, first, second)
}

func TestAnalyze_EmptyText(t *testing.T) {
	res := Analyze("")

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, types.CategoryScores{}, res.Categories)
	require.Len(t, res.Feedback, 7)
	for _, item := range res.Feedback {
		assert.NotEqual(t, types.SeveritySuccess, item.Severity)
	}
}

func TestAnalyze_OverallScoreClampedAt100(t *testing.T) {
	// Every check passes at its top tier; raw overall points sum to 110.
	text := "Resume of Pat Doe. pat.doe@example.com (555) 123-4567\n" +
		"SUMMARY\nEXPERIENCE\nEDUCATION\nSKILLS\nPROJECTS\n" +
		"• achieved created developed implemented managed led designed built things\n" +
		"• increased revenue by 40% and saved $200 per deployment over 3 years\n" +
		strings.Repeat("detail ", 300)
	res := Analyze(text)

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 75, res.Categories.Formatting)
	assert.Equal(t, 80, res.Categories.Keywords)
	assert.Equal(t, 70, res.Categories.Structure)
	assert.Equal(t, 100, res.Categories.Content) // 50+60 clamped
	for _, item := range res.Feedback {
		assert.Equal(t, types.SeveritySuccess, item.Severity, item.Message)
	}
}

func TestAnalyze_ScoresAlwaysInRange(t *testing.T) {
	inputs := []string{
		"",
		"short",
		sampleResume,
		strings.Repeat("word ", 500),
		strings.Repeat("achieved created developed implemented managed ", 50),
		"experience education skills work employment summary projects",
	}
	for _, text := range inputs {
		res := Analyze(text)
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 100)
		for _, score := range []int{
			res.Categories.Formatting, res.Categories.Keywords,
			res.Categories.Structure, res.Categories.Content,
		} {
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 0, clampScore(0))
	assert.Equal(t, 70, clampScore(70))
	assert.Equal(t, 100, clampScore(100))
	assert.Equal(t, 100, clampScore(110))
}
