package engine

import (
	"regexp"
	"strings"

	"github.com/umputun/companion/pkg/domain"
)

// distressPatterns is a fixed trip-wire list, matched literally. It is biased
// toward over-triggering: sending the support response to someone venting is
// acceptable, missing someone in crisis is not. Do not tune these toward
// paraphrase matching.
var distressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`i('m| am) (really )?not ok(ay)?`),
	regexp.MustCompile(`can'?t (do|take) this anymore`),
	regexp.MustCompile(`want to (die|end it|disappear)`),
	regexp.MustCompile(`hurt(ing)? myself`),
	regexp.MustCompile(`no(body|one) cares`),
	regexp.MustCompile(`what'?s the point`),
	regexp.MustCompile(`i('m| am) serious`),
	regexp.MustCompile(`this is real`),
	regexp.MustCompile(`not (a )?jok(e|ing)`),
	regexp.MustCompile(`kill myself`),
	regexp.MustCompile(`suicide`),
	regexp.MustCompile(`self[- ]?harm`),
	regexp.MustCompile(`don'?t want to (be here|live|exist)`),
	regexp.MustCompile(`end (my|it all)`),
}

// DetectDistress reports whether the message contains crisis language.
// This is a binary safety signal, independent of mood classification.
func DetectDistress(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, re := range distressPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// ShouldTriggerSupport decides whether to switch to the persona-free support
// response: either the current message trips the distress detector, or the
// recent mood history (newest first) shows a sustained negative run.
func ShouldTriggerSupport(text string, history []domain.Mood) bool {
	if DetectDistress(text) {
		return true
	}
	if len(history) == 0 {
		return false
	}
	analysis := AnalyzeHistory(history)
	return analysis.Concern && analysis.NegativeStreak >= 5
}
