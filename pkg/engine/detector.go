package engine

import (
	"regexp"
	"strings"

	"github.com/umputun/companion/pkg/domain"
)

// pattern tables for boundary detection, checked in precedence order:
// timing preferences, then space requests, then topic stops. Space patterns
// are narrow literal phrases on purpose: a false positive there silences
// proactive messages for 24 hours, a false positive on a topic merely
// widens avoidance.

var timingPatterns = []struct {
	re    *regexp.Regexp
	value string
}{
	{regexp.MustCompile(`no (?:more )?morning messages?`), domain.ValueNoMorningMessages},
	{regexp.MustCompile(`don'?t message me (?:in the )?morning`), domain.ValueNoMorningMessages},
	{regexp.MustCompile(`no messages? (?:at|after|late at) night`), domain.ValueNoLateMessages},
	{regexp.MustCompile(`don'?t (?:text|message) me (?:so )?late`), domain.ValueNoLateMessages},
}

var spacePatterns = []struct {
	re    *regexp.Regexp
	btype domain.BoundaryType
}{
	{regexp.MustCompile(`leave me alone`), domain.BoundaryBehavior},
	{regexp.MustCompile(`stop messaging me`), domain.BoundaryBehavior},
	{regexp.MustCompile(`stop texting me`), domain.BoundaryBehavior},
	{regexp.MustCompile(`too many messages`), domain.BoundaryFrequency},
	{regexp.MustCompile(`give me (?:some )?space`), domain.BoundaryBehavior},
	{regexp.MustCompile(`back off`), domain.BoundaryBehavior},
	{regexp.MustCompile(`i need (?:some )?(?:space|time|a break)`), domain.BoundaryBehavior},
	{regexp.MustCompile(`chill (?:out )?(?:with the messages)?`), domain.BoundaryFrequency},
	{regexp.MustCompile(`not (?:right )?now`), domain.BoundaryBehavior},
	{regexp.MustCompile(`go away`), domain.BoundaryBehavior},
	{regexp.MustCompile(`shut up`), domain.BoundaryBehavior},
}

var topicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`stop asking (?:me )?about (.+)`),
	regexp.MustCompile(`stop (?:talking|mentioning|bringing up) (?:about )?(.+)`),
	regexp.MustCompile(`don'?t (?:ask|mention|talk|bring up) (?:about )?(.+)`),
	regexp.MustCompile(`i don'?t (?:want|wanna|need) to (?:talk|hear|discuss) about (.+)`),
	regexp.MustCompile(`let'?s not (?:talk|discuss) (?:about )?(.+)`),
	regexp.MustCompile(`can we not (?:talk|discuss) (?:about )?(.+)`),
	regexp.MustCompile(`enough (?:about|with) (?:the )?(.+)`),
	regexp.MustCompile(`no more (.+) (?:talk|questions|stuff)`),
	regexp.MustCompile(`please (?:stop|don'?t) (?:asking|talking) (?:about )?(.+)`),
}

var retractionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:i'?m |im )?back`),
	regexp.MustCompile(`(?:i'?m |im )?here`),
	regexp.MustCompile(`(?:i'?m |im )?ready`),
	regexp.MustCompile(`(?:okay |ok )?(?:i'?m |im )?(?:good|fine|better) now`),
	regexp.MustCompile(`(?:never ?mind|nvm)`),
	regexp.MustCompile(`(?:i'?m |im )?sorry`),
	regexp.MustCompile(`miss(?:ed)? you`),
	regexp.MustCompile(`hey again`),
}

var topicSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`\s*anymore$`),
	regexp.MustCompile(`\s*please$`),
	regexp.MustCompile(`\s*!+$`),
	regexp.MustCompile(`\s*\.+$`),
}

// genericTopics are captures too vague to act on
var genericTopics = map[string]bool{"it": true, "that": true, "this": true, "them": true, "thing": true}

// DetectBoundary classifies free text as a boundary request. Returns the
// boundary type and canonical value, or ok=false when nothing matched.
func DetectBoundary(text string) (btype domain.BoundaryType, value string, ok bool) {
	if text == "" {
		return "", "", false
	}
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, p := range timingPatterns {
		if p.re.MatchString(lower) {
			return domain.BoundaryTiming, p.value, true
		}
	}

	for _, p := range spacePatterns {
		if p.re.MatchString(lower) {
			return p.btype, domain.ValueReduceMessages, true
		}
	}

	for _, re := range topicPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			if topic := cleanTopic(m[1]); topic != "" {
				return domain.BoundaryTopic, topic, true
			}
		}
	}

	return "", "", false
}

// DetectRetraction reports whether the text reads as the user coming back
// after a space request. Used only to lift an active space boundary early.
func DetectRetraction(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, re := range retractionPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// cleanTopic normalizes a captured topic, dropping trailing filler and
// rejecting captures too short or generic to enforce
func cleanTopic(topic string) string {
	topic = strings.ToLower(strings.TrimSpace(topic))
	for _, re := range topicSuffixes {
		topic = re.ReplaceAllString(topic, "")
	}
	topic = strings.TrimSpace(topic)
	if len(topic) < 2 || genericTopics[topic] {
		return ""
	}
	return topic
}
