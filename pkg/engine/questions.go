package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// questionLeadIns mark a bot turn as asking even without a literal "?"
var questionLeadIns = []*regexp.Regexp{
	regexp.MustCompile(`(what's|what is|how do|how to|why do|why does|where is|when is)`),
	regexp.MustCompile(`(are you|do you|can you|will you|would you|have you)`),
}

const questionTopicLimit = 50

// Tracker follows bot-asked questions until the user replies. Any reply
// counts as an answer, there is no topic matching.
type Tracker struct {
	store QuestionStore
}

// NewTracker creates a pending question tracker
func NewTracker(store QuestionStore) *Tracker {
	return &Tracker{store: store}
}

// OnUserMessage marks every unanswered bot question for the user as answered
func (t *Tracker) OnUserMessage(ctx context.Context, userID int64) error {
	if err := t.store.MarkAllAnswered(ctx, userID); err != nil {
		return fmt.Errorf("mark questions answered for user %d: %w", userID, err)
	}
	return nil
}

// HasPending reports whether the user has an unanswered bot question
func (t *Tracker) HasPending(ctx context.Context, userID int64) (bool, error) {
	pending, err := t.store.HasPending(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check pending questions for user %d: %w", userID, err)
	}
	return pending, nil
}

// ClassifyQuestion reports whether bot text asks a question and extracts a
// short topic for the pending list. Topic is empty when not a question.
func ClassifyQuestion(text string) (isQuestion bool, topic string) {
	if text == "" {
		return false, ""
	}
	if strings.Contains(text, "?") {
		return true, extractTopic(text)
	}
	lower := strings.ToLower(text)
	for _, re := range questionLeadIns {
		if re.MatchString(lower) {
			return true, extractTopic(text)
		}
	}
	return false, ""
}

// extractTopic takes the last five words before the first "?" (or the first
// five words when there is none) as a rough subject line
func extractTopic(text string) string {
	var words []string
	if i := strings.Index(text, "?"); i >= 0 {
		words = strings.Fields(text[:i])
		if len(words) > 5 {
			words = words[len(words)-5:]
		}
	} else {
		words = strings.Fields(text)
		if len(words) > 5 {
			words = words[:5]
		}
	}

	topic := strings.ToLower(strings.TrimSpace(strings.Join(words, " ")))
	if len(topic) > questionTopicLimit {
		topic = topic[:questionTopicLimit] + "..."
	}
	if topic == "" {
		return "general"
	}
	return topic
}
