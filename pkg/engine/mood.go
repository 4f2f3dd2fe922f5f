package engine

import (
	"regexp"
	"strings"

	"github.com/umputun/companion/pkg/domain"
)

type weightedWord struct {
	word   string
	weight int
}

type moodIndicators struct {
	mood  domain.Mood
	emoji []string
	words []weightedWord
}

// moodTable scores each mood by weighted keyword and emoji hits. Order matters:
// on a score tie the earlier mood wins.
var moodTable = []moodIndicators{
	{
		mood:  domain.MoodHappy,
		emoji: []string{"😊", "😄", "🥳", "😁", "🎉", "😃", "🙂", "💕", "❤️"},
		words: []weightedWord{
			{"happy", 2}, {"excited", 2}, {"great", 1}, {"awesome", 2},
			{"amazing", 2}, {"wonderful", 2}, {"yay", 2}, {"love it", 2},
		},
	},
	{
		mood:  domain.MoodExcited,
		emoji: []string{"🔥", "🚀", "💪", "🎊", "😍", "🤩"},
		words: []weightedWord{
			{"omg", 2}, {"can't wait", 2}, {"so pumped", 2},
			{"hyped", 2}, {"let's go", 2}, {"hell yeah", 2},
		},
	},
	{
		mood:  domain.MoodSad,
		emoji: []string{"😢", "😭", "💔", "😞", "😔", "🥺"},
		words: []weightedWord{
			{"sad", 2}, {"upset", 2}, {"heartbroken", 3}, {"crying", 2},
			{"devastated", 3}, {"hurts", 2}, {"depressed", 3},
		},
	},
	{
		mood:  domain.MoodStressed,
		emoji: []string{"😰", "😫", "🥵", "😤", "🤯"},
		words: []weightedWord{
			{"stressed", 3}, {"overwhelmed", 3}, {"swamped", 2},
			{"too much", 2}, {"deadline", 1}, {"buried", 2},
		},
	},
	{
		mood:  domain.MoodAnxious,
		emoji: []string{"😟", "😨", "😬", "😳"},
		words: []weightedWord{
			{"anxious", 3}, {"worried", 2}, {"nervous", 2}, {"scared", 2},
			{"freaking out", 3}, {"panicking", 3}, {"afraid", 2},
		},
	},
	{
		mood:  domain.MoodTired,
		emoji: []string{"😴", "🥱", "😩", "😪"},
		words: []weightedWord{
			{"tired", 2}, {"exhausted", 3}, {"drained", 2}, {"sleepy", 2},
			{"wiped", 2}, {"burned out", 3},
		},
	},
	{
		mood:  domain.MoodAnnoyed,
		emoji: []string{"😒", "🙄", "😑"},
		words: []weightedWord{
			{"annoyed", 2}, {"irritated", 2}, {"frustrated", 2}, {"ugh", 2},
			{"whatever", 1}, {"fed up", 2},
		},
	},
	{
		mood:  domain.MoodAngry,
		emoji: []string{"😠", "😡", "🤬", "💢"},
		words: []weightedWord{
			{"angry", 3}, {"furious", 3}, {"pissed", 3}, {"mad", 2},
			{"hate", 2}, {"wtf", 2},
		},
	},
	{
		mood:  domain.MoodBored,
		emoji: []string{"😐", "🥱"},
		words: []weightedWord{
			{"bored", 2}, {"boring", 2}, {"nothing to do", 2}, {"meh", 2},
		},
	},
	{
		mood:  domain.MoodLonely,
		emoji: []string{"🥺", "😔"},
		words: []weightedWord{
			{"lonely", 3}, {"alone", 2}, {"no one", 2}, {"isolated", 2},
		},
	},
}

var sarcasmPatterns = []*regexp.Regexp{
	regexp.MustCompile(`oh great`),
	regexp.MustCompile(`just great`),
	regexp.MustCompile(`fantastic\s*\.`),
	regexp.MustCompile(`wonderful\s*\.`),
	regexp.MustCompile(`🙄`),
}

// DetectMood extracts the dominant mood signal from message text.
// Returns Neutral when nothing scores. Sarcasm markers downgrade an
// apparent Happy/Excited read to Annoyed.
func DetectMood(text string) domain.Mood {
	if strings.TrimSpace(text) == "" {
		return domain.MoodNeutral
	}
	lower := strings.ToLower(text)

	sarcastic := false
	for _, re := range sarcasmPatterns {
		if re.MatchString(lower) {
			sarcastic = true
			break
		}
	}

	best := domain.MoodNeutral
	bestScore := 0
	for _, ind := range moodTable {
		score := 0
		for _, e := range ind.emoji {
			if strings.Contains(text, e) {
				score += 3
			}
		}
		for _, w := range ind.words {
			if strings.Contains(lower, w.word) {
				score += w.weight
			}
		}
		if score > bestScore {
			best, bestScore = ind.mood, score
		}
	}

	if bestScore == 0 {
		return domain.MoodNeutral
	}
	if sarcastic && (best == domain.MoodHappy || best == domain.MoodExcited) {
		return domain.MoodAnnoyed
	}
	return best
}

// MoodAnalysis summarizes recent mood history, newest first
type MoodAnalysis struct {
	Trend          string // "stable" or "declining"
	Concern        bool
	Dominant       domain.Mood
	NegativeStreak int
}

// AnalyzeHistory examines moods ordered newest first: the trend looks at the
// last five entries, the streak counts consecutive negative moods from the top.
func AnalyzeHistory(moods []domain.Mood) MoodAnalysis {
	if len(moods) == 0 {
		return MoodAnalysis{Trend: "stable", Dominant: domain.MoodNeutral}
	}

	recent := moods
	if len(recent) > 5 {
		recent = recent[:5]
	}

	negatives := 0
	counts := map[domain.Mood]int{}
	for _, m := range recent {
		if m.Negative() {
			negatives++
		}
		counts[m]++
	}

	dominant := recent[0]
	for _, m := range recent {
		if counts[m] > counts[dominant] {
			dominant = m
		}
	}

	streak := 0
	for _, m := range moods {
		if !m.Negative() {
			break
		}
		streak++
	}

	res := MoodAnalysis{Trend: "stable", Dominant: dominant, NegativeStreak: streak}
	if negatives >= 4 {
		res.Trend = "declining"
	}
	res.Concern = streak >= 3
	return res
}
