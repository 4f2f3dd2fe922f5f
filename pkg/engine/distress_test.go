package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/companion/pkg/domain"
)

func TestDetectDistress(t *testing.T) {
	positive := []string{
		"i'm not okay",
		"I am really not ok",
		"i can't do this anymore",
		"cant take this anymore",
		"i want to die",
		"sometimes i want to disappear",
		"i've been hurting myself",
		"nobody cares about me",
		"noone cares",
		"what's the point of anything",
		"whats the point",
		"i'm serious",
		"this is real, i need help",
		"i'm not joking",
		"not a joke",
		"i want to kill myself",
		"thinking about suicide",
		"struggling with self-harm",
		"struggling with self harm",
		"i don't want to be here",
		"dont want to live",
		"i want to end it all",
	}
	for _, text := range positive {
		t.Run(text, func(t *testing.T) {
			assert.True(t, DetectDistress(text))
		})
	}

	negative := []string{
		"",
		"i'm okay now",
		"this movie is killing me lol",
		"the deadline is brutal",
		"i'm so tired of this weather",
		"that joke was terrible",
		"my phone died",
	}
	for _, text := range negative {
		t.Run("benign: "+text, func(t *testing.T) {
			assert.False(t, DetectDistress(text))
		})
	}
}

func TestShouldTriggerSupport(t *testing.T) {
	longRun := []domain.Mood{
		domain.MoodSad, domain.MoodSad, domain.MoodAnxious,
		domain.MoodSad, domain.MoodStressed,
	}

	tests := []struct {
		name    string
		text    string
		history []domain.Mood
		want    bool
	}{
		{
			name: "distress phrase triggers regardless of history",
			text: "i can't take this anymore",
			want: true,
		},
		{
			name:    "five negative moods in a row trigger",
			text:    "hey",
			history: longRun,
			want:    true,
		},
		{
			name: "streak of four is not enough",
			text: "hey",
			history: []domain.Mood{
				domain.MoodSad, domain.MoodSad, domain.MoodAnxious, domain.MoodSad,
				domain.MoodHappy,
			},
			want: false,
		},
		{
			name: "broken streak does not trigger",
			text: "hey",
			history: []domain.Mood{
				domain.MoodHappy, domain.MoodSad, domain.MoodSad,
				domain.MoodSad, domain.MoodSad, domain.MoodSad,
			},
			want: false,
		},
		{
			name: "no history and benign text",
			text: "what's for dinner",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldTriggerSupport(tt.text, tt.history))
		})
	}
}
