package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/companion/pkg/domain"
)

func TestDetectBoundary_Timing(t *testing.T) {
	tests := []struct {
		text  string
		value string
	}{
		{"no morning messages", domain.ValueNoMorningMessages},
		{"no more morning messages please", domain.ValueNoMorningMessages},
		{"don't message me in the morning", domain.ValueNoMorningMessages},
		{"dont message me morning", domain.ValueNoMorningMessages},
		{"no messages at night", domain.ValueNoLateMessages},
		{"no message late at night", domain.ValueNoLateMessages},
		{"don't text me so late", domain.ValueNoLateMessages},
		{"don't message me late", domain.ValueNoLateMessages},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			btype, value, ok := DetectBoundary(tt.text)
			require.True(t, ok)
			assert.Equal(t, domain.BoundaryTiming, btype)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestDetectBoundary_Space(t *testing.T) {
	tests := []struct {
		text  string
		btype domain.BoundaryType
	}{
		{"leave me alone", domain.BoundaryBehavior},
		{"LEAVE ME ALONE", domain.BoundaryBehavior},
		{"stop messaging me", domain.BoundaryBehavior},
		{"stop texting me", domain.BoundaryBehavior},
		{"too many messages", domain.BoundaryFrequency},
		{"give me space", domain.BoundaryBehavior},
		{"give me some space", domain.BoundaryBehavior},
		{"back off", domain.BoundaryBehavior},
		{"i need a break", domain.BoundaryBehavior},
		{"i need some time", domain.BoundaryBehavior},
		{"not right now", domain.BoundaryBehavior},
		{"go away", domain.BoundaryBehavior},
		{"shut up", domain.BoundaryBehavior},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			btype, value, ok := DetectBoundary(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.btype, btype)
			assert.Equal(t, domain.ValueReduceMessages, value)
		})
	}
}

func TestDetectBoundary_Topic(t *testing.T) {
	tests := []struct {
		text  string
		topic string
	}{
		{"stop asking about my job", "my job"},
		{"stop asking me about my job", "my job"},
		{"please stop asking about my ex", "my ex"},
		{"don't mention my diet anymore", "my diet"},
		{"let's not talk about politics", "politics"},
		{"can we not discuss work stuff please", "work stuff"},
		{"enough about the wedding", "wedding"},
		{"i don't want to talk about my family", "my family"},
		{"stop bringing up my breakup!!", "my breakup"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			btype, value, ok := DetectBoundary(tt.text)
			require.True(t, ok)
			assert.Equal(t, domain.BoundaryTopic, btype)
			assert.Equal(t, tt.topic, value)
		})
	}
}

func TestDetectBoundary_NoMatch(t *testing.T) {
	tests := []string{
		"",
		"how was your day?",
		"i love talking to you",
		"tell me about your day",
		"don't talk about it", // captured topic too generic to keep
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, _, ok := DetectBoundary(text)
			assert.False(t, ok)
		})
	}
}

func TestDetectBoundary_Precedence(t *testing.T) {
	// a phrase hitting both timing and topic families resolves as timing
	btype, value, ok := DetectBoundary("please no more morning messages, and stop asking about work")
	require.True(t, ok)
	assert.Equal(t, domain.BoundaryTiming, btype)
	assert.Equal(t, domain.ValueNoMorningMessages, value)

	// space beats topic
	btype, value, ok = DetectBoundary("leave me alone and stop talking about my job")
	require.True(t, ok)
	assert.Equal(t, domain.BoundaryBehavior, btype)
	assert.Equal(t, domain.ValueReduceMessages, value)
}

func TestDetectRetraction(t *testing.T) {
	positive := []string{
		"i'm back",
		"im back!",
		"ok i'm good now",
		"nevermind",
		"nvm",
		"i'm sorry",
		"sorry about yesterday",
		"missed you",
		"miss you",
		"hey again",
		"i'm here",
		"ready",
	}
	for _, text := range positive {
		t.Run(text, func(t *testing.T) {
			assert.True(t, DetectRetraction(text))
		})
	}

	negative := []string{
		"",
		"leave me alone",
		"what's up",
		"tell me a story",
	}
	for _, text := range negative {
		t.Run("no/"+text, func(t *testing.T) {
			assert.False(t, DetectRetraction(text))
		})
	}
}

func TestCleanTopic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my job", "my job"},
		{"my job anymore", "my job"},
		{"my job please", "my job"},
		{"my job!!!", "my job"},
		{"my job...", "my job"},
		{"  My Job  ", "my job"},
		{"it", ""},
		{"that", ""},
		{"this", ""},
		{"them", ""},
		{"thing", ""},
		{"x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanTopic(tt.in))
		})
	}
}
