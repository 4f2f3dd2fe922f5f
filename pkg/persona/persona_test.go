package persona

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/companion/pkg/domain"
)

func TestValid(t *testing.T) {
	for _, a := range Archetypes {
		assert.True(t, Valid(a), "archetype %s should be valid", a)
	}
	assert.False(t, Valid("wizard"))
	assert.False(t, Valid(""))
}

func TestInstructions(t *testing.T) {
	t.Run("known archetype", func(t *testing.T) {
		ins := Instructions("lawyer")
		assert.Contains(t, ins, "Objection")
	})

	t.Run("unknown gets generic voice", func(t *testing.T) {
		ins := Instructions("no-such-archetype")
		assert.NotEmpty(t, ins)
		assert.NotContains(t, ins, "Objection")
	})
}

func TestTemplateFor(t *testing.T) {
	rnd := func() float64 { return 0 } // always pick the first template

	t.Run("golden_retriever has templates for all buckets", func(t *testing.T) {
		for _, bucket := range []domain.TimeBucket{domain.BucketMorning, domain.BucketRandom, domain.BucketEvening} {
			tmpl, ok := TemplateFor("golden_retriever", bucket, rnd)
			require.True(t, ok, "bucket %s", bucket)
			assert.NotEmpty(t, tmpl)
		}
	})

	t.Run("lawyer skips mornings", func(t *testing.T) {
		_, ok := TemplateFor("lawyer", domain.BucketMorning, rnd)
		assert.False(t, ok)
	})

	t.Run("cool_girl skips mornings", func(t *testing.T) {
		_, ok := TemplateFor("cool_girl", domain.BucketMorning, rnd)
		assert.False(t, ok)
	})

	t.Run("unknown archetype has no templates", func(t *testing.T) {
		_, ok := TemplateFor("wizard", domain.BucketEvening, rnd)
		assert.False(t, ok)
	})

	t.Run("rnd selects within the pool", func(t *testing.T) {
		first, ok := TemplateFor("golden_retriever", domain.BucketEvening, func() float64 { return 0 })
		require.True(t, ok)
		last, ok := TemplateFor("golden_retriever", domain.BucketEvening, func() float64 { return 0.999 })
		require.True(t, ok)
		assert.NotEqual(t, first, last)
	})
}

func TestAttachmentHint(t *testing.T) {
	tests := []struct {
		name  string
		style domain.AttachmentStyle
		want  string
	}{
		{"secure has no hint", domain.AttachmentSecure, ""},
		{"anxious admits double texting", domain.AttachmentAnxious, "double text"},
		{"avoidant keeps it casual", domain.AttachmentAvoidant, "casual"},
		{"unknown has no hint", domain.AttachmentStyle("weird"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := AttachmentHint(tt.style)
			if tt.want == "" {
				assert.Empty(t, hint)
				return
			}
			assert.Contains(t, strings.ToLower(hint), tt.want)
		})
	}
}

func TestFallback(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < len(FallbackResponses); i++ {
		r := Fallback(func() float64 { return float64(i) / float64(len(FallbackResponses)) })
		seen[r] = true
	}
	assert.Len(t, seen, len(FallbackResponses), "each slot should be reachable")

	for r := range seen {
		assert.True(t, IsFallback(r), "fallback %q should be recognized", r)
	}
}

func TestIsFallback(t *testing.T) {
	assert.True(t, IsFallback("Hmm, my brain glitched for a second. What were we talking about?"))
	assert.False(t, IsFallback("Sounds like a busy day, tell me more."))
	assert.False(t, IsFallback(""))
}

func TestFirstMessage(t *testing.T) {
	t.Run("includes user name", func(t *testing.T) {
		msg := FirstMessage("lawyer", "Sam")
		assert.Contains(t, msg, "Sam")
	})

	t.Run("unknown archetype uses default", func(t *testing.T) {
		msg := FirstMessage("wizard", "Sam")
		assert.Contains(t, msg, "Sam")
		assert.Equal(t, FirstMessage(DefaultArchetype, "Sam"), msg)
	})
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{17, "afternoon"},
		{18, "evening"},
		{21, "evening"},
		{22, "late_night"},
		{23, "late_night"},
		{0, "late_night"},
		{5, "late_night"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeOfDay(tt.hour), "hour %d", tt.hour)
		})
	}
}

func TestSupportResponse(t *testing.T) {
	assert.Contains(t, SupportResponse, "988")
	assert.Contains(t, SupportResponse, "741741")
	assert.Contains(t, SupportResponse, "findahelpline.com")
}
