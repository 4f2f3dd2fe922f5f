package domain

// PromptContext is everything the generation capability needs to produce one
// message. Built by the persona context builder, consumed by the LLM client.
type PromptContext struct {
	Kind        TurnKind
	UserMessage string // inbound text for reactive, empty for proactive

	// persona identity
	BotName      string
	Archetype    string
	Instructions string
	Attachment   AttachmentStyle

	// user context
	UserName   string
	LocalTime  string // formatted, e.g. "09:45 PM"
	TimeOfDay  string // morning, afternoon, evening, late_night
	RecentMood Mood

	// conversation context
	History          []HistoryLine // oldest first
	RecentBotLines   []string      // last bot messages, for anti-repetition
	PendingQuestions []string
	Boundaries       []string // "type: value" strings, override all else

	// proactive context
	ProactiveCountToday int
	AttachmentHint      string // style-specific tone hint, anxious/avoidant only
	StarterTopic        string // optional conversation starter headline + snippet

	// overrides
	SystemHint string // boundary event or corrective regeneration hint
}

// HistoryLine is one prior turn rendered for the prompt
type HistoryLine struct {
	Role    TurnRole
	Content string
}
