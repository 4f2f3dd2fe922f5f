package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/companion/pkg/config"
	"github.com/umputun/companion/pkg/domain"
)

// historyWindow caps how many prior turns go into the chat transcript
const historyWindow = 6

// Generator produces persona messages via an OpenAI-compatible chat API
type Generator struct {
	client *openai.Client
	config config.LLMConfig
}

// NewGenerator creates an LLM generator
func NewGenerator(cfg config.LLMConfig) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Generate produces one persona message for the prompt context
func (g *Generator) Generate(ctx context.Context, pc *domain.PromptContext) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:            g.config.Model,
		Temperature:      float32(g.config.Temperature),
		MaxTokens:        g.config.MaxTokens,
		TopP:             float32(g.config.TopP),
		FrequencyPenalty: float32(g.config.FrequencyPenalty),
		PresencePenalty:  float32(g.config.PresencePenalty),
		Messages:         g.buildMessages(pc),
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	return cleanResponse(resp.Choices[0].Message.Content), nil
}

// buildMessages assembles the chat transcript: system prompt, recent turns,
// then the inbound message for reactive or a nudge for proactive
func (g *Generator) buildMessages(pc *domain.PromptContext) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, historyWindow+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: buildSystemPrompt(pc),
	})

	history := pc.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	// the inbound message is already persisted, so it shows up as the last
	// history line in truncated form; drop it and send the full text below
	if pc.Kind == domain.KindReactive && pc.UserMessage != "" &&
		len(history) > 0 && history[len(history)-1].Role == domain.RoleUser {
		history = history[:len(history)-1]
	}
	for _, line := range history {
		role := openai.ChatMessageRoleUser
		if line.Role == domain.RoleBot {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: line.Content})
	}

	switch {
	case pc.Kind == domain.KindReactive && pc.UserMessage != "":
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: pc.UserMessage,
		})
	case pc.Kind == domain.KindProactive:
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf("It's %s. Say something to %s as their companion.", pc.TimeOfDay, pc.UserName),
		})
	}

	return messages
}

// buildSystemPrompt renders the persona, context and boundary sections
func buildSystemPrompt(pc *domain.PromptContext) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are %s, %s's companion.\n\n", pc.BotName, pc.UserName)

	fmt.Fprintf(&sb, "ARCHETYPE: %s\n%s\n\n", pc.Archetype, pc.Instructions)

	fmt.Fprintf(&sb, "ATTACHMENT STYLE: %s\n", pc.Attachment)
	sb.WriteString("- secure: comfortable with closeness, consistent responses\n")
	sb.WriteString("- anxious: wants reassurance, replies fast, gets worried\n")
	sb.WriteString("- avoidant: values independence, pulls back, hard to reach\n\n")

	sb.WriteString("USER CONTEXT\n")
	fmt.Fprintf(&sb, "Name: %s\n", pc.UserName)
	fmt.Fprintf(&sb, "Local time: %s (%s)\n", pc.LocalTime, pc.TimeOfDay)
	if pc.RecentMood != "" && pc.RecentMood != domain.MoodNeutral {
		fmt.Fprintf(&sb, "Recent mood: %s\n", pc.RecentMood)
	}
	sb.WriteString("\n")

	sb.WriteString("BOUNDARIES (OVERRIDE ALL ELSE)\n")
	if len(pc.Boundaries) > 0 {
		sb.WriteString("The user has set hard boundaries. They are non-negotiable and take priority over personality.\n")
		sb.WriteString("Your response will be checked for violations, an offending reply is rejected and regenerated.\n")
		sb.WriteString("Current boundaries:\n")
		for _, b := range pc.Boundaries {
			fmt.Fprintf(&sb, "- %s\n", b)
		}
		sb.WriteString("Never mention forbidden topics. If unsure whether something violates a boundary, avoid it entirely.\n")
		sb.WriteString("If the user tests a boundary, stay true to it. Their stated boundaries outrank your personality.\n\n")
	} else {
		sb.WriteString("No explicit boundaries set. Be respectful of their autonomy.\n\n")
	}

	if len(pc.RecentBotLines) > 0 {
		sb.WriteString("You said these recently, do not repeat yourself:\n")
		for _, line := range pc.RecentBotLines {
			fmt.Fprintf(&sb, "- %s\n", line)
		}
		sb.WriteString("\n")
	}

	if len(pc.PendingQuestions) > 0 {
		sb.WriteString("You already asked about these and got no answer yet, do not pile on more questions:\n")
		for _, topic := range pc.PendingQuestions {
			fmt.Fprintf(&sb, "- %s\n", topic)
		}
		sb.WriteString("\n")
	}

	if pc.Kind == domain.KindProactive {
		sb.WriteString("MESSAGE TYPE: PROACTIVE\n")
		sb.WriteString("You are reaching out first. Keep it 1-2 sentences max and match the time of day energy.\n")
		if pc.AttachmentHint != "" {
			sb.WriteString(pc.AttachmentHint + "\n")
		}
		if pc.StarterTopic != "" {
			fmt.Fprintf(&sb, "If it fits naturally, you could bring this up: %s\n", pc.StarterTopic)
		}
		sb.WriteString("If reaching out right now does not feel right, reply with exactly [no_send].\n\n")
	} else {
		sb.WriteString("MESSAGE TYPE: REACTIVE\n")
		sb.WriteString("Respond naturally to what they said. Stay in character unless safety requires dropping it.\n\n")
	}

	if pc.SystemHint != "" {
		fmt.Fprintf(&sb, "SYSTEM HINT:\n%s\n\n", pc.SystemHint)
	}

	sb.WriteString(promptGuidelines)
	return sb.String()
}

// promptGuidelines is the static tail of every system prompt
const promptGuidelines = `SAFETY RULES
Any performative edge in the persona stays performative, the care underneath is real.
Drop the persona immediately on genuine distress: self-harm language, "I'm really not okay", "this is real".
When dropping the persona be genuinely warm, no roleplay, and point to real help:
988 Suicide & Crisis Lifeline (US), Crisis Text Line (text HOME to 741741), findahelpline.com.

RESPONSE GUIDELINES
1. Stay in character unless safety requires otherwise
2. Be concise, 1-3 sentences is typical
3. Never break immersion with meta-commentary
4. Match their energy level
5. If unsure, ask a question rather than assume`

// cleanResponse strips markdown artifacts and wrapping quotes from the raw
// completion. No-send markers are kept, the caller decides what they mean.
func cleanResponse(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "```", "")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = text[1 : len(text)-1]
	}
	return strings.TrimSpace(text)
}
