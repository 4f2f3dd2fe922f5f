package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/companion/pkg/domain"
	"github.com/umputun/companion/pkg/persona"
	"github.com/umputun/companion/pkg/repository"
)

//go:generate moq -out mocks/processor.go -pkg mocks -skip-ensure -fmt goimports . Processor
//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore

// Processor turns an inbound user message into the companion's reply
type Processor interface {
	ProcessMessage(ctx context.Context, user *domain.User, raw string) (string, error)
}

// UserStore resolves and registers users by their telegram chat
type UserStore interface {
	GetByTelegram(ctx context.Context, telegramID int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

// Listener runs the telegram long-poll loop and routes each inbound message
// through the reactive pipeline
type Listener struct {
	client    *Client
	users     UserStore
	processor Processor
}

// ListenerParams holds Listener dependencies
type ListenerParams struct {
	Client    *Client
	Users     UserStore
	Processor Processor
}

// NewListener creates a telegram listener
func NewListener(params ListenerParams) *Listener {
	return &Listener{client: params.Client, users: params.Users, processor: params.Processor}
}

// Run polls for updates until the context is canceled
func (l *Listener) Run(ctx context.Context) error {
	lgr.Printf("[INFO] telegram listener started")

	var offset int64
	for {
		updates, err := l.client.getUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				lgr.Printf("[INFO] telegram listener stopped")
				return ctx.Err()
			}
			lgr.Printf("[WARN] telegram getUpdates failed: %v", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			l.handleUpdate(ctx, u)
		}
	}
}

// handleUpdate processes one update, replies go back to the same chat
func (l *Listener) handleUpdate(ctx context.Context, u update) {
	msg := u.Message
	if msg == nil || strings.TrimSpace(msg.Text) == "" {
		return
	}
	if msg.From != nil && msg.From.IsBot {
		return
	}
	// the companion is one on one, ignore groups and channels
	if msg.Chat.Type != "" && msg.Chat.Type != "private" {
		lgr.Printf("[DEBUG] ignoring message from %s chat %d", msg.Chat.Type, msg.Chat.ID)
		return
	}

	reply, err := l.replyTo(ctx, msg)
	if err != nil {
		// the pipeline degrades to a fallback phrase on failure, deliver
		// whatever text came back and only drop truly empty replies
		lgr.Printf("[ERROR] failed to handle message from chat %d: %v", msg.Chat.ID, err)
	}
	if reply == "" {
		return
	}

	if err := l.client.SendMessage(ctx, msg.Chat.ID, reply); err != nil {
		lgr.Printf("[WARN] failed to send reply to chat %d: %v", msg.Chat.ID, err)
	}
}

func (l *Listener) replyTo(ctx context.Context, msg *message) (string, error) {
	user, err := l.users.GetByTelegram(ctx, msg.Chat.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return l.welcome(ctx, msg)
	}
	if err != nil {
		return "", fmt.Errorf("lookup user for chat %d: %w", msg.Chat.ID, err)
	}

	if strings.TrimSpace(msg.Text) == "/start" {
		return persona.FirstMessage(user.Archetype, user.Name), nil
	}
	return l.processor.ProcessMessage(ctx, user, msg.Text)
}

// welcome registers a fresh user for the chat and greets them in persona
func (l *Listener) welcome(ctx context.Context, msg *message) (string, error) {
	name := ""
	if msg.From != nil {
		name = strings.TrimSpace(msg.From.FirstName)
	}

	user := &domain.User{
		TelegramID:       msg.Chat.ID,
		Name:             name,
		Archetype:        persona.DefaultArchetype,
		BotName:          "Dot",
		AttachmentStyle:  domain.AttachmentSecure,
		Tier:             domain.TierFree,
		Timezone:         "UTC",
		ProactiveEnabled: true,
	}
	if err := l.users.Create(ctx, user); err != nil {
		return "", fmt.Errorf("register user for chat %d: %w", msg.Chat.ID, err)
	}

	lgr.Printf("[INFO] registered user %d for telegram chat %d", user.ID, msg.Chat.ID)
	return persona.FirstMessage(user.Archetype, user.Name), nil
}
