package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/umputun/companion/pkg/domain"
)

// Client is a minimal Telegram Bot API client, just the two calls the
// companion needs: sendMessage and getUpdates long-polling.
type Client struct {
	token       string
	apiBase     string
	pollTimeout time.Duration
	client      *http.Client
}

// ClientParams holds Client configuration
type ClientParams struct {
	Token       string
	APIBase     string        // default https://api.telegram.org
	PollTimeout time.Duration // long-poll hold time, default 50s
}

// NewClient creates a telegram client
func NewClient(params ClientParams) *Client {
	if params.APIBase == "" {
		params.APIBase = "https://api.telegram.org"
	}
	if params.PollTimeout == 0 {
		params.PollTimeout = 50 * time.Second
	}

	return &Client{
		token:       params.Token,
		apiBase:     params.APIBase,
		pollTimeout: params.PollTimeout,
		// the client timeout has to outlast the long-poll hold
		client: &http.Client{Timeout: params.PollTimeout + 10*time.Second},
	}
}

type update struct {
	UpdateID int64    `json:"update_id"`
	Message  *message `json:"message"`
}

type message struct {
	MessageID int64   `json:"message_id"`
	From      *sender `json:"from"`
	Chat      chat    `json:"chat"`
	Text      string  `json:"text"`
}

type sender struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

type chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// SendMessage delivers a text message to the chat
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	payload, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("marshal sendMessage: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendMessage"), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	defer resp.Body.Close()

	var ar apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return fmt.Errorf("decode sendMessage response: %w", err)
	}
	if !ar.OK {
		return fmt.Errorf("telegram sendMessage rejected: %s", ar.Description)
	}
	return nil
}

// SendProactive delivers a proactive message to the user's connected chat
func (c *Client) SendProactive(ctx context.Context, user *domain.User, text string) error {
	if user.TelegramID == 0 {
		return fmt.Errorf("user %d has no telegram chat connected", user.ID)
	}
	return c.SendMessage(ctx, user.TelegramID, text)
}

// getUpdates long-polls for new updates starting at the given offset
func (c *Client) getUpdates(ctx context.Context, offset int64) ([]update, error) {
	q := url.Values{}
	q.Set("timeout", strconv.Itoa(int(c.pollTimeout.Seconds())))
	if offset > 0 {
		q.Set("offset", strconv.FormatInt(offset, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.methodURL("getUpdates")+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram getUpdates: %w", err)
	}
	defer resp.Body.Close()

	var ar apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, fmt.Errorf("decode getUpdates response: %w", err)
	}
	if !ar.OK {
		return nil, fmt.Errorf("telegram getUpdates rejected: %s", ar.Description)
	}

	var updates []update
	if err := json.Unmarshal(ar.Result, &updates); err != nil {
		return nil, fmt.Errorf("unmarshal updates: %w", err)
	}
	return updates, nil
}

func (c *Client) methodURL(method string) string {
	return c.apiBase + "/bot" + c.token + "/" + method
}
