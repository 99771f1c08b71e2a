// Package telegram is the thin Bot API transport: a long-poll client and
// the update loop that feeds the consultation service.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.telegram.org"

// Client calls the Bot API over HTTP.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient returns a Bot API client. The HTTP timeout leaves headroom
// above the long-poll window.
func NewClient(token, baseURL string, pollTimeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		token:   token,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: pollTimeout + 10*time.Second,
		},
		logger: logger,
	}
}

// GetUpdates long-polls for new updates past offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	result, err := c.call(ctx, "getUpdates", getUpdatesRequest{
		Offset:  offset,
		Timeout: int(timeout.Seconds()),
	})
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, fmt.Errorf("telegram: decode updates: %w", err)
	}
	return updates, nil
}

// SendMessage delivers text to a chat. A non-empty choices slice becomes
// a one-time reply keyboard, one option per row; otherwise any previous
// keyboard is removed.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, choices []string) error {
	req := sendMessageRequest{ChatID: chatID, Text: text}
	if len(choices) > 0 {
		keyboard := make([][]KeyboardButton, 0, len(choices))
		for _, choice := range choices {
			keyboard = append(keyboard, []KeyboardButton{{Text: choice}})
		}
		req.ReplyMarkup = ReplyKeyboardMarkup{
			Keyboard:        keyboard,
			ResizeKeyboard:  true,
			OneTimeKeyboard: true,
		}
	} else {
		req.ReplyMarkup = ReplyKeyboardRemove{RemoveKeyboard: true}
	}

	_, err := c.call(ctx, "sendMessage", req)
	return err
}

func (c *Client) call(ctx context.Context, method string, body interface{}) (json.RawMessage, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("telegram: decode %s response: %w", method, err)
	}
	if !parsed.OK {
		return nil, fmt.Errorf("telegram: %s failed: %s", method, parsed.Description)
	}
	return parsed.Result, nil
}
