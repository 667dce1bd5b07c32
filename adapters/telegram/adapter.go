// Package telegram provides the bot-API adapter the contact relay
// forwards leads through. Credentials come from the process environment,
// never from a request.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/MaRkS1234567/MySite-web/core/lead"
	"github.com/MaRkS1234567/MySite-web/internal/errors"
	"github.com/MaRkS1234567/MySite-web/internal/logging"
)

// Config configures the bot client
type Config struct {
	// Token is the bot token
	Token string `json:"-"`

	// ChatID is the destination chat
	ChatID string `json:"-"`

	// Endpoint is the bot API base URL
	Endpoint string `json:"endpoint"`

	// Timeout for one send
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Endpoint: "https://api.telegram.org",
		Timeout:  10 * time.Second,
	}
}

// Client is the bot-API client. It implements lead.Relay.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// New creates a new bot client
func New(config *Config) *Client {
	if config.Endpoint == "" {
		config.Endpoint = DefaultConfig().Endpoint
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// sendMessageRequest is the bot API payload
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send formats the lead with the template for its kind and posts it to
// the bot API. One attempt per call; retrying is the user's decision.
func (c *Client) Send(ctx context.Context, m lead.Message) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    c.config.ChatID,
		Text:      formatMessage(m),
		ParseMode: "Markdown",
	})
	if err != nil {
		return errors.Internal("failed to encode bot message", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.config.Endpoint, c.config.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Internal("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Transport("bot API unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Log the provider response for the operator; it is never
		// forwarded to the browser.
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logging.Error("bot API error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		return errors.Upstream(fmt.Sprintf("bot API returned %d", resp.StatusCode), nil)
	}

	return nil
}

// Message templates, one per lead kind.

func formatMessage(m lead.Message) string {
	if m.Kind == lead.KindTutor {
		return formatTutorMessage(m)
	}
	return formatDevMessage(m)
}

func formatTutorMessage(m lead.Message) string {
	return strings.Join([]string{
		"🔔 *Новая заявка — Репетитор*",
		"📋 Формат: " + m.Format,
		"👤 Имя: " + m.Name,
		"📞 Контакт: " + m.Contact,
		"📝 Ситуация: " + m.Description,
	}, "\n")
}

func formatDevMessage(m lead.Message) string {
	return strings.Join([]string{
		"🔔 *Новая заявка — Разработка*",
		"📋 Формат: " + m.Format,
		"👤 Имя: " + m.Name,
		"📞 Контакт: " + m.Contact,
		"📝 Описание: " + m.Description,
	}, "\n")
}
