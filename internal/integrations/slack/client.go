package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для отправки уведомлений в Slack incoming webhooks
// URL вебхука у каждого сотрудника свой и хранится в его записи
type Client struct {
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр Slack-клиента
func NewClient(timeout time.Duration, log Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// message формат payload для incoming webhook
type message struct {
	Text string `json:"text"`
}

// Notify отправляет текстовое сообщение на указанный webhook
func (c *Client) Notify(ctx context.Context, webhookURL string, text string) error {
	payload, err := json.Marshal(message{Text: text})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	return nil
}

// NotifyWithGracefulDegradation отправляет уведомление, не считая
// недоступность вебхука ошибкой бизнес-операции
// Бронирование к этому моменту уже создано, уведомление - best effort
func (c *Client) NotifyWithGracefulDegradation(ctx context.Context, webhookURL string, text string) error {
	if err := c.Notify(ctx, webhookURL, text); err != nil {
		c.log.Error("Slack webhook unavailable, applying graceful degradation: %v", err)
		return fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	return nil
}
