package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SlackNotifier posts alerts to a Slack incoming webhook
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
}

// SlackMessage represents a Slack message payload
type SlackMessage struct {
	Text        string            `json:"text"`
	Attachments []SlackAttachment `json:"attachments"`
}

// SlackAttachment carries the audit record as fields
type SlackAttachment struct {
	Color  string       `json:"color"`
	Fields []SlackField `json:"fields"`
	Footer string       `json:"footer"`
	Ts     int64        `json:"ts"`
}

// SlackField is one labelled value of an attachment
type SlackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// NewSlackNotifier creates a notifier for webhookURL
func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSlackMessage builds the webhook payload for an alert
func NewSlackMessage(a Alert) SlackMessage {
	rec := a.Record
	return SlackMessage{
		Text: a.Title(),
		Attachments: []SlackAttachment{{
			Color: "warning",
			Fields: []SlackField{
				{Title: "Usuario", Value: rec.User, Short: true},
				{Title: "Fecha", Value: rec.Timestamp.Format("2006-01-02 15:04:05"), Short: true},
				{Title: "Detalle", Value: rec.Detail},
			},
			Footer: "Auditoría " + rec.ID,
			Ts:     rec.Timestamp.Unix(),
		}},
	}
}

// Send posts the alert, giving up when ctx is done
func (s *SlackNotifier) Send(ctx context.Context, a Alert) error {
	payload, err := json.Marshal(NewSlackMessage(a))
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("slack alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned %d", resp.StatusCode)
	}
	return nil
}
