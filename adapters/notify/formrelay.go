package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-retryablehttp"
)

// FormRelayChannel forwards the raw submission to a hosted form backend
// (Formspree in production). It cares only about Message.Raw.
type FormRelayChannel struct {
	relayURL string
	client   *retryablehttp.Client
}

func NewFormRelayChannel(relayURL string) *FormRelayChannel {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil
	return &FormRelayChannel{relayURL: relayURL, client: client}
}

func (c *FormRelayChannel) Name() string { return "form-relay" }

func (c *FormRelayChannel) Send(ctx context.Context, msg Message) error {
	raw, err := json.Marshal(msg.Raw)
	if err != nil {
		return fmt.Errorf("marshal form relay payload: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, "POST", c.relayURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build form relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post form relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("form relay returned status %d", resp.StatusCode)
	}
	return nil
}
