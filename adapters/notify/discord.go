package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordEmbed struct {
	Title     string              `json:"title"`
	Color     int                 `json:"color"`
	Fields    []discordEmbedField `json:"fields"`
	Timestamp string              `json:"timestamp"`
	Footer    struct {
		Text string `json:"text"`
	} `json:"footer"`
}

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type DiscordChannel struct {
	webhookURL string
	client     *retryablehttp.Client
}

func NewDiscordChannel(webhookURL string) *DiscordChannel {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil
	return &DiscordChannel{webhookURL: webhookURL, client: client}
}

func (c *DiscordChannel) Name() string { return "discord" }

func (c *DiscordChannel) Send(ctx context.Context, msg Message) error {
	embed := discordEmbed{
		Title:     msg.Subject,
		Color:     3447003,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	embed.Footer.Text = "Portfolio Ops Center // Transmission Received"

	for _, f := range msg.Fields {
		value := f.Value
		if value == "" {
			value = "N/A"
		}
		embed.Fields = append(embed.Fields, discordEmbedField{Name: f.Name, Value: value, Inline: f.Inline})
	}
	if msg.Body != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{Name: "Mission Brief", Value: msg.Body})
	}

	raw, err := json.Marshal(discordPayload{Embeds: []discordEmbed{embed}})
	if err != nil {
		return fmt.Errorf("marshal discord payload: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}
	return nil
}
