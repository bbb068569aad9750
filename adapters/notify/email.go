package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailChannel struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewEmailChannel(user, pass, to string) *EmailChannel {
	return &EmailChannel{
		dialer: gomail.NewDialer("smtp.gmail.com", 587, user, pass),
		from:   user,
		to:     to,
	}
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", c.to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", renderEmailBody(msg))

	done := make(chan error, 1)
	go func() { done <- c.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func renderEmailBody(msg Message) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; padding: 20px; background-color: #020617; color: white;">`)
	b.WriteString(`<h2 style="color: #22d3ee; border-bottom: 2px solid #22d3ee; padding-bottom: 10px;">`)
	b.WriteString(html.EscapeString(msg.Subject))
	b.WriteString(`</h2><table style="width: 100%; color: #cbd5e1; font-size: 14px;">`)

	for _, f := range msg.Fields {
		value := f.Value
		if value == "" {
			value = "N/A"
		}
		fmt.Fprintf(&b, `<tr><td style="padding: 4px 0; width: 40%%;"><strong>%s:</strong></td><td>%s</td></tr>`,
			html.EscapeString(f.Name), html.EscapeString(value))
	}
	b.WriteString(`</table>`)

	if msg.Body != "" {
		b.WriteString(`<div style="background-color: #0a1128; padding: 15px; border-radius: 8px; margin-top: 20px;">`)
		b.WriteString(`<p style="white-space: pre-wrap;">`)
		b.WriteString(html.EscapeString(msg.Body))
		b.WriteString(`</p></div>`)
	}

	b.WriteString(`<p style="margin-top: 30px; color: #475569; font-size: 12px; font-style: italic;">System Status: Operational</p></div>`)
	return b.String()
}
