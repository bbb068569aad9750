package notify

import "context"

const (
	KindContact = "contact"
	KindBooking = "booking"
)

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Message is a channel-agnostic notification. Discord renders Fields as embed
// fields, email as a table, and the form relay ignores the rendering entirely
// and forwards Raw.
type Message struct {
	Kind    string
	Subject string
	Fields  []Field
	Body    string
	Raw     any
}

// Channel delivers a Message to one outbound side-channel. Implementations
// must treat delivery as best-effort; the dispatcher logs and drops errors.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}
