// Package mail wraps the transactional-email provider. The relay endpoints
// and the enquiry flows send through the Sender interface; tests inject a
// stub that records calls without hitting the network.
package mail

import "context"

// Message is one outbound email. From/reply-to fall back to the configured
// defaults when empty.
type Message struct {
	To           string
	ToName       string
	Subject      string
	Content      string
	ReplyToEmail string
	ReplyToName  string
}

type Sender interface {
	// Send delivers one message and returns the provider-issued message id.
	Send(ctx context.Context, msg Message) (string, error)
}
