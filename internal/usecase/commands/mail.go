package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"backroom-api/internal/infra/mail"
	"backroom-api/internal/pkg/clock"
	"backroom-api/internal/pkg/config"
	"backroom-api/internal/pkg/errs"
	"backroom-api/internal/pkg/reference"
)

var (
	ErrMissingEmailFields = errs.New("Missing required fields: to, subject, content")
	ErrEmptyBatch         = errs.New("emails array is required")
)

type SendEmailInput struct {
	To           string
	Subject      string
	Content      string
	CustomerName string
	ReplyToEmail string
	ReplyToName  string
}

type SendEmailResult struct {
	MessageID string
	MockMode  bool
}

type BulkItemResult struct {
	To        string
	Success   bool
	MessageID string
	Error     string
}

type BulkSummary struct {
	Total  int
	Sent   int
	Failed int
}

type SendBulkResult struct {
	Results []BulkItemResult
	Summary BulkSummary
}

type MailCommands interface {
	// SendEmail forwards one message to the provider. Provider failures are
	// absorbed: the caller gets a synthetic success in mock mode so an
	// enquiry conversion never blocks on a misconfigured sender identity.
	SendEmail(ctx context.Context, in SendEmailInput) (*SendEmailResult, error)
	// SendBulkEmail processes items independently, best effort. Provider
	// failures are recorded per item; there is no mock fallback here.
	SendBulkEmail(ctx context.Context, items []SendEmailInput) (*SendBulkResult, error)
}

type mailCommandsImpl struct {
	sender mail.Sender
	clock  clock.Clock
	cfg    config.MailConfig
}

func NewMailCommands(sender mail.Sender, clk clock.Clock, cfg config.Config) MailCommands {
	return &mailCommandsImpl{
		sender: sender,
		clock:  clk,
		cfg:    cfg.Mail,
	}
}

func (m *mailCommandsImpl) SendEmail(ctx context.Context, in SendEmailInput) (*SendEmailResult, error) {
	if in.To == "" || in.Subject == "" || in.Content == "" {
		return nil, ErrMissingEmailFields
	}

	messageID, err := m.sender.Send(ctx, toMessage(in))
	if err == nil {
		slog.Info("email sent",
			"to", in.To,
			"subject", in.Subject,
			"message_id", messageID,
			"timestamp", m.clock.Now().Format(time.RFC3339),
		)
		return &SendEmailResult{MessageID: messageID}, nil
	}

	// Mock fallback: absorb the provider failure so the caller's flow keeps
	// moving. The WARN log with mock_mode=true is the operator signal.
	slog.Warn("provider rejected send, using mock mode", "to", in.To, "error", err.Error())

	select {
	case <-time.After(m.cfg.MockDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	mockID := reference.MockMessageID(m.clock.Now())
	slog.Info("email sent in mock mode",
		"to", in.To,
		"subject", in.Subject,
		"message_id", mockID,
		"timestamp", m.clock.Now().Format(time.RFC3339),
		"mock_mode", true,
		"note", "provider sender identity not verified - using mock mode",
	)

	return &SendEmailResult{MessageID: mockID, MockMode: true}, nil
}

func (m *mailCommandsImpl) SendBulkEmail(ctx context.Context, items []SendEmailInput) (*SendBulkResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}

	results := make([]BulkItemResult, 0, len(items))
	for _, item := range items {
		if item.To == "" || item.Subject == "" || item.Content == "" {
			results = append(results, BulkItemResult{
				To:    item.To,
				Error: "missing required fields: to, subject, content",
			})
			continue
		}

		messageID, err := m.sender.Send(ctx, toMessage(item))
		if err != nil {
			results = append(results, BulkItemResult{To: item.To, Error: err.Error()})
			continue
		}
		results = append(results, BulkItemResult{To: item.To, Success: true, MessageID: messageID})
	}

	summary := BulkSummary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			summary.Sent++
		} else {
			summary.Failed++
		}
	}

	slog.Info(fmt.Sprintf("bulk email completed: %d sent, %d failed", summary.Sent, summary.Failed))

	return &SendBulkResult{Results: results, Summary: summary}, nil
}

func toMessage(in SendEmailInput) mail.Message {
	return mail.Message{
		To:           in.To,
		ToName:       in.CustomerName,
		Subject:      in.Subject,
		Content:      in.Content,
		ReplyToEmail: in.ReplyToEmail,
		ReplyToName:  in.ReplyToName,
	}
}
