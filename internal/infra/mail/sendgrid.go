package mail

import (
	"context"
	"fmt"
	"strings"

	"backroom-api/internal/pkg/config"
	"backroom-api/internal/pkg/errs"

	"github.com/sendgrid/sendgrid-go"
	sghelpers "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridSender struct {
	client *sendgrid.Client
	cfg    config.MailConfig
}

func NewSendGridSender(cfg config.MailConfig) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		cfg:    cfg,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) (string, error) {
	replyToEmail := msg.ReplyToEmail
	if replyToEmail == "" {
		replyToEmail = s.cfg.ReplyToEmail
	}
	replyToName := msg.ReplyToName
	if replyToName == "" {
		replyToName = s.cfg.FromName
	}

	m := sghelpers.NewV3Mail()
	m.SetFrom(sghelpers.NewEmail(s.cfg.FromName, s.cfg.FromEmail))
	m.SetReplyTo(sghelpers.NewEmail(replyToName, replyToEmail))
	m.Subject = msg.Subject

	p := sghelpers.NewPersonalization()
	p.AddTos(sghelpers.NewEmail(msg.ToName, msg.To))
	m.AddPersonalizations(p)

	m.AddContent(sghelpers.NewContent("text/plain", msg.Content))
	m.AddContent(sghelpers.NewContent("text/html", strings.ReplaceAll(msg.Content, "\n", "<br>")))

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return "", errs.Wrap(err, "sendgrid send failed")
	}
	if resp.StatusCode >= 400 {
		return "", errs.New(fmt.Sprintf("sendgrid rejected send: status %d: %s", resp.StatusCode, resp.Body))
	}

	messageID := firstHeader(resp.Headers, "X-Message-Id")
	if messageID == "" {
		messageID = "unknown"
	}
	return messageID, nil
}

func firstHeader(headers map[string][]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) && len(v) > 0 {
			return v[0]
		}
	}
	return ""
}
