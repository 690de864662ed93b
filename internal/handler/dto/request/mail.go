package request

import (
	"backroom-api/internal/usecase/commands"
)

// Field presence is validated in the command layer so the relay can return
// the exact legacy error string; no binding tags here.
type SendEmailRequest struct {
	To           string `json:"to"`
	Subject      string `json:"subject"`
	Content      string `json:"content"`
	CustomerName string `json:"customerName"`
	ReplyToEmail string `json:"replyToEmail"`
	ReplyToName  string `json:"replyToName"`
}

func (r *SendEmailRequest) ToInput() commands.SendEmailInput {
	return commands.SendEmailInput{
		To:           r.To,
		Subject:      r.Subject,
		Content:      r.Content,
		CustomerName: r.CustomerName,
		ReplyToEmail: r.ReplyToEmail,
		ReplyToName:  r.ReplyToName,
	}
}

type BulkEmailRequest struct {
	Emails []SendEmailRequest `json:"emails"`
}

func (r *BulkEmailRequest) ToInputs() []commands.SendEmailInput {
	inputs := make([]commands.SendEmailInput, len(r.Emails))
	for i, e := range r.Emails {
		inputs[i] = e.ToInput()
	}
	return inputs
}
