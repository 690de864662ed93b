package response

import (
	"fmt"

	"backroom-api/internal/usecase/commands"
)

type SendEmailResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
	MockMode  bool   `json:"mockMode,omitempty"`
}

func FromSendEmailResult(r *commands.SendEmailResult) *SendEmailResponse {
	message := "Email sent successfully"
	if r.MockMode {
		message = "Email sent successfully (mock mode - provider sender not verified)"
	}
	return &SendEmailResponse{
		Success:   true,
		Message:   message,
		MessageID: r.MessageID,
		MockMode:  r.MockMode,
	}
}

type BulkItemResponse struct {
	To        string  `json:"to"`
	Success   bool    `json:"success"`
	MessageID *string `json:"messageId,omitempty"`
	Error     *string `json:"error,omitempty"`
}

type BulkSummaryResponse struct {
	Total  int `json:"total"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

type BulkEmailResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Results []BulkItemResponse  `json:"results"`
	Summary BulkSummaryResponse `json:"summary"`
}

func FromBulkResult(r *commands.SendBulkResult) *BulkEmailResponse {
	results := make([]BulkItemResponse, len(r.Results))
	for i, item := range r.Results {
		res := BulkItemResponse{To: item.To, Success: item.Success}
		if item.Success {
			id := item.MessageID
			res.MessageID = &id
		} else {
			msg := item.Error
			res.Error = &msg
		}
		results[i] = res
	}

	return &BulkEmailResponse{
		Success: true,
		Message: fmt.Sprintf("Bulk email completed: %d sent, %d failed", r.Summary.Sent, r.Summary.Failed),
		Results: results,
		Summary: BulkSummaryResponse{
			Total:  r.Summary.Total,
			Sent:   r.Summary.Sent,
			Failed: r.Summary.Failed,
		},
	}
}
