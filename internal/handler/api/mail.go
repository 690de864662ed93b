package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	reqdto "backroom-api/internal/handler/dto/request"
	resdto "backroom-api/internal/handler/dto/response"
	"backroom-api/internal/handler/httperr"
	"backroom-api/internal/pkg/config"
	"backroom-api/internal/usecase/commands"
)

type MailHandler struct {
	cmds commands.MailCommands
	cfg  config.AppConfig
}

func NewMailHandler(cmds commands.MailCommands, cfg config.Config) *MailHandler {
	return &MailHandler{cmds: cmds, cfg: cfg.App}
}

func (h *MailHandler) SendEmail(c *gin.Context) {
	var req reqdto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", h.details(err))
		return
	}

	result, err := h.cmds.SendEmail(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, commands.ErrMissingEmailFields) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields: to, subject, content", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send email", h.details(err))
		return
	}

	c.JSON(http.StatusOK, resdto.FromSendEmailResult(result))
}

func (h *MailHandler) SendBulkEmail(c *gin.Context) {
	var req reqdto.BulkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", h.details(err))
		return
	}

	result, err := h.cmds.SendBulkEmail(c.Request.Context(), req.ToInputs())
	if err != nil {
		if errors.Is(err, commands.ErrEmptyBatch) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "emails array is required", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process bulk email request", h.details(err))
		return
	}

	c.JSON(http.StatusOK, resdto.FromBulkResult(result))
}

// details leaks the underlying error only in development.
func (h *MailHandler) details(err error) any {
	if h.cfg.IsDevelopment() && err != nil {
		return err.Error()
	}
	return nil
}
