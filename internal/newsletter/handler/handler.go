package handler

import (
	"net/http"
	"net/mail"
	"strings"
	"zatch-server/internal/apierrors"
	"zatch-server/internal/newsletter/processor"
	"zatch-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.NewsletterProcessor
	logger    *observability.Logger
}

func New(processor processor.NewsletterProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SubscribeRequest represents the HTTP request for a newsletter signup
type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// HandleSubscribe handles POST /api/subscribe
func (h *Handler) HandleSubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind subscribe request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", "email is required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		apierrors.BadRequest(c, "INVALID_EMAIL", "email is not a valid address")
		return
	}

	subscriber, err := h.processor.Subscribe(ctx, email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscriber)
}
