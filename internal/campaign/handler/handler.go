package handler

import (
	"net/http"
	"net/mail"
	"strings"
	"zatch-server/internal/apierrors"
	"zatch-server/internal/campaign/processor"
	"zatch-server/internal/observability"
	"zatch-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Screenshot uploads are capped well above any phone screenshot size.
const maxScreenshotBytes = 10 << 20 // 10MB

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// normalizeEmail lowercases and trims an email address
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePhone keeps digits and a leading plus so formatting differences
// can't bypass the uniqueness check
func normalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HandleSignup handles POST /campaign/signup
func (h *Handler) HandleSignup(c *gin.Context) {
	ctx := c.Request.Context()

	email := normalizeEmail(c.PostForm("email"))
	if email == "" {
		apierrors.BadRequest(c, "MISSING_EMAIL", "email is required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		apierrors.BadRequest(c, "INVALID_EMAIL", "email is not a valid address")
		return
	}

	phone := normalizePhone(c.PostForm("phone"))
	if len(phone) < 7 {
		apierrors.BadRequest(c, "INVALID_PHONE", "phone is required and must be a valid number")
		return
	}

	var referralCode *string
	if raw := strings.TrimSpace(c.PostForm("referralCode")); raw != "" {
		code := strings.ToUpper(raw)
		referralCode = &code
	}

	fileHeader, err := c.FormFile("screenshot")
	if err != nil {
		apierrors.BadRequest(c, "MISSING_SCREENSHOT", "screenshot is required")
		return
	}
	if fileHeader.Size > maxScreenshotBytes {
		apierrors.BadRequest(c, "SCREENSHOT_TOO_LARGE", "screenshot must be under 10MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error(ctx, "failed to open uploaded screenshot", err)
		apierrors.InternalError(c, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		apierrors.BadRequest(c, "INVALID_SCREENSHOT", "screenshot must be an image")
		return
	}

	resp, err := h.processor.Signup(ctx, processor.SignupRequest{
		Email:        email,
		Phone:        phone,
		ReferralCode: referralCode,
		Screenshot: processor.Screenshot{
			FileName:    fileHeader.Filename,
			ContentType: contentType,
			Data:        file,
		},
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp.Participant)
}

// ShareRequest represents the HTTP request for claiming a share boost
type ShareRequest struct {
	ParticipantID string `json:"participantId" binding:"required"`
	Platform      string `json:"platform" binding:"required"`
}

// HandleShare handles POST /campaign/share
func (h *Handler) HandleShare(c *gin.Context) {
	ctx := c.Request.Context()

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind share request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", "participantId and platform are required")
		return
	}

	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_PARTICIPANT_ID", "participantId must be a valid UUID")
		return
	}

	platform := store.SharePlatform(strings.ToLower(strings.TrimSpace(req.Platform)))

	resp, err := h.processor.ClaimShare(ctx, participantID, platform)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp.Participant)
}

// HandleGetParticipant handles GET /campaign/participant/:id
func (h *Handler) HandleGetParticipant(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_PARTICIPANT_ID", "id must be a valid UUID")
		return
	}

	state, err := h.processor.GetParticipant(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}
