package handler

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"zatch-server/internal/admin/processor"
	"zatch-server/internal/apierrors"
	"zatch-server/internal/config"
	"zatch-server/internal/observability"
	"zatch-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	processor processor.AdminProcessor
	logger    *observability.Logger
	adminCfg  config.AdminConfig
}

func New(processor processor.AdminProcessor, adminCfg config.AdminConfig, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
		adminCfg:  adminCfg,
	}
}

// BasicAuth guards the admin surface. The configured password is stored as a
// bcrypt hash, never in plaintext.
func (h *Handler) BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			apierrors.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(h.adminCfg.Username)) == 1
		passwordErr := bcrypt.CompareHashAndPassword([]byte(h.adminCfg.PasswordHash), []byte(password))
		if !usernameMatch || passwordErr != nil {
			h.logger.Warn(c.Request.Context(), "rejected admin credentials")
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			apierrors.Unauthorized(c, "invalid credentials")
			c.Abort()
			return
		}

		c.Next()
	}
}

func pageFromQuery(c *gin.Context) processor.Page {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return processor.Page{Limit: limit, Offset: offset}
}

// listResponse is the envelope for all paginated admin listings
type listResponse struct {
	Data  interface{} `json:"data"`
	Total int         `json:"total"`
}

// HandleOverview handles GET /api/admin/overview
func (h *Handler) HandleOverview(c *gin.Context) {
	overview, err := h.processor.GetOverview(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// HandleListParticipants handles GET /api/admin/participants
func (h *Handler) HandleListParticipants(c *gin.Context) {
	participants, total, err := h.processor.ListParticipants(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Data: participants, Total: total})
}

// UpdateParticipantRequest represents an administrative participant edit
type UpdateParticipantRequest struct {
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	CurrentDiscount *int    `json:"current_discount,omitempty"`
	CurrentOrders   *int    `json:"current_orders,omitempty"`
}

// HandleUpdateParticipant handles PATCH /api/admin/participants/:id
func (h *Handler) HandleUpdateParticipant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_ID", "id must be a valid UUID")
		return
	}

	var req UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "INVALID_REQUEST", "invalid request body")
		return
	}

	participant, err := h.processor.UpdateParticipant(c.Request.Context(), id, store.UpdateParticipantParams{
		Email:           req.Email,
		Phone:           req.Phone,
		CurrentDiscount: req.CurrentDiscount,
		CurrentOrders:   req.CurrentOrders,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// HandleDeleteParticipant handles DELETE /api/admin/participants/:id
func (h *Handler) HandleDeleteParticipant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_ID", "id must be a valid UUID")
		return
	}

	if err := h.processor.DeleteParticipant(c.Request.Context(), id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleListReferrals handles GET /api/admin/referrals
func (h *Handler) HandleListReferrals(c *gin.Context) {
	referrals, total, err := h.processor.ListReferrals(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Data: referrals, Total: total})
}

// HandleDeleteReferral handles DELETE /api/admin/referrals/:id
func (h *Handler) HandleDeleteReferral(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_ID", "id must be a valid UUID")
		return
	}

	if err := h.processor.DeleteReferral(c.Request.Context(), id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleListShares handles GET /api/admin/shares
func (h *Handler) HandleListShares(c *gin.Context) {
	shares, total, err := h.processor.ListSocialShares(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Data: shares, Total: total})
}

// HandleDeleteShare handles DELETE /api/admin/shares/:id
func (h *Handler) HandleDeleteShare(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_ID", "id must be a valid UUID")
		return
	}

	if err := h.processor.DeleteSocialShare(c.Request.Context(), id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleListSubscribers handles GET /api/admin/subscribers
func (h *Handler) HandleListSubscribers(c *gin.Context) {
	subscribers, total, err := h.processor.ListSubscribers(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Data: subscribers, Total: total})
}

// HandleDeleteSubscriber handles DELETE /api/admin/subscribers/:id
func (h *Handler) HandleDeleteSubscriber(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_ID", "id must be a valid UUID")
		return
	}

	if err := h.processor.DeleteSubscriber(c.Request.Context(), id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
