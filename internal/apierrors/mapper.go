package apierrors

import (
	"errors"

	campaignProcessor "zatch-server/internal/campaign/processor"
	newsletterProcessor "zatch-server/internal/newsletter/processor"
	"zatch-server/internal/store"

	"github.com/gin-gonic/gin"
)

// RespondWithError converts domain errors to the matching HTTP response.
// Unknown errors become a sanitized 500; raw storage messages are never
// relayed to the client.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, campaignProcessor.ErrInvalidReferral):
		BadRequest(c, "INVALID_REFERRAL", "Referral code does not exist")

	case errors.Is(err, campaignProcessor.ErrInvalidPlatform):
		BadRequest(c, "INVALID_PLATFORM", "Unsupported share platform")

	case errors.Is(err, campaignProcessor.ErrParticipantNotFound):
		NotFound(c, "Participant not found")

	case errors.Is(err, campaignProcessor.ErrEmailExists):
		Conflict(c, "EMAIL_EXISTS", "This email is already registered")

	case errors.Is(err, campaignProcessor.ErrPhoneExists):
		Conflict(c, "PHONE_EXISTS", "This phone number is already registered")

	case errors.Is(err, campaignProcessor.ErrShareAlreadyClaimed):
		Conflict(c, "ALREADY_CLAIMED", "Platform already claimed")

	case errors.Is(err, newsletterProcessor.ErrAlreadySubscribed):
		Conflict(c, "ALREADY_SUBSCRIBED", "This email is already subscribed")

	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "Resource not found")

	default:
		InternalError(c, err)
	}
}
