package events

import (
	"context"
	"time"
	"zatch-server/internal/clients/kafka"
	"zatch-server/internal/observability"
	"zatch-server/internal/store"

	"github.com/google/uuid"
)

// Event types published to the campaign topic.
const (
	EventParticipantCreated = "campaign.participant.created"
	EventBoostApplied       = "campaign.boost.applied"
)

// Boost reasons carried in campaign.boost.applied events.
const (
	BoostReasonReferral = "referral"
	BoostReasonShare    = "share"
)

// Dispatcher publishes campaign lifecycle events. Publishing is best-effort:
// callers treat a failed dispatch as a logged degradation, never as a request
// failure, so the underlying state change always survives a broker outage.
type Dispatcher struct {
	producer *kafka.Producer
	logger   *observability.Logger
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(producer *kafka.Producer, logger *observability.Logger) *Dispatcher {
	return &Dispatcher{
		producer: producer,
		logger:   logger,
	}
}

// DispatchParticipantCreated announces a completed signup.
func (d *Dispatcher) DispatchParticipantCreated(ctx context.Context, p store.Participant, referralLink string) {
	event := kafka.EventMessage{
		ID:            uuid.New().String(),
		Type:          EventParticipantCreated,
		ParticipantID: p.ID.String(),
		Data: map[string]interface{}{
			"email":         p.Email,
			"coupon_code":   p.CouponCode,
			"discount":      p.CurrentDiscount,
			"orders":        p.CurrentOrders,
			"referral_link": referralLink,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := d.producer.PublishEvent(ctx, event); err != nil {
		d.logger.Error(ctx, "failed to dispatch participant created event", err)
	}
}

// DispatchBoostApplied announces a coupon value change for a participant.
// reason is one of BoostReasonReferral or BoostReasonShare; platform is set
// only for share boosts.
func (d *Dispatcher) DispatchBoostApplied(ctx context.Context, p store.Participant, reason, platform, referralLink string) {
	data := map[string]interface{}{
		"email":         p.Email,
		"coupon_code":   p.CouponCode,
		"discount":      p.CurrentDiscount,
		"orders":        p.CurrentOrders,
		"reason":        reason,
		"referral_link": referralLink,
	}
	if platform != "" {
		data["platform"] = platform
	}

	event := kafka.EventMessage{
		ID:            uuid.New().String(),
		Type:          EventBoostApplied,
		ParticipantID: p.ID.String(),
		Data:          data,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}

	if err := d.producer.PublishEvent(ctx, event); err != nil {
		d.logger.Error(ctx, "failed to dispatch boost applied event", err)
	}
}
