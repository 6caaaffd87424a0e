package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"zatch-server/internal/clients/kafka"
	"zatch-server/internal/email"
	"zatch-server/internal/observability"
)

// NotificationConsumer consumes campaign events and sends participant emails
type NotificationConsumer struct {
	consumer     *kafka.Consumer
	emailService *email.EmailService
	logger       *observability.Logger
	workerCount  int
}

// NewNotificationConsumer creates a new notification consumer
func NewNotificationConsumer(consumer *kafka.Consumer, emailService *email.EmailService, logger *observability.Logger, workerCount int) *NotificationConsumer {
	if workerCount == 0 {
		workerCount = 5 // Default to 5 workers
	}

	return &NotificationConsumer{
		consumer:     consumer,
		emailService: emailService,
		logger:       logger,
		workerCount:  workerCount,
	}
}

// Start begins consuming events and sending emails
func (c *NotificationConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, fmt.Sprintf("Starting notification consumer with %d workers", c.workerCount))

	eventChan := make(chan kafka.EventMessage, 100)
	errorChan := make(chan error, 1)

	go func() {
		err := c.consumer.ConsumeEvents(ctx, func(msgCtx context.Context, event kafka.EventMessage) error {
			select {
			case eventChan <- event:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			errorChan <- err
		}
		close(eventChan)
	}()

	var wg sync.WaitGroup
	for i := 0; i < c.workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			c.worker(ctx, workerID, eventChan)
		}(i)
	}

	go func() {
		wg.Wait()
		close(errorChan)
	}()

	select {
	case err := <-errorChan:
		if err != nil {
			c.logger.Error(ctx, "consumer error", err)
			return err
		}
	case <-ctx.Done():
		c.logger.Info(ctx, "Notification consumer context cancelled")
		return ctx.Err()
	}

	return nil
}

// worker processes events from the event channel
func (c *NotificationConsumer) worker(ctx context.Context, workerID int, eventChan <-chan kafka.EventMessage) {
	workerCtx := observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: workerID})
	c.logger.Info(workerCtx, fmt.Sprintf("Notification worker %d started", workerID))

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				c.logger.Info(workerCtx, fmt.Sprintf("Notification worker %d stopping - channel closed", workerID))
				return
			}

			eventCtx := observability.WithFields(workerCtx,
				observability.Field{Key: "event_type", Value: event.Type},
				observability.Field{Key: "event_id", Value: event.ID},
				observability.Field{Key: "participant_id", Value: event.ParticipantID},
			)

			if err := c.handleEvent(eventCtx, event); err != nil {
				c.logger.Error(eventCtx, "failed to handle event", err)
			}

		case <-ctx.Done():
			c.logger.Info(workerCtx, fmt.Sprintf("Notification worker %d stopping - context cancelled", workerID))
			return
		}
	}
}

// handleEvent processes a single event
func (c *NotificationConsumer) handleEvent(ctx context.Context, event kafka.EventMessage) error {
	switch event.Type {
	case EventParticipantCreated:
		return c.handleParticipantCreated(ctx, event)
	case EventBoostApplied:
		return c.handleBoostApplied(ctx, event)
	default:
		// Ignore events we don't care about
		return nil
	}
}

// participantEventData is the payload shared by both campaign event types.
type participantEventData struct {
	Email        string `json:"email"`
	CouponCode   string `json:"coupon_code"`
	Discount     int    `json:"discount"`
	Orders       int    `json:"orders"`
	Reason       string `json:"reason"`
	Platform     string `json:"platform"`
	ReferralLink string `json:"referral_link"`
}

func decodeEventData(event kafka.EventMessage) (participantEventData, error) {
	var data participantEventData

	dataBytes, err := json.Marshal(event.Data)
	if err != nil {
		return data, fmt.Errorf("failed to marshal event data: %w", err)
	}
	if err := json.Unmarshal(dataBytes, &data); err != nil {
		return data, fmt.Errorf("failed to unmarshal event data: %w", err)
	}
	if data.Email == "" {
		return data, fmt.Errorf("missing email in event data")
	}

	return data, nil
}

// handleParticipantCreated sends the welcome email with the coupon and referral link
func (c *NotificationConsumer) handleParticipantCreated(ctx context.Context, event kafka.EventMessage) error {
	data, err := decodeEventData(event)
	if err != nil {
		return err
	}

	err = c.emailService.SendCampaignWelcomeEmail(ctx, data.Email, email.TemplateData{
		Email:        data.Email,
		CouponCode:   data.CouponCode,
		Discount:     data.Discount,
		Orders:       data.Orders,
		ReferralLink: data.ReferralLink,
	})
	if err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("Successfully sent welcome email to %s", data.Email))
	return nil
}

// handleBoostApplied notifies a participant that their coupon value changed
func (c *NotificationConsumer) handleBoostApplied(ctx context.Context, event kafka.EventMessage) error {
	data, err := decodeEventData(event)
	if err != nil {
		return err
	}

	err = c.emailService.SendBoostEmail(ctx, data.Email, email.TemplateData{
		Email:        data.Email,
		CouponCode:   data.CouponCode,
		Discount:     data.Discount,
		Orders:       data.Orders,
		BoostReason:  data.Reason,
		Platform:     data.Platform,
		ReferralLink: data.ReferralLink,
	})
	if err != nil {
		return fmt.Errorf("failed to send boost email: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("Successfully sent boost email to %s", data.Email))
	return nil
}
