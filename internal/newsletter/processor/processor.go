package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"zatch-server/internal/observability"
	"zatch-server/internal/store"
)

// SubscriberStore defines the database operations required by NewsletterProcessor
type SubscriberStore interface {
	CreateSubscriber(ctx context.Context, email string) (store.Subscriber, error)
}

// ConfirmationSender sends the subscription confirmation email
type ConfirmationSender interface {
	SendNewsletterConfirmationEmail(ctx context.Context, to string) error
}

var ErrAlreadySubscribed = errors.New("email already subscribed")

type NewsletterProcessor struct {
	store  SubscriberStore
	email  ConfirmationSender
	logger *observability.Logger
}

func New(store SubscriberStore, email ConfirmationSender, logger *observability.Logger) NewsletterProcessor {
	return NewsletterProcessor{
		store:  store,
		email:  email,
		logger: logger,
	}
}

// Subscribe records a newsletter signup and confirms it by email. The
// confirmation is best-effort; the subscription stands even when it fails.
func (p *NewsletterProcessor) Subscribe(ctx context.Context, email string) (store.Subscriber, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email", Value: email},
	)

	subscriber, err := p.store.CreateSubscriber(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSubscriber) {
			return store.Subscriber{}, ErrAlreadySubscribed
		}
		p.logger.Error(ctx, "failed to create subscriber", err)
		return store.Subscriber{}, err
	}

	if err := p.email.SendNewsletterConfirmationEmail(ctx, email); err != nil {
		p.logger.Error(ctx, "failed to send confirmation email", err)
	}

	return subscriber, nil
}
