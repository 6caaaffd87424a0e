package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const subscriberColumns = `id, email, created_at`

const sqlCreateSubscriber = `
INSERT INTO newsletter_subscribers (email)
VALUES ($1)
RETURNING ` + subscriberColumns

// CreateSubscriber adds a newsletter subscriber
func (s *Store) CreateSubscriber(ctx context.Context, email string) (Subscriber, error) {
	var subscriber Subscriber
	err := s.db.GetContext(ctx, &subscriber, sqlCreateSubscriber, email)
	if err != nil {
		if conflict := uniqueViolation(err); conflict != nil {
			return Subscriber{}, conflict
		}
		return Subscriber{}, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return subscriber, nil
}

// ListSubscribersParams represents parameters for listing subscribers
type ListSubscribersParams struct {
	Limit  int
	Offset int
}

const sqlListSubscribers = `
SELECT ` + subscriberColumns + `
FROM newsletter_subscribers
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListSubscribers retrieves subscribers with pagination, newest first
func (s *Store) ListSubscribers(ctx context.Context, params ListSubscribersParams) ([]Subscriber, error) {
	var subscribers []Subscriber
	err := s.db.SelectContext(ctx, &subscribers, sqlListSubscribers, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}

const sqlCountSubscribers = `SELECT COUNT(*) FROM newsletter_subscribers`

// CountSubscribers counts all subscribers
func (s *Store) CountSubscribers(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountSubscribers)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

const sqlDeleteSubscriber = `DELETE FROM newsletter_subscribers WHERE id = $1`

// DeleteSubscriber removes a subscriber
func (s *Store) DeleteSubscriber(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteSubscriber, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
