package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"zatch-server/internal/campaign/history"

	"github.com/google/uuid"
)

// participantColumns contains all columns for SELECT queries
const participantColumns = `id, email, phone, screenshot_url, initial_discount, current_discount, initial_orders, current_orders, coupon_code, referral_code, referrer_id, total_referrals, social_share_count, boost_history, created_at, last_updated`

// CreateParticipantParams represents parameters for creating a participant
type CreateParticipantParams struct {
	ID              uuid.UUID
	Email           string
	Phone           string
	ScreenshotURL   *string
	InitialDiscount int
	InitialOrders   int
	CouponCode      string
	ReferralCode    string
	ReferrerID      *uuid.UUID
}

const sqlCreateParticipant = `
INSERT INTO participants (
	id, email, phone, screenshot_url,
	initial_discount, current_discount, initial_orders, current_orders,
	coupon_code, referral_code, referrer_id, boost_history
)
VALUES ($1, $2, $3, $4, $5, $5, $6, $6, $7, $8, $9, '[]'::jsonb)
RETURNING ` + participantColumns

// CreateParticipant creates a new participant. The initial discount and
// orders become both the initial and current values; a zero ID is assigned
// here. Returns a typed conflict error on a uniqueness violation.
func (s *Store) CreateParticipant(ctx context.Context, params CreateParticipantParams) (Participant, error) {
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}

	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlCreateParticipant,
		params.ID,
		params.Email,
		params.Phone,
		params.ScreenshotURL,
		params.InitialDiscount,
		params.InitialOrders,
		params.CouponCode,
		params.ReferralCode,
		params.ReferrerID)
	if err != nil {
		if conflict := uniqueViolation(err); conflict != nil {
			return Participant{}, conflict
		}
		return Participant{}, fmt.Errorf("failed to create participant: %w", err)
	}
	return participant, nil
}

const sqlGetParticipantByID = `
SELECT ` + participantColumns + `
FROM participants
WHERE id = $1
`

// GetParticipantByID retrieves a participant by ID
func (s *Store) GetParticipantByID(ctx context.Context, id uuid.UUID) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlGetParticipantByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		return Participant{}, fmt.Errorf("failed to get participant by id: %w", err)
	}
	return participant, nil
}

const sqlGetParticipantByEmail = `
SELECT ` + participantColumns + `
FROM participants
WHERE email = $1
`

// GetParticipantByEmail retrieves a participant by email
func (s *Store) GetParticipantByEmail(ctx context.Context, email string) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlGetParticipantByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		return Participant{}, fmt.Errorf("failed to get participant by email: %w", err)
	}
	return participant, nil
}

const sqlGetParticipantByPhone = `
SELECT ` + participantColumns + `
FROM participants
WHERE phone = $1
`

// GetParticipantByPhone retrieves a participant by phone number
func (s *Store) GetParticipantByPhone(ctx context.Context, phone string) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlGetParticipantByPhone, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		return Participant{}, fmt.Errorf("failed to get participant by phone: %w", err)
	}
	return participant, nil
}

const sqlGetParticipantByReferralCode = `
SELECT ` + participantColumns + `
FROM participants
WHERE referral_code = $1
`

// GetParticipantByReferralCode retrieves a participant by referral code
func (s *Store) GetParticipantByReferralCode(ctx context.Context, code string) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlGetParticipantByReferralCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		return Participant{}, fmt.Errorf("failed to get participant by referral code: %w", err)
	}
	return participant, nil
}

// ApplyBoostParams represents a reward-state update computed from a boost.
// TotalReferrals and SocialShareCount are applied only when non-nil.
// ExpectedLastUpdated must carry the last_updated value the caller read;
// the update is conditional on it so concurrent boosts cannot overwrite
// each other.
type ApplyBoostParams struct {
	CurrentDiscount     int
	CurrentOrders       int
	TotalReferrals      *int
	SocialShareCount    *int
	BoostHistory        history.Entries
	ExpectedLastUpdated time.Time
}

const sqlApplyParticipantBoost = `
UPDATE participants
SET current_discount = $2,
    current_orders = $3,
    total_referrals = COALESCE($4, total_referrals),
    social_share_count = COALESCE($5, social_share_count),
    boost_history = $6,
    last_updated = CURRENT_TIMESTAMP
WHERE id = $1 AND last_updated = $7
RETURNING ` + participantColumns

// ApplyParticipantBoost applies a boost outcome with optimistic concurrency.
// Returns ErrStaleUpdate when another writer updated the row since it was
// read; the caller is expected to re-read and recompute.
func (s *Store) ApplyParticipantBoost(ctx context.Context, id uuid.UUID, params ApplyBoostParams) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlApplyParticipantBoost,
		id,
		params.CurrentDiscount,
		params.CurrentOrders,
		params.TotalReferrals,
		params.SocialShareCount,
		params.BoostHistory,
		params.ExpectedLastUpdated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrStaleUpdate
		}
		return Participant{}, fmt.Errorf("failed to apply participant boost: %w", err)
	}
	return participant, nil
}

// ListParticipantsParams represents parameters for listing participants
type ListParticipantsParams struct {
	Limit  int
	Offset int
}

const sqlListParticipants = `
SELECT ` + participantColumns + `
FROM participants
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListParticipants retrieves participants with pagination, newest first
func (s *Store) ListParticipants(ctx context.Context, params ListParticipantsParams) ([]Participant, error) {
	var participants []Participant
	err := s.db.SelectContext(ctx, &participants, sqlListParticipants, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

const sqlCountParticipants = `SELECT COUNT(*) FROM participants`

// CountParticipants counts all participants
func (s *Store) CountParticipants(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountParticipants)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

// UpdateParticipantParams represents an administrative participant update
type UpdateParticipantParams struct {
	Email           *string
	Phone           *string
	CurrentDiscount *int
	CurrentOrders   *int
}

const sqlUpdateParticipant = `
UPDATE participants
SET email = COALESCE($2, email),
    phone = COALESCE($3, phone),
    current_discount = COALESCE($4, current_discount),
    current_orders = COALESCE($5, current_orders),
    last_updated = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + participantColumns

// UpdateParticipant applies an administrative update to a participant
func (s *Store) UpdateParticipant(ctx context.Context, id uuid.UUID, params UpdateParticipantParams) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlUpdateParticipant,
		id,
		params.Email,
		params.Phone,
		params.CurrentDiscount,
		params.CurrentOrders)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		if conflict := uniqueViolation(err); conflict != nil {
			return Participant{}, conflict
		}
		return Participant{}, fmt.Errorf("failed to update participant: %w", err)
	}
	return participant, nil
}

const sqlDeleteParticipant = `DELETE FROM participants WHERE id = $1`

// DeleteParticipant removes a participant. Administrative override only;
// the campaign flow never deletes participants.
func (s *Store) DeleteParticipant(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteParticipant, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
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
