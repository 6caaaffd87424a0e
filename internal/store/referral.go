package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const referralColumns = `id, referrer_id, referred_id, created_at`

const sqlCreateReferral = `
INSERT INTO referrals (referrer_id, referred_id)
VALUES ($1, $2)
RETURNING ` + referralColumns

// CreateReferral records a successful referred signup
func (s *Store) CreateReferral(ctx context.Context, referrerID, referredID uuid.UUID) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlCreateReferral, referrerID, referredID)
	if err != nil {
		return Referral{}, fmt.Errorf("failed to create referral: %w", err)
	}
	return referral, nil
}

// ListReferralsParams represents parameters for listing referrals
type ListReferralsParams struct {
	Limit  int
	Offset int
}

const sqlListReferrals = `
SELECT ` + referralColumns + `
FROM referrals
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListReferrals retrieves referral records with pagination, newest first
func (s *Store) ListReferrals(ctx context.Context, params ListReferralsParams) ([]Referral, error) {
	var referrals []Referral
	err := s.db.SelectContext(ctx, &referrals, sqlListReferrals, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	return referrals, nil
}

const sqlCountReferrals = `SELECT COUNT(*) FROM referrals`

// CountReferrals counts all referral records
func (s *Store) CountReferrals(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountReferrals)
	if err != nil {
		return 0, fmt.Errorf("failed to count referrals: %w", err)
	}
	return count, nil
}

const sqlCountReferralsByReferrer = `
SELECT COUNT(*) FROM referrals WHERE referrer_id = $1
`

// CountReferralsByReferrer counts referrals attributed to one participant
func (s *Store) CountReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountReferralsByReferrer, referrerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count referrals by referrer: %w", err)
	}
	return count, nil
}

const sqlDeleteReferral = `DELETE FROM referrals WHERE id = $1`

// DeleteReferral removes a referral record (administrative override)
func (s *Store) DeleteReferral(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteReferral, id)
	if err != nil {
		return fmt.Errorf("failed to delete referral: %w", err)
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
