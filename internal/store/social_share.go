package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const socialShareColumns = `id, participant_id, platform, discount_boost, orders_increment, created_at`

// CreateSocialShareParams represents parameters for recording a share claim
type CreateSocialShareParams struct {
	ParticipantID   uuid.UUID
	Platform        SharePlatform
	DiscountBoost   int
	OrdersIncrement bool
}

const sqlCreateSocialShare = `
INSERT INTO social_shares (participant_id, platform, discount_boost, orders_increment)
VALUES ($1, $2, $3, $4)
RETURNING ` + socialShareColumns

// CreateSocialShare records a share claim. The unique constraint on
// (participant_id, platform) is the at-most-once guarantee; a violation
// surfaces as ErrShareAlreadyClaimed even when two claims race.
func (s *Store) CreateSocialShare(ctx context.Context, params CreateSocialShareParams) (SocialShare, error) {
	var share SocialShare
	err := s.db.GetContext(ctx, &share, sqlCreateSocialShare,
		params.ParticipantID,
		params.Platform,
		params.DiscountBoost,
		params.OrdersIncrement)
	if err != nil {
		if conflict := uniqueViolation(err); conflict != nil {
			return SocialShare{}, conflict
		}
		return SocialShare{}, fmt.Errorf("failed to create social share: %w", err)
	}
	return share, nil
}

const sqlGetSocialShare = `
SELECT ` + socialShareColumns + `
FROM social_shares
WHERE participant_id = $1 AND platform = $2
`

// GetSocialShare retrieves a share claim for a participant and platform
func (s *Store) GetSocialShare(ctx context.Context, participantID uuid.UUID, platform SharePlatform) (SocialShare, error) {
	var share SocialShare
	err := s.db.GetContext(ctx, &share, sqlGetSocialShare, participantID, platform)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SocialShare{}, ErrNotFound
		}
		return SocialShare{}, fmt.Errorf("failed to get social share: %w", err)
	}
	return share, nil
}

const sqlGetSharePlatforms = `
SELECT platform
FROM social_shares
WHERE participant_id = $1
ORDER BY created_at ASC
`

// GetSharePlatforms lists the platforms a participant has already claimed
func (s *Store) GetSharePlatforms(ctx context.Context, participantID uuid.UUID) ([]SharePlatform, error) {
	var platforms []SharePlatform
	err := s.db.SelectContext(ctx, &platforms, sqlGetSharePlatforms, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get share platforms: %w", err)
	}
	return platforms, nil
}

const sqlDeleteSocialShareByClaim = `
DELETE FROM social_shares
WHERE participant_id = $1 AND platform = $2
`

// DeleteSocialShareByClaim deletes a share row for a participant and
// platform. Used as the compensating action when the participant update
// after a share insert fails.
func (s *Store) DeleteSocialShareByClaim(ctx context.Context, participantID uuid.UUID, platform SharePlatform) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteSocialShareByClaim, participantID, platform)
	if err != nil {
		return fmt.Errorf("failed to delete social share: %w", err)
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

// ListSocialSharesParams represents parameters for listing share claims
type ListSocialSharesParams struct {
	Limit  int
	Offset int
}

const sqlListSocialShares = `
SELECT ` + socialShareColumns + `
FROM social_shares
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListSocialShares retrieves share claims with pagination, newest first
func (s *Store) ListSocialShares(ctx context.Context, params ListSocialSharesParams) ([]SocialShare, error) {
	var shares []SocialShare
	err := s.db.SelectContext(ctx, &shares, sqlListSocialShares, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list social shares: %w", err)
	}
	return shares, nil
}

const sqlCountSocialShares = `SELECT COUNT(*) FROM social_shares`

// CountSocialShares counts all share claims
func (s *Store) CountSocialShares(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountSocialShares)
	if err != nil {
		return 0, fmt.Errorf("failed to count social shares: %w", err)
	}
	return count, nil
}

const sqlDeleteSocialShare = `DELETE FROM social_shares WHERE id = $1`

// DeleteSocialShare removes a share claim by id (administrative override,
// also used by the reconciliation worker for orphaned rows)
func (s *Store) DeleteSocialShare(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteSocialShare, id)
	if err != nil {
		return fmt.Errorf("failed to delete social share: %w", err)
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

const sqlListOrphanedShares = `
SELECT s.id, s.participant_id, s.platform, s.discount_boost, s.orders_increment, s.created_at
FROM social_shares s
JOIN participants p ON p.id = s.participant_id
WHERE s.created_at < $1
  AND NOT p.boost_history @> jsonb_build_array(jsonb_build_object('type', 'share', 'platform', s.platform))
`

// ListOrphanedShares finds share rows older than the cutoff whose boost
// never reached the participant's history, i.e. the participant update
// failed after the share insert and the compensating delete failed too.
func (s *Store) ListOrphanedShares(ctx context.Context, olderThan time.Time) ([]SocialShare, error) {
	var shares []SocialShare
	err := s.db.SelectContext(ctx, &shares, sqlListOrphanedShares, olderThan)
	if err != nil {
		return nil, fmt.Errorf("failed to list orphaned shares: %w", err)
	}
	return shares, nil
}
