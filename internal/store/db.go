package store

import (
	"errors"

	"zatch-server/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx stdlib driver for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStaleUpdate is returned when a conditional update matched no row
	// because another writer got there first.
	ErrStaleUpdate = errors.New("stale update")

	// Uniqueness conflicts, mapped from constraint violations.
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrDuplicatePhone        = errors.New("phone already registered")
	ErrDuplicateCouponCode   = errors.New("coupon code already in use")
	ErrDuplicateReferralCode = errors.New("referral code already in use")
	ErrShareAlreadyClaimed   = errors.New("share already claimed for platform")
	ErrDuplicateSubscriber   = errors.New("email already subscribed")
)

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, err
	}
	return Store{db: db, logger: logger}, nil
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// uniqueViolation maps a postgres unique-constraint violation to the typed
// sentinel for that constraint. Returns nil when err is not one.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}

	switch pgErr.ConstraintName {
	case "participants_email_key":
		return ErrDuplicateEmail
	case "participants_phone_key":
		return ErrDuplicatePhone
	case "participants_coupon_code_key":
		return ErrDuplicateCouponCode
	case "participants_referral_code_key":
		return ErrDuplicateReferralCode
	case "social_shares_participant_id_platform_key":
		return ErrShareAlreadyClaimed
	case "newsletter_subscribers_email_key":
		return ErrDuplicateSubscriber
	}
	return nil
}
