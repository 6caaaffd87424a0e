package store

import (
	"time"

	"zatch-server/internal/campaign/history"

	"github.com/google/uuid"
)

// SharePlatform represents a supported social sharing platform
type SharePlatform string

const (
	SharePlatformX         SharePlatform = "x"
	SharePlatformInstagram SharePlatform = "instagram"
	SharePlatformFacebook  SharePlatform = "facebook"
	SharePlatformLinkedIn  SharePlatform = "linkedin"
	SharePlatformWhatsApp  SharePlatform = "whatsapp"
)

// SharePlatforms lists every supported platform.
var SharePlatforms = []SharePlatform{
	SharePlatformX,
	SharePlatformInstagram,
	SharePlatformFacebook,
	SharePlatformLinkedIn,
	SharePlatformWhatsApp,
}

// IsValidSharePlatform reports whether p is a supported platform.
func IsValidSharePlatform(p SharePlatform) bool {
	for _, known := range SharePlatforms {
		if p == known {
			return true
		}
	}
	return false
}

// Participant is a campaign participant row.
type Participant struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	Email            string          `db:"email" json:"email"`
	Phone            string          `db:"phone" json:"phone"`
	ScreenshotURL    *string         `db:"screenshot_url" json:"screenshot_url"`
	InitialDiscount  int             `db:"initial_discount" json:"initial_discount"`
	CurrentDiscount  int             `db:"current_discount" json:"current_discount"`
	InitialOrders    int             `db:"initial_orders" json:"initial_orders"`
	CurrentOrders    int             `db:"current_orders" json:"current_orders"`
	CouponCode       string          `db:"coupon_code" json:"coupon_code"`
	ReferralCode     string          `db:"referral_code" json:"referral_code"`
	ReferrerID       *uuid.UUID      `db:"referrer_id" json:"referrer_id"`
	TotalReferrals   int             `db:"total_referrals" json:"total_referrals"`
	SocialShareCount int             `db:"social_share_count" json:"social_share_count"`
	BoostHistory     history.Entries `db:"boost_history" json:"boost_history"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	LastUpdated      time.Time       `db:"last_updated" json:"last_updated"`
}

// Referral records one successful referred signup.
type Referral struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ReferrerID uuid.UUID `db:"referrer_id" json:"referrer_id"`
	ReferredID uuid.UUID `db:"referred_id" json:"referred_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// SocialShare records one claimed share boost. At most one row exists per
// (participant, platform).
type SocialShare struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	ParticipantID   uuid.UUID     `db:"participant_id" json:"participant_id"`
	Platform        SharePlatform `db:"platform" json:"platform"`
	DiscountBoost   int           `db:"discount_boost" json:"discount_boost"`
	OrdersIncrement bool          `db:"orders_increment" json:"orders_increment"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
