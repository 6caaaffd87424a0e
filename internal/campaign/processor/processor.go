package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"
	"zatch-server/internal/campaign/codes"
	"zatch-server/internal/campaign/history"
	"zatch-server/internal/campaign/rewards"
	"zatch-server/internal/jobs"
	"zatch-server/internal/observability"
	"zatch-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateParticipant(ctx context.Context, params store.CreateParticipantParams) (store.Participant, error)
	GetParticipantByID(ctx context.Context, id uuid.UUID) (store.Participant, error)
	GetParticipantByEmail(ctx context.Context, email string) (store.Participant, error)
	GetParticipantByPhone(ctx context.Context, phone string) (store.Participant, error)
	GetParticipantByReferralCode(ctx context.Context, code string) (store.Participant, error)
	ApplyParticipantBoost(ctx context.Context, id uuid.UUID, params store.ApplyBoostParams) (store.Participant, error)
	CreateReferral(ctx context.Context, referrerID, referredID uuid.UUID) (store.Referral, error)
	CreateSocialShare(ctx context.Context, params store.CreateSocialShareParams) (store.SocialShare, error)
	GetSocialShare(ctx context.Context, participantID uuid.UUID, platform store.SharePlatform) (store.SocialShare, error)
	GetSharePlatforms(ctx context.Context, participantID uuid.UUID) ([]store.SharePlatform, error)
	DeleteSocialShareByClaim(ctx context.Context, participantID uuid.UUID, platform store.SharePlatform) error
}

// EventDispatcher defines the event operations required by CampaignProcessor
type EventDispatcher interface {
	DispatchParticipantCreated(ctx context.Context, p store.Participant, referralLink string)
	DispatchBoostApplied(ctx context.Context, p store.Participant, reason, platform, referralLink string)
}

// ScreenshotStore defines the object storage operations for signup screenshots
type ScreenshotStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

// JobClient defines the background job operations required by CampaignProcessor
type JobClient interface {
	EnqueueShareReconciliation(ctx context.Context, payload jobs.ShareReconcilePayload) error
}

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrPhoneExists         = errors.New("phone already registered")
	ErrInvalidReferral     = errors.New("referral code does not resolve")
	ErrInvalidPlatform     = errors.New("unsupported share platform")
	ErrShareAlreadyClaimed = errors.New("platform already claimed")
	ErrCodesExhausted      = errors.New("could not generate unique codes")
)

// Bounded retry counts for code-conflict regeneration and optimistic
// participant updates.
const (
	maxCodeAttempts  = 3
	maxBoostAttempts = 3
)

type CampaignProcessor struct {
	store       CampaignStore
	calculator  rewards.Calculator
	dispatcher  EventDispatcher
	screenshots ScreenshotStore
	jobClient   JobClient
	logger      *observability.Logger
	baseURL     string
}

func New(
	store CampaignStore,
	calculator rewards.Calculator,
	dispatcher EventDispatcher,
	screenshots ScreenshotStore,
	jobClient JobClient,
	baseURL string,
	logger *observability.Logger,
) CampaignProcessor {
	return CampaignProcessor{
		store:       store,
		calculator:  calculator,
		dispatcher:  dispatcher,
		screenshots: screenshots,
		jobClient:   jobClient,
		logger:      logger,
		baseURL:     baseURL,
	}
}

// Screenshot carries the uploaded proof-of-download image
type Screenshot struct {
	FileName    string
	ContentType string
	Data        io.Reader
}

// SignupRequest represents a request to join the campaign
type SignupRequest struct {
	Email        string
	Phone        string
	ReferralCode *string
	Screenshot   Screenshot
}

// ParticipantState is the reward-state shape returned by every campaign operation
type ParticipantState struct {
	ID              uuid.UUID             `json:"id"`
	Discount        int                   `json:"discount"`
	InitialDiscount int                   `json:"initial_discount"`
	OrdersAllowed   int                   `json:"orders_allowed"`
	InitialOrders   int                   `json:"initial_orders"`
	CouponCode      string                `json:"coupon_code"`
	ReferralLink    string                `json:"referral_link"`
	ReferralCount   int                   `json:"referral_count"`
	ReferralTarget  int                   `json:"referral_target"`
	SharesUsed      []store.SharePlatform `json:"shares_used"`
	BoostHistory    history.Entries       `json:"boost_history,omitempty"`
}

// CreditOutcome describes what happened to the referrer during a referred
// signup. The credit is best-effort, so the outcome is reported alongside a
// successful signup rather than failing it.
type CreditOutcome struct {
	Attempted       bool
	Applied         bool
	ReferrerID      uuid.UUID
	DiscountChanged bool
	OrdersChanged   bool
}

// SignupResponse represents the response after joining the campaign
type SignupResponse struct {
	Participant ParticipantState
	Credit      CreditOutcome
}

func (p *CampaignProcessor) referralLink(referralCode string) string {
	return fmt.Sprintf("%s/?ref=%s", p.baseURL, referralCode)
}

func (p *CampaignProcessor) state(participant store.Participant, shares []store.SharePlatform) ParticipantState {
	if shares == nil {
		shares = []store.SharePlatform{}
	}
	return ParticipantState{
		ID:              participant.ID,
		Discount:        participant.CurrentDiscount,
		InitialDiscount: participant.InitialDiscount,
		OrdersAllowed:   participant.CurrentOrders,
		InitialOrders:   participant.InitialOrders,
		CouponCode:      participant.CouponCode,
		ReferralLink:    p.referralLink(participant.ReferralCode),
		ReferralCount:   participant.TotalReferrals,
		ReferralTarget:  rewards.ReferralThreshold,
		SharesUsed:      shares,
	}
}

// Signup enrolls a new participant: validates uniqueness, resolves the
// referrer when a code is given, draws initial rewards, persists the record,
// then credits the referrer best-effort.
func (p *CampaignProcessor) Signup(ctx context.Context, req SignupRequest) (SignupResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email", Value: req.Email},
	)

	// Reject duplicates before creating any state
	_, err := p.store.GetParticipantByEmail(ctx, req.Email)
	if err == nil {
		return SignupResponse{}, ErrEmailExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check email uniqueness", err)
		return SignupResponse{}, err
	}

	_, err = p.store.GetParticipantByPhone(ctx, req.Phone)
	if err == nil {
		return SignupResponse{}, ErrPhoneExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check phone uniqueness", err)
		return SignupResponse{}, err
	}

	// A referral code that doesn't resolve aborts the whole signup, it is
	// never silently ignored.
	var referrer *store.Participant
	if req.ReferralCode != nil && *req.ReferralCode != "" {
		found, err := p.store.GetParticipantByReferralCode(ctx, *req.ReferralCode)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return SignupResponse{}, ErrInvalidReferral
			}
			p.logger.Error(ctx, "failed to resolve referral code", err)
			return SignupResponse{}, err
		}
		referrer = &found
	}

	screenshotKey, err := p.uploadScreenshot(ctx, req.Screenshot)
	if err != nil {
		p.logger.Error(ctx, "failed to upload screenshot", err)
		return SignupResponse{}, err
	}

	initialDiscount := p.calculator.WeightedInitialDiscount()
	initialOrders := p.calculator.InitialOrders()

	participant, err := p.createWithUniqueCodes(ctx, req, referrer, screenshotKey, initialDiscount, initialOrders)
	if err != nil {
		return SignupResponse{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "participant_id", Value: participant.ID.String()},
	)
	p.logger.Info(ctx, "participant signed up")

	// Credit the referrer best-effort: a failure here is logged and reported
	// in the outcome but never fails the signup itself.
	var credit CreditOutcome
	if referrer != nil {
		credit = p.creditReferrer(ctx, *referrer, participant.ID)
	}

	p.dispatcher.DispatchParticipantCreated(ctx, participant, p.referralLink(participant.ReferralCode))

	return SignupResponse{
		Participant: p.state(participant, nil),
		Credit:      credit,
	}, nil
}

// uploadScreenshot stores the proof image and returns its object key
func (p *CampaignProcessor) uploadScreenshot(ctx context.Context, s Screenshot) (string, error) {
	ext := path.Ext(s.FileName)
	key := fmt.Sprintf("screenshots/%s%s", uuid.New().String(), ext)
	return p.screenshots.Upload(ctx, key, s.ContentType, s.Data)
}

// createWithUniqueCodes inserts the participant, regenerating codes a bounded
// number of times when the insert hits a code uniqueness constraint. Email and
// phone conflicts surface immediately since regeneration cannot fix them.
func (p *CampaignProcessor) createWithUniqueCodes(
	ctx context.Context,
	req SignupRequest,
	referrer *store.Participant,
	screenshotKey string,
	initialDiscount, initialOrders int,
) (store.Participant, error) {
	var referrerID *uuid.UUID
	if referrer != nil {
		referrerID = &referrer.ID
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		now := time.Now()
		couponCode, err := codes.CouponCode(now)
		if err != nil {
			return store.Participant{}, fmt.Errorf("failed to generate coupon code: %w", err)
		}
		referralCode, err := codes.ReferralCode(now)
		if err != nil {
			return store.Participant{}, fmt.Errorf("failed to generate referral code: %w", err)
		}

		participant, err := p.store.CreateParticipant(ctx, store.CreateParticipantParams{
			Email:           req.Email,
			Phone:           req.Phone,
			ScreenshotURL:   &screenshotKey,
			InitialDiscount: initialDiscount,
			InitialOrders:   initialOrders,
			CouponCode:      couponCode,
			ReferralCode:    referralCode,
			ReferrerID:      referrerID,
		})
		if err == nil {
			return participant, nil
		}

		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			return store.Participant{}, ErrEmailExists
		case errors.Is(err, store.ErrDuplicatePhone):
			return store.Participant{}, ErrPhoneExists
		case errors.Is(err, store.ErrDuplicateCouponCode), errors.Is(err, store.ErrDuplicateReferralCode):
			p.logger.Warn(ctx, fmt.Sprintf("code collision on attempt %d, regenerating", attempt+1))
			continue
		default:
			p.logger.Error(ctx, "failed to create participant", err)
			return store.Participant{}, err
		}
	}

	p.logger.Error(ctx, "exhausted code generation attempts", ErrCodesExhausted)
	return store.Participant{}, ErrCodesExhausted
}

// creditReferrer applies the referral boost to the referrer using optimistic
// concurrency: the conditional update fails when another signup credited the
// same referrer in between, in which case the state is re-read and the boost
// recomputed from fresh values.
func (p *CampaignProcessor) creditReferrer(ctx context.Context, referrer store.Participant, referredID uuid.UUID) CreditOutcome {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referrer_id", Value: referrer.ID.String()},
	)

	outcome := CreditOutcome{Attempted: true, ReferrerID: referrer.ID}

	if _, err := p.store.CreateReferral(ctx, referrer.ID, referredID); err != nil {
		p.logger.Error(ctx, "failed to record referral event", err)
		return outcome
	}

	boost := p.calculator.Boost()
	current := referrer

	for attempt := 0; attempt < maxBoostAttempts; attempt++ {
		newTotal := current.TotalReferrals + 1
		ordersBonus := rewards.ReferralOrdersBonus(current.TotalReferrals, newTotal, current.CurrentOrders)
		newDiscount := rewards.ClampDiscount(current.CurrentDiscount + boost)
		newOrders := current.CurrentOrders
		ordersIncrement := 0
		if ordersBonus {
			newOrders = rewards.ClampOrders(current.CurrentOrders + 1)
			ordersIncrement = 1
		}

		entry := history.Entry{
			Type:            history.TypeReferral,
			Value:           boost,
			OrdersIncrement: ordersIncrement,
			CreatedAt:       time.Now().UTC(),
			ReferredID:      &referredID,
		}

		updated, err := p.store.ApplyParticipantBoost(ctx, current.ID, store.ApplyBoostParams{
			CurrentDiscount:     newDiscount,
			CurrentOrders:       newOrders,
			TotalReferrals:      &newTotal,
			BoostHistory:        current.BoostHistory.Append(entry),
			ExpectedLastUpdated: current.LastUpdated,
		})
		if err == nil {
			outcome.Applied = true
			outcome.DiscountChanged = updated.CurrentDiscount != current.CurrentDiscount
			outcome.OrdersChanged = updated.CurrentOrders != current.CurrentOrders

			if outcome.DiscountChanged || outcome.OrdersChanged {
				p.dispatcher.DispatchBoostApplied(ctx, updated, "referral", "", p.referralLink(updated.ReferralCode))
			}
			return outcome
		}

		if !errors.Is(err, store.ErrStaleUpdate) {
			p.logger.Error(ctx, "failed to credit referrer", err)
			return outcome
		}
		if attempt == maxBoostAttempts-1 {
			break
		}

		// Lost the race with a concurrent credit; re-read and recompute.
		fresh, err := p.store.GetParticipantByID(ctx, current.ID)
		if err != nil {
			p.logger.Error(ctx, "failed to re-read referrer after stale update", err)
			return outcome
		}
		current = fresh
	}

	p.logger.Error(ctx, "gave up crediting referrer after repeated stale updates", store.ErrStaleUpdate)
	return outcome
}

// ClaimShareResponse represents the response after a share claim
type ClaimShareResponse struct {
	Participant ParticipantState
}

// ClaimShare applies a one-time boost for sharing on a platform. The unique
// constraint on (participant, platform) is the at-most-once guarantee; the
// pre-check only exists to answer the common case without burning an insert.
func (p *CampaignProcessor) ClaimShare(ctx context.Context, participantID uuid.UUID, platform store.SharePlatform) (ClaimShareResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "participant_id", Value: participantID.String()},
		observability.Field{Key: "platform", Value: string(platform)},
	)

	if !store.IsValidSharePlatform(platform) {
		return ClaimShareResponse{}, ErrInvalidPlatform
	}

	participant, err := p.store.GetParticipantByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClaimShareResponse{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to get participant", err)
		return ClaimShareResponse{}, err
	}

	_, err = p.store.GetSocialShare(ctx, participantID, platform)
	if err == nil {
		return ClaimShareResponse{}, ErrShareAlreadyClaimed
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check existing share", err)
		return ClaimShareResponse{}, err
	}

	boost := p.calculator.Boost()
	ordersBonus := p.calculator.ShareOrdersBonus(participant.CurrentOrders)
	ordersIncrement := 0
	if ordersBonus {
		ordersIncrement = 1
	}

	share, err := p.store.CreateSocialShare(ctx, store.CreateSocialShareParams{
		ParticipantID:   participantID,
		Platform:        platform,
		DiscountBoost:   boost,
		OrdersIncrement: ordersBonus,
	})
	if err != nil {
		if errors.Is(err, store.ErrShareAlreadyClaimed) {
			// Lost the race with an identical concurrent claim.
			return ClaimShareResponse{}, ErrShareAlreadyClaimed
		}
		p.logger.Error(ctx, "failed to create share record", err)
		return ClaimShareResponse{}, err
	}

	updated, err := p.applyShareBoost(ctx, participant, platform, boost, ordersIncrement)
	if err != nil {
		p.compensateShare(ctx, share)
		return ClaimShareResponse{}, err
	}

	if updated.CurrentDiscount != participant.CurrentDiscount || updated.CurrentOrders != participant.CurrentOrders {
		p.dispatcher.DispatchBoostApplied(ctx, updated, "share", string(platform), p.referralLink(updated.ReferralCode))
	}

	platforms, err := p.store.GetSharePlatforms(ctx, participantID)
	if err != nil {
		p.logger.Error(ctx, "failed to list claimed platforms", err)
		platforms = []store.SharePlatform{platform}
	}

	return ClaimShareResponse{Participant: p.state(updated, platforms)}, nil
}

// applyShareBoost persists the share boost on the participant row with the
// same optimistic retry strategy as referral credits.
func (p *CampaignProcessor) applyShareBoost(ctx context.Context, participant store.Participant, platform store.SharePlatform, boost, ordersIncrement int) (store.Participant, error) {
	platformStr := string(platform)
	current := participant

	for attempt := 0; attempt < maxBoostAttempts; attempt++ {
		newDiscount := rewards.ClampDiscount(current.CurrentDiscount + boost)
		newOrders := rewards.ClampOrders(current.CurrentOrders + ordersIncrement)
		newShareCount := current.SocialShareCount + 1

		entry := history.Entry{
			Type:            history.TypeShare,
			Value:           boost,
			OrdersIncrement: ordersIncrement,
			CreatedAt:       time.Now().UTC(),
			Platform:        &platformStr,
		}

		updated, err := p.store.ApplyParticipantBoost(ctx, current.ID, store.ApplyBoostParams{
			CurrentDiscount:     newDiscount,
			CurrentOrders:       newOrders,
			SocialShareCount:    &newShareCount,
			BoostHistory:        current.BoostHistory.Append(entry),
			ExpectedLastUpdated: current.LastUpdated,
		})
		if err == nil {
			return updated, nil
		}

		if !errors.Is(err, store.ErrStaleUpdate) {
			p.logger.Error(ctx, "failed to apply share boost", err)
			return store.Participant{}, err
		}
		if attempt == maxBoostAttempts-1 {
			break
		}

		fresh, err := p.store.GetParticipantByID(ctx, current.ID)
		if err != nil {
			p.logger.Error(ctx, "failed to re-read participant after stale update", err)
			return store.Participant{}, err
		}
		current = fresh
	}

	p.logger.Error(ctx, "gave up applying share boost after repeated stale updates", store.ErrStaleUpdate)
	return store.Participant{}, store.ErrStaleUpdate
}

// compensateShare deletes a share row whose boost never landed. If the delete
// itself fails, the row is handed to the reconciliation queue so the platform
// doesn't stay claimed without a reward.
func (p *CampaignProcessor) compensateShare(ctx context.Context, share store.SocialShare) {
	err := p.store.DeleteSocialShareByClaim(ctx, share.ParticipantID, share.Platform)
	if err == nil || errors.Is(err, store.ErrNotFound) {
		return
	}

	p.logger.Error(ctx, "compensating delete failed, enqueueing reconciliation", err)

	enqueueErr := p.jobClient.EnqueueShareReconciliation(ctx, jobs.ShareReconcilePayload{
		ShareID:       share.ID,
		ParticipantID: share.ParticipantID,
		Platform:      string(share.Platform),
	})
	if enqueueErr != nil {
		// Nothing left to do inline; the hourly orphan scan will pick it up.
		p.logger.Error(ctx, "failed to enqueue share reconciliation", enqueueErr)
	}
}

// GetParticipant returns the current reward state, claimed platforms, and
// full boost history for a participant
func (p *CampaignProcessor) GetParticipant(ctx context.Context, id uuid.UUID) (ParticipantState, error) {
	participant, err := p.store.GetParticipantByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ParticipantState{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to get participant", err)
		return ParticipantState{}, err
	}

	platforms, err := p.store.GetSharePlatforms(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to list claimed platforms", err)
		return ParticipantState{}, err
	}

	state := p.state(participant, platforms)
	state.BoostHistory = participant.BoostHistory
	return state, nil
}
