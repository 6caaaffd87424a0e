package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"zatch-server/internal/observability"
	"zatch-server/internal/store"

	"github.com/google/uuid"
)

// AdminStore defines the database operations required by AdminProcessor
type AdminStore interface {
	ListParticipants(ctx context.Context, params store.ListParticipantsParams) ([]store.Participant, error)
	CountParticipants(ctx context.Context) (int, error)
	UpdateParticipant(ctx context.Context, id uuid.UUID, params store.UpdateParticipantParams) (store.Participant, error)
	DeleteParticipant(ctx context.Context, id uuid.UUID) error
	ListReferrals(ctx context.Context, params store.ListReferralsParams) ([]store.Referral, error)
	CountReferrals(ctx context.Context) (int, error)
	DeleteReferral(ctx context.Context, id uuid.UUID) error
	ListSocialShares(ctx context.Context, params store.ListSocialSharesParams) ([]store.SocialShare, error)
	CountSocialShares(ctx context.Context) (int, error)
	DeleteSocialShare(ctx context.Context, id uuid.UUID) error
	ListSubscribers(ctx context.Context, params store.ListSubscribersParams) ([]store.Subscriber, error)
	CountSubscribers(ctx context.Context) (int, error)
	DeleteSubscriber(ctx context.Context, id uuid.UUID) error
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type AdminProcessor struct {
	store  AdminStore
	logger *observability.Logger
}

func New(store AdminStore, logger *observability.Logger) AdminProcessor {
	return AdminProcessor{
		store:  store,
		logger: logger,
	}
}

// Overview summarizes campaign-wide totals for the admin dashboard
type Overview struct {
	Participants int `json:"participants"`
	Referrals    int `json:"referrals"`
	SocialShares int `json:"social_shares"`
	Subscribers  int `json:"subscribers"`
}

// Page carries pagination inputs already validated by the handler
type Page struct {
	Limit  int
	Offset int
}

func (p Page) normalized() Page {
	if p.Limit <= 0 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// GetOverview returns campaign-wide record counts
func (a *AdminProcessor) GetOverview(ctx context.Context) (Overview, error) {
	participants, err := a.store.CountParticipants(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to count participants", err)
		return Overview{}, err
	}
	referrals, err := a.store.CountReferrals(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to count referrals", err)
		return Overview{}, err
	}
	shares, err := a.store.CountSocialShares(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to count social shares", err)
		return Overview{}, err
	}
	subscribers, err := a.store.CountSubscribers(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to count subscribers", err)
		return Overview{}, err
	}

	return Overview{
		Participants: participants,
		Referrals:    referrals,
		SocialShares: shares,
		Subscribers:  subscribers,
	}, nil
}

// ListParticipants returns a page of participants with the total count
func (a *AdminProcessor) ListParticipants(ctx context.Context, page Page) ([]store.Participant, int, error) {
	page = page.normalized()
	participants, err := a.store.ListParticipants(ctx, store.ListParticipantsParams{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		a.logger.Error(ctx, "failed to list participants", err)
		return nil, 0, err
	}
	total, err := a.store.CountParticipants(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to count participants", err)
		return nil, 0, err
	}
	return participants, total, nil
}

// UpdateParticipant applies an administrative edit to a participant
func (a *AdminProcessor) UpdateParticipant(ctx context.Context, id uuid.UUID, params store.UpdateParticipantParams) (store.Participant, error) {
	participant, err := a.store.UpdateParticipant(ctx, id, params)
	if err != nil {
		a.logger.Error(ctx, "failed to update participant", err)
		return store.Participant{}, err
	}
	a.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "participant_id", Value: id.String()},
	), "participant updated by admin")
	return participant, nil
}

// DeleteParticipant removes a participant (administrative override)
func (a *AdminProcessor) DeleteParticipant(ctx context.Context, id uuid.UUID) error {
	if err := a.store.DeleteParticipant(ctx, id); err != nil {
		a.logger.Error(ctx, "failed to delete participant", err)
		return err
	}
	a.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "participant_id", Value: id.String()},
	), "participant deleted by admin")
	return nil
}

// ListReferrals returns a page of referral events with the total count
func (a *AdminProcessor) ListReferrals(ctx context.Context, page Page) ([]store.Referral, int, error) {
	page = page.normalized()
	referrals, err := a.store.ListReferrals(ctx, store.ListReferralsParams{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		a.logger.Error(ctx, "failed to list referrals", err)
		return nil, 0, err
	}
	total, err := a.store.CountReferrals(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to count referrals", err)
		return nil, 0, err
	}
	return referrals, total, nil
}

// DeleteReferral removes a referral event record
func (a *AdminProcessor) DeleteReferral(ctx context.Context, id uuid.UUID) error {
	if err := a.store.DeleteReferral(ctx, id); err != nil {
		a.logger.Error(ctx, "failed to delete referral", err)
		return err
	}
	return nil
}

// ListSocialShares returns a page of share claims with the total count
func (a *AdminProcessor) ListSocialShares(ctx context.Context, page Page) ([]store.SocialShare, int, error) {
	page = page.normalized()
	shares, err := a.store.ListSocialShares(ctx, store.ListSocialSharesParams{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		a.logger.Error(ctx, "failed to list social shares", err)
		return nil, 0, err
	}
	total, err := a.store.CountSocialShares(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to count social shares", err)
		return nil, 0, err
	}
	return shares, total, nil
}

// DeleteSocialShare removes a share claim record
func (a *AdminProcessor) DeleteSocialShare(ctx context.Context, id uuid.UUID) error {
	if err := a.store.DeleteSocialShare(ctx, id); err != nil {
		a.logger.Error(ctx, "failed to delete social share", err)
		return err
	}
	return nil
}

// ListSubscribers returns a page of newsletter subscribers with the total count
func (a *AdminProcessor) ListSubscribers(ctx context.Context, page Page) ([]store.Subscriber, int, error) {
	page = page.normalized()
	subscribers, err := a.store.ListSubscribers(ctx, store.ListSubscribersParams{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		a.logger.Error(ctx, "failed to list subscribers", err)
		return nil, 0, err
	}
	total, err := a.store.CountSubscribers(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to count subscribers", err)
		return nil, 0, err
	}
	return subscribers, total, nil
}

// DeleteSubscriber removes a newsletter subscriber
func (a *AdminProcessor) DeleteSubscriber(ctx context.Context, id uuid.UUID) error {
	if err := a.store.DeleteSubscriber(ctx, id); err != nil {
		a.logger.Error(ctx, "failed to delete subscriber", err)
		return err
	}
	return nil
}
