package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"zatch-server/internal/jobs"
	"zatch-server/internal/observability"
	"zatch-server/internal/store"

	"github.com/hibiken/asynq"
)

// ShareWorker retries compensating deletes for share claims whose boost
// update never landed. A returned error keeps the task on the retry queue.
type ShareWorker struct {
	store  *store.Store
	logger *observability.Logger
}

// NewShareWorker creates a new share reconciliation worker
func NewShareWorker(store *store.Store, logger *observability.Logger) *ShareWorker {
	return &ShareWorker{
		store:  store,
		logger: logger,
	}
}

// ProcessShareReconcileTask handles a share:reconcile task
func (w *ShareWorker) ProcessShareReconcileTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.ShareReconcilePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// Malformed payloads never become valid; drop instead of retrying.
		w.logger.Error(ctx, "failed to unmarshal share reconcile payload", err)
		return fmt.Errorf("unmarshal share reconcile payload: %v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "share_id", Value: payload.ShareID.String()},
		observability.Field{Key: "participant_id", Value: payload.ParticipantID.String()},
		observability.Field{Key: "platform", Value: payload.Platform},
	)

	err := w.store.DeleteSocialShare(ctx, payload.ShareID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Already reconciled.
			w.logger.Info(ctx, "orphaned share already deleted")
			return nil
		}
		w.logger.Error(ctx, "failed to delete orphaned share", err)
		return fmt.Errorf("delete orphaned share: %w", err)
	}

	w.logger.Info(ctx, "reconciled orphaned share claim")
	return nil
}
