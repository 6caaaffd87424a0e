package jobs

import (
	"context"
	"fmt"
	"time"
	"zatch-server/internal/jobs"
	"zatch-server/internal/observability"
	"zatch-server/internal/store"
)

// OrphanShareScanJob sweeps for share rows whose boost never reached the
// participant. These are leftovers from crashes between the share insert and
// the failed compensating delete; each hit is handed to the reconciliation
// queue rather than deleted inline so deletes get asynq's retry semantics.
type OrphanShareScanJob struct {
	store     *store.Store
	jobClient *jobs.Client
	logger    *observability.Logger
	interval  time.Duration
	minAge    time.Duration
}

// NewOrphanShareScanJob creates a new orphan share scan job
func NewOrphanShareScanJob(store *store.Store, jobClient *jobs.Client, logger *observability.Logger, interval time.Duration) *OrphanShareScanJob {
	if interval == 0 {
		interval = time.Hour
	}

	return &OrphanShareScanJob{
		store:     store,
		jobClient: jobClient,
		logger:    logger,
		interval:  interval,
		// Ignore rows younger than this so in-flight claims are never swept.
		minAge: 10 * time.Minute,
	}
}

// Name returns the job name
func (j *OrphanShareScanJob) Name() string {
	return "orphan_share_scan"
}

// Schedule returns how often the job should run
func (j *OrphanShareScanJob) Schedule() time.Duration {
	return j.interval
}

// Run finds orphaned share rows and enqueues reconciliation for each
func (j *OrphanShareScanJob) Run(ctx context.Context) error {
	cutoff := time.Now().Add(-j.minAge)

	orphans, err := j.store.ListOrphanedShares(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list orphaned shares: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	j.logger.Info(ctx, fmt.Sprintf("Found %d orphaned share rows", len(orphans)))

	var failed int
	for _, share := range orphans {
		err := j.jobClient.EnqueueShareReconciliation(ctx, jobs.ShareReconcilePayload{
			ShareID:       share.ID,
			ParticipantID: share.ParticipantID,
			Platform:      string(share.Platform),
		})
		if err != nil {
			failed++
			j.logger.Error(ctx, fmt.Sprintf("failed to enqueue reconciliation for share %s", share.ID), err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to enqueue %d of %d reconciliation tasks", failed, len(orphans))
	}

	return nil
}
