package jobs

import (
	"context"
	"fmt"
	"zatch-server/internal/observability"

	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisAddr, redisPassword string, redisDB int, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueShareReconciliation enqueues a share reconciliation job
func (c *Client) EnqueueShareReconciliation(ctx context.Context, payload ShareReconcilePayload) error {
	task, err := NewShareReconcileTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create share reconcile task", err)
		return fmt.Errorf("failed to create share reconcile task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue share reconcile task", err)
		return fmt.Errorf("failed to enqueue share reconcile task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued share reconcile task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
