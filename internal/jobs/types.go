package jobs

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeShareReconcile = "share:reconcile"
)

// Queue names
const (
	QueueDefault = "default"
)

// ShareReconcilePayload identifies a share row whose compensating delete
// failed inline and must be retried out of band.
type ShareReconcilePayload struct {
	ShareID       uuid.UUID `json:"share_id"`
	ParticipantID uuid.UUID `json:"participant_id"`
	Platform      string    `json:"platform"`
}

// NewShareReconcileTask creates a new share reconciliation task
func NewShareReconcileTask(payload ShareReconcilePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeShareReconcile, data, asynq.Queue(QueueDefault), asynq.MaxRetry(5)), nil
}
