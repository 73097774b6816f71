package taskqueue

import (
	"context"
	"encoding/json"
	"time"

	"community-events-api/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task types consumed by the external notification collaborator.
const (
	TypeEventStatusChanged = "event:status_changed"
	TypeEventDeleted       = "event:deleted"
)

const queueName = "lifecycle"

// Enqueuer is the outbox boundary: this engine enqueues lifecycle facts,
// delivery to users happens elsewhere.
type Enqueuer interface {
	EnqueueEventStatusChanged(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID, status string) error
	EnqueueEventDeleted(ctx context.Context, eventID uuid.UUID) error
}

type EventStatusChangedPayload struct {
	EventID     uuid.UUID `json:"event_id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	Status      string    `json:"status"`
	DecidedAt   time.Time `json:"decided_at"`
}

type EventDeletedPayload struct {
	EventID   uuid.UUID `json:"event_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

type Client struct {
	inner *asynq.Client
}

func NewClient(addr, password string, db int) *Client {
	return &Client{
		inner: asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password, DB: db}),
	}
}

func (c *Client) Close() {
	_ = c.inner.Close()
}

func (c *Client) EnqueueEventStatusChanged(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID, status string) error {
	payload, err := json.Marshal(EventStatusChangedPayload{
		EventID:     eventID,
		OrganizerID: organizerID,
		Status:      status,
		DecidedAt:   time.Now(),
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeEventStatusChanged, payload)
	if _, err := c.inner.EnqueueContext(ctx, task, asynq.Queue(queueName)); err != nil {
		logger.Error("Taskqueue:EnqueueEventStatusChanged", "event_id", eventID.String(), "error", err)
		return err
	}
	return nil
}

func (c *Client) EnqueueEventDeleted(ctx context.Context, eventID uuid.UUID) error {
	payload, err := json.Marshal(EventDeletedPayload{EventID: eventID, DeletedAt: time.Now()})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeEventDeleted, payload)
	if _, err := c.inner.EnqueueContext(ctx, task, asynq.Queue(queueName)); err != nil {
		logger.Error("Taskqueue:EnqueueEventDeleted", "event_id", eventID.String(), "error", err)
		return err
	}
	return nil
}
