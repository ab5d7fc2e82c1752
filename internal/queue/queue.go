// internal/queue/queue.go
package queue

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/unclebandit/campaigntrack/internal/model"
)

// Topic carrying campaign lifecycle events.
const CampaignEventsTopic = "campaign_events"

// Event types published on campaign mutations.
const (
	EventCampaignCreated       = "campaign.created"
	EventCampaignStatusChanged = "campaign.status_changed"
	EventCampaignDeleted       = "campaign.deleted"
)

// Event is a campaign lifecycle notification. Publishing is
// best-effort: a failed publish is logged and never fails the API call
// that triggered it.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	CampaignID int64     `json:"campaign_id"`
	Name       string    `json:"name,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewCampaignEvent builds an Event for the given campaign.
func NewCampaignEvent(eventType string, c *model.Campaign) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		CampaignID: c.ID,
		Name:       c.Name,
		Status:     c.Status,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher is the write side used by the service layer.
type Publisher interface {
	Publish(topic string, payload any) error
}

// Queue extends Publisher with in-process subscriptions.
type Queue interface {
	Publisher
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is the default event transport when no broker is
// configured. Handlers run asynchronously with bounded retries.
type InMemoryQueue struct {
	logger *zap.Logger

	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

func NewInMemoryQueue(logger *zap.Logger) *InMemoryQueue {
	return &InMemoryQueue{
		logger:   logger,
		handlers: make(map[string][]func(payload any) error),
	}
}

func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		go q.deliver(topic, handler, payload)
	}
	return nil
}

const maxDeliveryAttempts = 3

func (q *InMemoryQueue) deliver(topic string, handler func(payload any) error, payload any) {
	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		err := handler(payload)
		if err == nil {
			return
		}
		q.logger.Warn("event delivery failed",
			zap.String("topic", topic),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == maxDeliveryAttempts {
			return
		}
		// Linear backoff before the next attempt.
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
}

func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartCampaignEventsSubscriber attaches an audit subscriber that logs
// every campaign lifecycle event flowing through the in-memory queue.
func StartCampaignEventsSubscriber(q Queue, logger *zap.Logger) {
	_ = q.Subscribe(CampaignEventsTopic, func(payload any) error {
		event, ok := payload.(Event)
		if !ok {
			return fmt.Errorf("unexpected payload type %T", payload)
		}
		logger.Info("campaign event",
			zap.String("event_id", event.ID),
			zap.String("type", event.Type),
			zap.Int64("campaign_id", event.CampaignID),
			zap.String("status", event.Status),
		)
		return nil
	})
}
