package queue

import (
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/unclebandit/campaigntrack/internal/model"
)

func TestInMemoryQueuePublishSubscribe(t *testing.T) {
	q := NewInMemoryQueue(zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)

	var mu sync.Mutex
	var received []Event

	err := q.Subscribe(CampaignEventsTopic, func(payload any) error {
		defer wg.Done()
		mu.Lock()
		defer mu.Unlock()
		received = append(received, payload.(Event))
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	event := NewCampaignEvent(EventCampaignCreated, &model.Campaign{ID: 42, Name: "Launch", Status: "Pending"})
	if err := q.Publish(CampaignEventsTopic, event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].Type != EventCampaignCreated {
		t.Errorf("expected type %s, got %s", EventCampaignCreated, received[0].Type)
	}
	if received[0].CampaignID != 42 {
		t.Errorf("expected campaign id 42, got %d", received[0].CampaignID)
	}
}

func TestInMemoryQueueNoSubscribers(t *testing.T) {
	q := NewInMemoryQueue(zap.NewNop())

	err := q.Publish(CampaignEventsTopic, Event{})
	if err == nil {
		t.Fatal("expected error when publishing without subscribers")
	}
}

func TestNewCampaignEventFields(t *testing.T) {
	c := &model.Campaign{ID: 7, Name: "Launch", Status: "Active"}
	event := NewCampaignEvent(EventCampaignStatusChanged, c)

	if event.ID == "" {
		t.Error("expected a non-empty event id")
	}
	if event.CampaignID != 7 || event.Name != "Launch" || event.Status != "Active" {
		t.Errorf("unexpected event: %+v", event)
	}
	if event.OccurredAt.IsZero() {
		t.Error("expected occurred_at to be set")
	}
}
