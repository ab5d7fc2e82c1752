// internal/service/campaign_service.go
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/campaigntrack/internal/errors"
	"github.com/unclebandit/campaigntrack/internal/model"
	"github.com/unclebandit/campaigntrack/internal/queue"
	"github.com/unclebandit/campaigntrack/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	Queue        queue.Publisher
	Logger       *zap.Logger

	ids idSource
}

// CampaignSummary holds the dashboard counts. Each count is an
// independent scan, so statuses outside the three conventional values
// contribute to Total only.
type CampaignSummary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// ListCampaigns returns campaigns in insertion order. An empty search
// and status return the full unfiltered sequence; search matches a
// case-insensitive substring of name or client, status matches exactly.
func (s *CampaignService) ListCampaigns(ctx context.Context, search, status string) ([]model.Campaign, error) {
	campaigns, err := s.CampaignRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" && status == "" {
		return campaigns, nil
	}

	needle := strings.ToLower(search)
	filtered := []model.Campaign{}
	for _, c := range campaigns {
		if status != "" && c.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Client), needle) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered, nil
}

func (s *CampaignService) CreateCampaign(ctx context.Context, name, client, startDate, status string) (*model.Campaign, error) {
	if name == "" || client == "" || startDate == "" || status == "" {
		return nil, appErrors.NewValidation("All fields are required")
	}

	c := &model.Campaign{
		ID:        s.ids.next(),
		Name:      name,
		Client:    client,
		StartDate: startDate,
		Status:    status,
	}
	if err := s.CampaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.publish(queue.NewCampaignEvent(queue.EventCampaignCreated, c))
	return c, nil
}

func (s *CampaignService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Campaign, error) {
	// The record is resolved before the status is validated: an
	// unknown id is not found even when the status is also missing.
	if _, err := s.CampaignRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if status == "" {
		return nil, appErrors.NewValidation("Status is required")
	}

	c, err := s.CampaignRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.publish(queue.NewCampaignEvent(queue.EventCampaignStatusChanged, c))
	return c, nil
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, id int64) error {
	c, err := s.CampaignRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.CampaignRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(queue.NewCampaignEvent(queue.EventCampaignDeleted, c))
	return nil
}

// Summarize computes the dashboard counts with one linear scan per
// status, matching how the client computed them.
func (s *CampaignService) Summarize(ctx context.Context) (*CampaignSummary, error) {
	campaigns, err := s.CampaignRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &CampaignSummary{
		Total:     len(campaigns),
		Active:    countByStatus(campaigns, model.StatusActive),
		Pending:   countByStatus(campaigns, model.StatusPending),
		Completed: countByStatus(campaigns, model.StatusCompleted),
	}, nil
}

func countByStatus(campaigns []model.Campaign, status string) int {
	n := 0
	for _, c := range campaigns {
		if c.Status == status {
			n++
		}
	}
	return n
}

// publish emits a lifecycle event, best-effort.
func (s *CampaignService) publish(event queue.Event) {
	if s.Queue == nil {
		return
	}
	if err := s.Queue.Publish(queue.CampaignEventsTopic, event); err != nil && s.Logger != nil {
		s.Logger.Warn("failed to publish campaign event",
			zap.String("type", event.Type),
			zap.Int64("campaign_id", event.CampaignID),
			zap.Error(err),
		)
	}
}
