// internal/repository/campaign_repository.go
package repository

import (
	"context"
	"sync"

	appErrors "github.com/unclebandit/campaigntrack/internal/errors"
	"github.com/unclebandit/campaigntrack/internal/model"
)

type CampaignRepositoryInterface interface {
	// List returns every campaign in insertion order.
	List(ctx context.Context) ([]model.Campaign, error)
	GetByID(ctx context.Context, id int64) (*model.Campaign, error)
	Create(ctx context.Context, c *model.Campaign) error
	// UpdateStatus mutates only the status field of the matched record
	// and returns the updated record.
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Campaign, error)
	Delete(ctx context.Context, id int64) error
}

// FileCampaignRepository persists campaigns as a single JSON array file,
// rewritten wholesale on every mutation. The mutex serializes
// read-modify-write cycles within this process; concurrent writers from
// other processes can still race and lose updates.
type FileCampaignRepository struct {
	Path string

	mu sync.Mutex
}

func NewFileCampaignRepository(path string) *FileCampaignRepository {
	return &FileCampaignRepository{Path: path}
}

func (r *FileCampaignRepository) List(ctx context.Context) ([]model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return loadCollection[model.Campaign](r.Path)
}

func (r *FileCampaignRepository) GetByID(ctx context.Context, id int64) (*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaigns, err := loadCollection[model.Campaign](r.Path)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		if campaigns[i].ID == id {
			c := campaigns[i]
			return &c, nil
		}
	}
	return nil, appErrors.NewCampaignNotFound(id)
}

func (r *FileCampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaigns, err := loadCollection[model.Campaign](r.Path)
	if err != nil {
		return err
	}
	campaigns = append(campaigns, *c)
	return saveCollection(r.Path, campaigns)
}

func (r *FileCampaignRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaigns, err := loadCollection[model.Campaign](r.Path)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		if campaigns[i].ID == id {
			campaigns[i].Status = status
			if err := saveCollection(r.Path, campaigns); err != nil {
				return nil, err
			}
			c := campaigns[i]
			return &c, nil
		}
	}
	return nil, appErrors.NewCampaignNotFound(id)
}

func (r *FileCampaignRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaigns, err := loadCollection[model.Campaign](r.Path)
	if err != nil {
		return err
	}
	kept := campaigns[:0]
	for _, c := range campaigns {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(campaigns) {
		return appErrors.NewCampaignNotFound(id)
	}
	return saveCollection(r.Path, kept)
}

var _ CampaignRepositoryInterface = (*FileCampaignRepository)(nil)
