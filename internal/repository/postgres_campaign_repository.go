// internal/repository/postgres_campaign_repository.go
package repository

import (
	"context"
	"database/sql"

	appErrors "github.com/unclebandit/campaigntrack/internal/errors"
	"github.com/unclebandit/campaigntrack/internal/model"
)

// PostgresCampaignRepository is the alternate storage backend, selected
// when DATABASE_DSN is set. IDs are still assigned by the service layer
// (wall-clock derived), not by a sequence, so both backends behave the
// same way.
type PostgresCampaignRepository struct {
	DB *sql.DB
}

func NewPostgresCampaignRepository(db *sql.DB) *PostgresCampaignRepository {
	return &PostgresCampaignRepository{DB: db}
}

func (r *PostgresCampaignRepository) List(ctx context.Context) ([]model.Campaign, error) {
	query := `SELECT id, name, client, start_date, status FROM campaigns ORDER BY id ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []model.Campaign{}
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(&c.ID, &c.Name, &c.Client, &c.StartDate, &c.Status); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *PostgresCampaignRepository) GetByID(ctx context.Context, id int64) (*model.Campaign, error) {
	query := `SELECT id, name, client, start_date, status FROM campaigns WHERE id=$1`
	var c model.Campaign
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Client, &c.StartDate, &c.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *PostgresCampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	query := `INSERT INTO campaigns (id, name, client, start_date, status) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, c.ID, c.Name, c.Client, c.StartDate, c.Status)
	return err
}

func (r *PostgresCampaignRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Campaign, error) {
	query := `
        UPDATE campaigns SET status=$1 WHERE id=$2
        RETURNING id, name, client, start_date, status
    `
	var c model.Campaign
	err := r.DB.QueryRowContext(ctx, query, status, id).Scan(&c.ID, &c.Name, &c.Client, &c.StartDate, &c.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *PostgresCampaignRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

var _ CampaignRepositoryInterface = (*PostgresCampaignRepository)(nil)
