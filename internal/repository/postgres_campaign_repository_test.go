package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	appErrors "github.com/unclebandit/campaigntrack/internal/errors"
	"github.com/unclebandit/campaigntrack/internal/model"
)

func setupCampaignMock(t *testing.T) (*PostgresCampaignRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresCampaignRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestPostgresCampaignRepository_List(t *testing.T) {
	repo, mock, cleanup := setupCampaignMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "client", "start_date", "status"}).
		AddRow(int64(1), "Launch", "Acme", "2024-01-01", "Pending").
		AddRow(int64(2), "Sale", "Globex", "2024-02-01", "Active")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, client, start_date, status FROM campaigns ORDER BY id ASC`)).
		WillReturnRows(rows)

	campaigns, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(campaigns))
	}
	if campaigns[0].Name != "Launch" || campaigns[1].Client != "Globex" {
		t.Errorf("unexpected campaigns: %+v", campaigns)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresCampaignRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupCampaignMock(t)
	defer cleanup()

	c := &model.Campaign{ID: 42, Name: "Launch", Client: "Acme", StartDate: "2024-01-01", Status: "Pending"}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO campaigns (id, name, client, start_date, status) VALUES ($1, $2, $3, $4, $5)`)).
		WithArgs(c.ID, c.Name, c.Client, c.StartDate, c.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresCampaignRepository_UpdateStatusNotFound(t *testing.T) {
	repo, mock, cleanup := setupCampaignMock(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE campaigns SET status").
		WithArgs("Active", int64(999999)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "client", "start_date", "status"}))

	_, err := repo.UpdateStatus(context.Background(), 999999, "Active")
	var notFound *appErrors.ErrCampaignNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresCampaignRepository_DeleteNotFound(t *testing.T) {
	repo, mock, cleanup := setupCampaignMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM campaigns WHERE id=$1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 7)
	var notFound *appErrors.ErrCampaignNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
