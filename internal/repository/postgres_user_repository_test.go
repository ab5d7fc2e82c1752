package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/unclebandit/campaigntrack/internal/model"
)

func setupUserMock(t *testing.T) (*PostgresUserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresUserRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestPostgresUserRepository_GetByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
		AddRow(int64(1), "Alice", "alice@example.com", "hash")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password_hash FROM users WHERE email=$1`)).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.Name != "Alice" {
		t.Errorf("unexpected user: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresUserRepository_GetByEmailMissing(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password_hash FROM users WHERE email=$1`)).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}))

	u, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Errorf("expected nil user, got %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresUserRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	u := &model.User{ID: 9, Name: "Bob", Email: "bob@example.com", PasswordHash: "hash"}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`)).
		WithArgs(u.ID, u.Name, u.Email, u.PasswordHash).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
