package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaigntrack/internal/model"
)

func newUserRepo(t *testing.T) *FileUserRepository {
	t.Helper()
	return NewFileUserRepository(filepath.Join(t.TempDir(), "users.json"))
}

func TestFileUserRepository_GetByEmailMissing(t *testing.T) {
	repo := newUserRepo(t)

	u, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestFileUserRepository_CreateAndGet(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	user := model.User{ID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, &user))

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user, *got)
}

func TestFileUserRepository_EmailMatchIsExact(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{ID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}))

	got, err := repo.GetByEmail(ctx, "Alice@Example.com")
	require.NoError(t, err)
	require.Nil(t, got)
}
