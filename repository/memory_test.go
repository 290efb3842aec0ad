package repository

import (
	"context"
	"testing"

	"github.com/lfmcarvalho/gerenciamento_propriedades/models"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepo_AbsentIsNil(t *testing.T) {
	t.Parallel()

	repo := NewMemoryUserRepo()
	ctx := context.Background()

	user, err := repo.FindByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	require.Nil(t, user)

	user, err = repo.FindByID(ctx, 99)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestMemoryUserRepo_InsertAssignsIDs(t *testing.T) {
	t.Parallel()

	repo := NewMemoryUserRepo()
	ctx := context.Background()

	first := &models.User{Name: "Ana", Email: "a@x.com", Password: "hash"}
	second := &models.User{Name: "Bia", Email: "b@x.com", Password: "hash"}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
	require.False(t, first.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "b@x.com", found.Email)
}

func TestMemoryPropertyRepo_DeleteCount(t *testing.T) {
	t.Parallel()

	repo := NewMemoryPropertyRepo()
	ctx := context.Background()

	property := &models.Property{Address: "Rua X", Type: "casa", Status: "disponivel", OwnerID: 1}
	require.NoError(t, repo.Insert(ctx, property))

	deleted, err := repo.DeleteByID(ctx, property.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	deleted, err = repo.DeleteByID(ctx, property.ID)
	require.NoError(t, err)
	require.Zero(t, deleted)
}

func TestMemoryPropertyRepo_FindByOwnerNeverNil(t *testing.T) {
	t.Parallel()

	repo := NewMemoryPropertyRepo()

	props, err := repo.FindByOwner(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, props)
	require.Empty(t, props)
}
