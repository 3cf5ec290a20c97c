package repository

import (
	"context"
	"testing"

	"camp-portal/backend/models"
	"camp-portal/backend/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)

	u := &models.User{ID: uuid.NewString(), Email: " Anna@Example.com ", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, u, "Анна"))
	assert.Equal(t, "anna@example.com", u.Email)

	p, err := profiles.Find(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Анна", p.FullName)

	dup := &models.User{ID: uuid.NewString(), Email: "ANNA@example.com", PasswordHash: "hash"}
	assert.ErrorIs(t, users.Create(ctx, dup, "Другая"), ErrDuplicate)

	// The failed transaction must not leave a profile behind.
	_, err = profiles.Find(ctx, dup.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := profiles.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUserRepositoryLookups(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	users := NewUserRepository(db)
	seeded := testutil.SeedUser(t, db, "ivan@example.com", "Иван", "secret1")

	byEmail, err := users.FindByEmail(ctx, "IVAN@example.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, byEmail.ID)

	byID, err := users.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", byID.Email)

	_, err = users.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = users.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, users.UpdatePassword(ctx, seeded.ID, "new-hash"))
	byID, err = users.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", byID.PasswordHash)

	assert.ErrorIs(t, users.UpdatePassword(ctx, uuid.NewString(), "x"), ErrNotFound)
}

func TestProfileRepositoryUpdateFullName(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	profiles := NewProfileRepository(db)
	u := testutil.SeedUser(t, db, "olga@example.com", "Ольга", "secret1")

	p, err := profiles.UpdateFullName(ctx, u.ID, "Ольга Петрова")
	require.NoError(t, err)
	assert.Equal(t, "Ольга Петрова", p.FullName)

	// A missing profile row is created on update.
	orphan := uuid.NewString()
	p, err = profiles.UpdateFullName(ctx, orphan, "Без профиля")
	require.NoError(t, err)
	assert.Equal(t, orphan, p.ID)

	n, err := profiles.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
