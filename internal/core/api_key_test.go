package core

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyService_Create(t *testing.T) {
	db := &mockDB{}
	svc := NewAPIKeyService(db)
	ctx := context.Background()

	db.On("Exec", ctx, sqlContains("INSERT INTO api_keys"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	createdAt := time.Now()
	row := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*time.Time)) = createdAt
		return nil
	}}
	db.On("QueryRow", ctx, sqlContains("created_at"), mock.Anything).Return(row)

	key, rawKey, err := svc.Create(ctx, "automation")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rawKey, "fab_"))
	// Prefix plus 32 random bytes hex encoded.
	assert.Len(t, rawKey, 4+64)
	assert.Equal(t, rawKey[:12], key.KeyPrefix)
	assert.Equal(t, "automation", key.Name)
	assert.Equal(t, createdAt, key.CreatedAt)
	db.AssertExpectations(t)
}

func TestAPIKeyService_Create_Unique(t *testing.T) {
	db := &mockDB{}
	svc := NewAPIKeyService(db)
	ctx := context.Background()

	db.On("Exec", ctx, sqlContains("INSERT INTO api_keys"), mock.Anything).Return(pgconn.CommandTag{}, nil)
	row := &mockRow{scanFunc: func(dest ...any) error { return nil }}
	db.On("QueryRow", ctx, sqlContains("created_at"), mock.Anything).Return(row)

	_, first, err := svc.Create(ctx, "one")
	require.NoError(t, err)
	_, second, err := svc.Create(ctx, "two")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAPIKeyService_List_Pagination(t *testing.T) {
	db := &mockDB{}
	svc := NewAPIKeyService(db)
	ctx := context.Background()

	makeRow := func(id string) func(dest ...any) error {
		return func(dest ...any) error {
			*(dest[0].(*string)) = id
			return nil
		}
	}
	rows := newMockRows(makeRow("k1"), makeRow("k2"), makeRow("k3"))
	db.On("Query", ctx, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil)

	keys, hasMore, err := svc.List(ctx, 2, "")
	require.NoError(t, err)
	assert.True(t, hasMore)
	require.Len(t, keys, 2)
}

func TestAPIKeyService_Revoke(t *testing.T) {
	db := &mockDB{}
	svc := NewAPIKeyService(db)
	ctx := context.Background()

	db.On("Exec", ctx, sqlContains("revoked_at = now()"), []any{"key-1"}).Return(pgconn.CommandTag{}, nil)

	err := svc.Revoke(ctx, "key-1")
	require.NoError(t, err)
	db.AssertExpectations(t)
}
