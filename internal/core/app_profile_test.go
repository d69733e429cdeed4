package core

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/acifab/fabric-inventory/internal/model"
	"github.com/acifab/fabric-inventory/internal/naming"
)

func TestAppProfileService_Create_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewAppProfileService(db)
	ctx := context.Background()

	ap := &model.AppProfile{
		ID:        "ap-1",
		Name:      "WebApp",
		TenantID:  "tenant-1",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	err := svc.Create(ctx, ap)
	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestAppProfileService_Create_InvalidAlias(t *testing.T) {
	db := &mockDB{}
	svc := NewAppProfileService(db)

	ap := &model.AppProfile{
		ID:        "ap-1",
		Name:      "WebApp",
		NameAlias: "Invalid Alias",
		TenantID:  "tenant-1",
	}

	err := svc.Create(context.Background(), ap)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "name_alias", fieldErr.Field)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppProfileService_Create_MissingTenant(t *testing.T) {
	db := &mockDB{}
	svc := NewAppProfileService(db)

	ap := &model.AppProfile{ID: "ap-1", Name: "WebApp"}

	err := svc.Create(context.Background(), ap)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "tenant_id", fieldErr.Field)
}

func TestAppProfileService_Update_DuplicateName(t *testing.T) {
	db := &mockDB{}
	svc := NewAppProfileService(db)
	ctx := context.Background()

	ap := &model.AppProfile{ID: "ap-1", Name: "WebApp", TenantID: "tenant-1"}
	pgErr := &pgconn.PgError{Code: "23505"}
	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, pgErr)

	err := svc.Update(ctx, ap)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}
