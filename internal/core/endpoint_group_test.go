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

func validEndpointGroup() *model.EndpointGroup {
	return &model.EndpointGroup{
		ID:             "epg-1",
		Name:           "WebServers",
		AppProfileID:   "ap-1",
		BridgeDomainID: "bd-1",
		QoSClass:       model.QoSClassUnspecified,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func expectTenantScope(db *mockDB, ctx context.Context, apTenantID, bdTenantID, bdTenantName string) {
	apRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*string)) = apTenantID
		return nil
	}}
	db.On("QueryRow", ctx, sqlContains("FROM app_profiles"), []any{"ap-1"}).Return(apRow)

	bdRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*string)) = bdTenantID
		*(dest[1].(*string)) = bdTenantName
		return nil
	}}
	db.On("QueryRow", ctx, sqlContains("FROM bridge_domains"), []any{"bd-1"}).Return(bdRow)
}

func TestEndpointGroupService_Create_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewEndpointGroupService(db)
	ctx := context.Background()

	expectTenantScope(db, ctx, "tenant-1", "tenant-1", "ACITestTenant1")
	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	err := svc.Create(ctx, validEndpointGroup())
	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestEndpointGroupService_Create_CrossTenantRejected(t *testing.T) {
	db := &mockDB{}
	svc := NewEndpointGroupService(db)
	ctx := context.Background()

	expectTenantScope(db, ctx, "tenant-1", "tenant-2", "OtherTenant")

	err := svc.Create(ctx, validEndpointGroup())
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "bridge_domain_id", fieldErr.Field)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}

func TestEndpointGroupService_Create_CommonTenantAllowed(t *testing.T) {
	db := &mockDB{}
	svc := NewEndpointGroupService(db)
	ctx := context.Background()

	// Bridge domains under the shared "common" tenant are usable from any
	// application profile.
	expectTenantScope(db, ctx, "tenant-1", "tenant-common", model.SharedTenantName)
	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	err := svc.Create(ctx, validEndpointGroup())
	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestEndpointGroupService_Create_MissingBridgeDomain(t *testing.T) {
	db := &mockDB{}
	svc := NewEndpointGroupService(db)

	epg := validEndpointGroup()
	epg.BridgeDomainID = ""

	err := svc.Create(context.Background(), epg)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "bridge_domain_id", fieldErr.Field)
	db.AssertNotCalled(t, "QueryRow", mock.Anything, mock.Anything, mock.Anything)
}

func TestEndpointGroupService_Create_InvalidQoSClass(t *testing.T) {
	db := &mockDB{}
	svc := NewEndpointGroupService(db)

	epg := validEndpointGroup()
	epg.QoSClass = "level9"

	err := svc.Create(context.Background(), epg)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "qos_class", fieldErr.Field)
}

func TestEndpointGroupService_Update_RechecksTenantScope(t *testing.T) {
	db := &mockDB{}
	svc := NewEndpointGroupService(db)
	ctx := context.Background()

	expectTenantScope(db, ctx, "tenant-1", "tenant-2", "OtherTenant")

	err := svc.Update(ctx, validEndpointGroup())
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "bridge_domain_id", fieldErr.Field)
}
