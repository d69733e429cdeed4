package core

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/acifab/fabric-inventory/internal/model"
	"github.com/acifab/fabric-inventory/internal/naming"
)

func validSubnet() *model.BridgeDomainSubnet {
	return &model.BridgeDomainSubnet{
		ID:             "subnet-1",
		Name:           "WebGateway",
		BridgeDomainID: "bd-1",
		GatewayIP:      "10.0.0.1/24",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func sqlContains(substr string) any {
	return mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, substr)
	})
}

func TestBridgeDomainSubnetService_Create_ResolvesVRF(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainSubnetService(db)
	ctx := context.Background()

	vrfRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*string)) = "vrf-9"
		return nil
	}}
	db.On("QueryRow", ctx, sqlContains("SELECT vrf_id FROM bridge_domains"), []any{"bd-1"}).Return(vrfRow)
	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	sn := validSubnet()
	err := svc.Create(ctx, sn)
	require.NoError(t, err)
	// The subnet inherits its bridge domain's routing context.
	assert.Equal(t, "vrf-9", sn.VRFID)
	db.AssertExpectations(t)
}

func TestBridgeDomainSubnetService_Create_BridgeDomainMissing(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainSubnetService(db)
	ctx := context.Background()

	vrfRow := &mockRow{scanFunc: func(dest ...any) error {
		return pgx.ErrNoRows
	}}
	db.On("QueryRow", ctx, sqlContains("SELECT vrf_id FROM bridge_domains"), []any{"bd-1"}).Return(vrfRow)

	err := svc.Create(ctx, validSubnet())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}

func TestBridgeDomainSubnetService_Create_InvalidGateway(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainSubnetService(db)

	sn := validSubnet()
	sn.GatewayIP = "10.0.0.1"

	err := svc.Create(context.Background(), sn)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "gateway_ip", fieldErr.Field)
}

func TestBridgeDomainSubnetService_Create_SecondPreferredRejected(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainSubnetService(db)
	ctx := context.Background()

	vrfRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*string)) = "vrf-1"
		return nil
	}}
	db.On("QueryRow", ctx, sqlContains("SELECT vrf_id FROM bridge_domains"), []any{"bd-1"}).Return(vrfRow)

	// Another subnet already holds the preferred gateway slot.
	countRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*int)) = 1
		return nil
	}}
	db.On("QueryRow", ctx, sqlContains("preferred_ip_address_enabled"), mock.Anything).Return(countRow)

	sn := validSubnet()
	sn.PreferredIPAddressEnabled = true

	err := svc.Create(ctx, sn)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "preferred_ip_address_enabled", fieldErr.Field)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}

func TestBridgeDomainSubnetService_Update_PreferredAllowedWhenAlone(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainSubnetService(db)
	ctx := context.Background()

	countRow := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*int)) = 0
		return nil
	}}
	db.On("QueryRow", ctx, sqlContains("preferred_ip_address_enabled"), mock.Anything).Return(countRow)
	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	sn := validSubnet()
	sn.PreferredIPAddressEnabled = true

	err := svc.Update(ctx, sn)
	require.NoError(t, err)
	db.AssertExpectations(t)
}
