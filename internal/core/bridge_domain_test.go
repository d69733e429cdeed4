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

func validBridgeDomain() *model.BridgeDomain {
	return &model.BridgeDomain{
		ID:                       "bd-1",
		Name:                     "WebServersBD",
		VRFID:                    "vrf-1",
		MACAddress:               model.DefaultBDMACAddress,
		MultiDestinationFlooding: model.BDMultiDestinationFloodingBD,
		UnknownIPv4Multicast:     model.BDUnknownMulticastFlood,
		UnknownIPv6Multicast:     model.BDUnknownMulticastFlood,
		UnknownUnicast:           model.BDUnknownUnicastProxy,
		CreatedAt:                time.Now(),
		UpdatedAt:                time.Now(),
	}
}

func TestBridgeDomainService_Create_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	err := svc.Create(ctx, validBridgeDomain())
	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestBridgeDomainService_Create_MissingVRF(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainService(db)

	bd := validBridgeDomain()
	bd.VRFID = ""

	err := svc.Create(context.Background(), bd)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "vrf_id", fieldErr.Field)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}

func TestBridgeDomainService_Create_InvalidMultiDestinationFlooding(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainService(db)

	bd := validBridgeDomain()
	bd.MultiDestinationFlooding = "broadcast"

	err := svc.Create(context.Background(), bd)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "multi_destination_flooding", fieldErr.Field)
}

func TestBridgeDomainService_Create_InvalidUnknownUnicast(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainService(db)

	bd := validBridgeDomain()
	bd.UnknownUnicast = "drop"

	err := svc.Create(context.Background(), bd)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "unknown_unicast", fieldErr.Field)
}

func TestBridgeDomainService_Create_InvalidMAC(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainService(db)

	bd := validBridgeDomain()
	bd.MACAddress = "not-a-mac"

	err := svc.Create(context.Background(), bd)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "mac_address", fieldErr.Field)
}

func TestBridgeDomainService_TenantID(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainService(db)
	ctx := context.Background()

	row := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*string)) = "tenant-1"
		return nil
	}}
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), []any{"bd-1"}).Return(row)

	tenantID, err := svc.TenantID(ctx, "bd-1")
	require.NoError(t, err)
	assert.Equal(t, "tenant-1", tenantID)
	db.AssertExpectations(t)
}

func TestBridgeDomainService_Delete_Referenced(t *testing.T) {
	db := &mockDB{}
	svc := NewBridgeDomainService(db)
	ctx := context.Background()

	pgErr := &pgconn.PgError{Code: "23503"}
	db.On("Exec", ctx, mock.AnythingOfType("string"), []any{"bd-1"}).Return(pgconn.CommandTag{}, pgErr)

	err := svc.Delete(ctx, "bd-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReferenced)
}
