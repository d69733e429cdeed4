package core

import (
	"context"
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

func validVRF() *model.VRF {
	return &model.VRF{
		ID:                      "vrf-1",
		Name:                    "ProdVRF",
		TenantID:                "tenant-1",
		PCEnforcementDirection:  model.VRFEnforcementDirectionIngress,
		PCEnforcementPreference: model.VRFEnforcementPreferenceEnforced,
		CreatedAt:               time.Now(),
		UpdatedAt:               time.Now(),
	}
}

func TestVRFService_Create_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewVRFService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	err := svc.Create(ctx, validVRF())
	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestVRFService_Create_MissingTenant(t *testing.T) {
	db := &mockDB{}
	svc := NewVRFService(db)

	vrf := validVRF()
	vrf.TenantID = ""

	err := svc.Create(context.Background(), vrf)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "tenant_id", fieldErr.Field)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}

func TestVRFService_Create_InvalidEnforcementDirection(t *testing.T) {
	db := &mockDB{}
	svc := NewVRFService(db)

	vrf := validVRF()
	vrf.PCEnforcementDirection = "sideways"

	err := svc.Create(context.Background(), vrf)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "pc_enforcement_direction", fieldErr.Field)
}

func TestVRFService_Create_InvalidEnforcementPreference(t *testing.T) {
	db := &mockDB{}
	svc := NewVRFService(db)

	vrf := validVRF()
	vrf.PCEnforcementPreference = "maybe"

	err := svc.Create(context.Background(), vrf)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "pc_enforcement_preference", fieldErr.Field)
}

func TestVRFService_Create_InvalidDNSLabel(t *testing.T) {
	db := &mockDB{}
	svc := NewVRFService(db)

	vrf := validVRF()
	vrf.DNSLabels = []string{"valid-label", "invalid label"}

	err := svc.Create(context.Background(), vrf)
	require.Error(t, err)

	var fieldErr *naming.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "dns_labels", fieldErr.Field)
}

func TestVRFService_GetByID_NotFound(t *testing.T) {
	db := &mockDB{}
	svc := NewVRFService(db)
	ctx := context.Background()

	row := &mockRow{scanFunc: func(dest ...any) error {
		return pgx.ErrNoRows
	}}
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), []any{"missing"}).Return(row)

	vrf, err := svc.GetByID(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, vrf)
	assert.ErrorIs(t, err, ErrNotFound)
}
