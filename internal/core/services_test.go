package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	db := &mockDB{}
	services := NewServices(db)

	require.NotNil(t, services)
	assert.NotNil(t, services.Tenant)
	assert.NotNil(t, services.AppProfile)
	assert.NotNil(t, services.VRF)
	assert.NotNil(t, services.BridgeDomain)
	assert.NotNil(t, services.BridgeDomainSubnet)
	assert.NotNil(t, services.EndpointGroup)
	assert.NotNil(t, services.Search)
	assert.NotNil(t, services.APIKey)
}
