package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/acifab/fabric-inventory/internal/core"
	"github.com/acifab/fabric-inventory/internal/model"
)

func bridgeDomainRouter(db *mockDB) chi.Router {
	h := NewBridgeDomain(core.NewBridgeDomainService(db))
	r := chi.NewRouter()
	r.Post("/vrfs/{vrfID}/bridge-domains", h.Create)
	return r
}

func TestBridgeDomainHandler_Create_AppliesDefaults(t *testing.T) {
	db := &mockDB{}
	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	r := httptest.NewRequest("POST", "/vrfs/vrf-1/bridge-domains", strings.NewReader(`{"name": "WebBD"}`))
	w := httptest.NewRecorder()
	bridgeDomainRouter(db).ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var bd model.BridgeDomain
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bd))
	assert.Equal(t, "vrf-1", bd.VRFID)
	assert.Equal(t, model.DefaultBDMACAddress, bd.MACAddress)
	assert.Equal(t, model.BDMultiDestinationFloodingBD, bd.MultiDestinationFlooding)
	assert.Equal(t, model.BDUnknownUnicastProxy, bd.UnknownUnicast)
	assert.Equal(t, model.BDUnknownMulticastFlood, bd.UnknownIPv4Multicast)
	assert.True(t, bd.UnicastRoutingEnabled)
	assert.True(t, bd.LimitIPLearnEnabled)
	assert.True(t, bd.IPDataPlaneLearningEnabled)
	assert.False(t, bd.ARPFloodingEnabled)
}

func TestBridgeDomainHandler_Create_OverridesDefaults(t *testing.T) {
	db := &mockDB{}
	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	body := `{"name": "WebBD", "unknown_unicast": "flood", "unicast_routing_enabled": false}`
	r := httptest.NewRequest("POST", "/vrfs/vrf-1/bridge-domains", strings.NewReader(body))
	w := httptest.NewRecorder()
	bridgeDomainRouter(db).ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var bd model.BridgeDomain
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bd))
	assert.Equal(t, model.BDUnknownUnicastFlood, bd.UnknownUnicast)
	assert.False(t, bd.UnicastRoutingEnabled)
}

func TestBridgeDomainHandler_Create_InvalidForwardingMethod(t *testing.T) {
	db := &mockDB{}

	body := `{"name": "WebBD", "multi_destination_flooding": "broadcast"}`
	r := httptest.NewRequest("POST", "/vrfs/vrf-1/bridge-domains", strings.NewReader(body))
	w := httptest.NewRecorder()
	bridgeDomainRouter(db).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}
