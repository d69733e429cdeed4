package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/acifab/fabric-inventory/internal/core"
	"github.com/acifab/fabric-inventory/internal/model"
)

func tenantRouter(db *mockDB) chi.Router {
	h := NewTenant(core.NewTenantService(db))
	r := chi.NewRouter()
	r.Post("/tenants", h.Create)
	r.Get("/tenants/{id}", h.Get)
	r.Delete("/tenants/{id}", h.Delete)
	return r
}

func TestTenantHandler_Create(t *testing.T) {
	db := &mockDB{}
	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	body := `{"name": "ACITestTenant1", "name_alias": "TestingTenant"}`
	r := httptest.NewRequest("POST", "/tenants", strings.NewReader(body))
	w := httptest.NewRecorder()
	tenantRouter(db).ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var tenant model.Tenant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tenant))
	assert.Equal(t, "ACITestTenant1", tenant.Name)
	assert.Equal(t, "TestingTenant", tenant.NameAlias)
	assert.NotEmpty(t, tenant.ID)
	db.AssertExpectations(t)
}

func TestTenantHandler_Create_InvalidName(t *testing.T) {
	db := &mockDB{}

	body := `{"name": "ACI Test Tenant 1"}`
	r := httptest.NewRequest("POST", "/tenants", strings.NewReader(body))
	w := httptest.NewRecorder()
	tenantRouter(db).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}

func TestTenantHandler_Get_NotFound(t *testing.T) {
	db := &mockDB{}
	row := &mockRow{scanFunc: func(dest ...any) error {
		return pgx.ErrNoRows
	}}
	db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), []any{"missing"}).Return(row)

	r := httptest.NewRequest("GET", "/tenants/missing", nil)
	w := httptest.NewRecorder()
	tenantRouter(db).ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTenantHandler_Delete_Referenced(t *testing.T) {
	db := &mockDB{}
	pgErr := &pgconn.PgError{Code: "23503"}
	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), []any{"tenant-1"}).Return(pgconn.CommandTag{}, pgErr)

	r := httptest.NewRequest("DELETE", "/tenants/tenant-1", nil)
	w := httptest.NewRecorder()
	tenantRouter(db).ServeHTTP(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTenantHandler_Delete(t *testing.T) {
	db := &mockDB{}
	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), []any{"tenant-1"}).Return(pgconn.CommandTag{}, nil)

	r := httptest.NewRequest("DELETE", "/tenants/tenant-1", nil)
	w := httptest.NewRecorder()
	tenantRouter(db).ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
