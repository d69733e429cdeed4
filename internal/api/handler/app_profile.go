package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/acifab/fabric-inventory/internal/api/request"
	"github.com/acifab/fabric-inventory/internal/api/response"
	"github.com/acifab/fabric-inventory/internal/core"
	"github.com/acifab/fabric-inventory/internal/model"
	"github.com/acifab/fabric-inventory/internal/platform"
)

type AppProfile struct {
	svc *core.AppProfileService
}

func NewAppProfile(svc *core.AppProfileService) *AppProfile {
	return &AppProfile{svc: svc}
}

// ListByTenant godoc
//
//	@Summary		List application profiles in a tenant
//	@Tags			Application Profiles
//	@Security		ApiKeyAuth
//	@Param			tenantID path string true "Tenant ID"
//	@Param			search query string false "Search query"
//	@Param			limit query int false "Page size" default(50)
//	@Param			cursor query string false "Pagination cursor"
//	@Success		200 {object} response.PaginatedResponse{items=[]model.AppProfile}
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		500 {object} response.ErrorResponse
//	@Router			/tenants/{tenantID}/app-profiles [get]
func (h *AppProfile) ListByTenant(w http.ResponseWriter, r *http.Request) {
	tenantID, err := request.RequireID(chi.URLParam(r, "tenantID"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	params := request.ParseListParams(r, "name")

	profiles, hasMore, err := h.svc.ListByTenant(r.Context(), tenantID, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var nextCursor string
	if hasMore && len(profiles) > 0 {
		nextCursor = profiles[len(profiles)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, profiles, nextCursor, hasMore)
}

// Create godoc
//
//	@Summary		Create an application profile
//	@Tags			Application Profiles
//	@Security		ApiKeyAuth
//	@Param			tenantID path string true "Tenant ID"
//	@Param			body body request.CreateAppProfile true "Application profile details"
//	@Success		201 {object} model.AppProfile
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		409 {object} response.ErrorResponse
//	@Router			/tenants/{tenantID}/app-profiles [post]
func (h *AppProfile) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, err := request.RequireID(chi.URLParam(r, "tenantID"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.CreateAppProfile
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	profile := &model.AppProfile{
		ID:           platform.NewID(),
		Name:         req.Name,
		NameAlias:    req.NameAlias,
		Description:  req.Description,
		Comments:     req.Comments,
		TenantID:     tenantID,
		IPAMTenantID: req.IPAMTenantID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.svc.Create(r.Context(), profile); err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, profile)
}

// Get godoc
//
//	@Summary		Get an application profile
//	@Tags			Application Profiles
//	@Security		ApiKeyAuth
//	@Param			id path string true "Application profile ID"
//	@Success		200 {object} model.AppProfile
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/app-profiles/{id} [get]
func (h *AppProfile) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, profile)
}

// Update godoc
//
//	@Summary		Update an application profile
//	@Tags			Application Profiles
//	@Security		ApiKeyAuth
//	@Param			id path string true "Application profile ID"
//	@Param			body body request.UpdateAppProfile true "Application profile updates"
//	@Success		200 {object} model.AppProfile
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/app-profiles/{id} [put]
func (h *AppProfile) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.UpdateAppProfile
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.NameAlias != nil {
		profile.NameAlias = *req.NameAlias
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Comments != nil {
		profile.Comments = *req.Comments
	}
	if req.IPAMTenantID != nil {
		profile.IPAMTenantID = req.IPAMTenantID
	}

	if err := h.svc.Update(r.Context(), profile); err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, profile)
}

// Delete godoc
//
//	@Summary		Delete an application profile
//	@Tags			Application Profiles
//	@Security		ApiKeyAuth
//	@Param			id path string true "Application profile ID"
//	@Success		204
//	@Failure		409 {object} response.ErrorResponse
//	@Router			/app-profiles/{id} [delete]
func (h *AppProfile) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
