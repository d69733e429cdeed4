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

type EndpointGroup struct {
	svc *core.EndpointGroupService
}

func NewEndpointGroup(svc *core.EndpointGroupService) *EndpointGroup {
	return &EndpointGroup{svc: svc}
}

// ListByAppProfile godoc
//
//	@Summary		List endpoint groups of an application profile
//	@Tags			Endpoint Groups
//	@Security		ApiKeyAuth
//	@Param			apID path string true "Application profile ID"
//	@Param			search query string false "Search query"
//	@Param			limit query int false "Page size" default(50)
//	@Param			cursor query string false "Pagination cursor"
//	@Success		200 {object} response.PaginatedResponse{items=[]model.EndpointGroup}
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		500 {object} response.ErrorResponse
//	@Router			/app-profiles/{apID}/endpoint-groups [get]
func (h *EndpointGroup) ListByAppProfile(w http.ResponseWriter, r *http.Request) {
	apID, err := request.RequireID(chi.URLParam(r, "apID"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	params := request.ParseListParams(r, "name")

	epgs, hasMore, err := h.svc.ListByAppProfile(r.Context(), apID, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var nextCursor string
	if hasMore && len(epgs) > 0 {
		nextCursor = epgs[len(epgs)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, epgs, nextCursor, hasMore)
}

// Create godoc
//
//	@Summary		Create an endpoint group
//	@Tags			Endpoint Groups
//	@Security		ApiKeyAuth
//	@Param			apID path string true "Application profile ID"
//	@Param			body body request.CreateEndpointGroup true "Endpoint group details"
//	@Success		201 {object} model.EndpointGroup
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		409 {object} response.ErrorResponse
//	@Router			/app-profiles/{apID}/endpoint-groups [post]
func (h *EndpointGroup) Create(w http.ResponseWriter, r *http.Request) {
	apID, err := request.RequireID(chi.URLParam(r, "apID"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.CreateEndpointGroup
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	epg := &model.EndpointGroup{
		ID:             platform.NewID(),
		Name:           req.Name,
		NameAlias:      req.NameAlias,
		Description:    req.Description,
		Comments:       req.Comments,
		AppProfileID:   apID,
		BridgeDomainID: req.BridgeDomainID,
		QoSClass:       model.QoSClassUnspecified,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.AdminShutdown != nil {
		epg.AdminShutdown = *req.AdminShutdown
	}
	if req.FloodInEncapEnabled != nil {
		epg.FloodInEncapEnabled = *req.FloodInEncapEnabled
	}
	if req.IntraEPGIsolationEnabled != nil {
		epg.IntraEPGIsolationEnabled = *req.IntraEPGIsolationEnabled
	}
	if req.PreferredGroupMemberEnabled != nil {
		epg.PreferredGroupMemberEnabled = *req.PreferredGroupMemberEnabled
	}
	if req.ProxyARPEnabled != nil {
		epg.ProxyARPEnabled = *req.ProxyARPEnabled
	}
	if req.QoSClass != "" {
		epg.QoSClass = req.QoSClass
	}

	if err := h.svc.Create(r.Context(), epg); err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, epg)
}

// Get godoc
//
//	@Summary		Get an endpoint group
//	@Tags			Endpoint Groups
//	@Security		ApiKeyAuth
//	@Param			id path string true "Endpoint group ID"
//	@Success		200 {object} model.EndpointGroup
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/endpoint-groups/{id} [get]
func (h *EndpointGroup) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	epg, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, epg)
}

// Update godoc
//
//	@Summary		Update an endpoint group
//	@Tags			Endpoint Groups
//	@Security		ApiKeyAuth
//	@Param			id path string true "Endpoint group ID"
//	@Param			body body request.UpdateEndpointGroup true "Endpoint group updates"
//	@Success		200 {object} model.EndpointGroup
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/endpoint-groups/{id} [put]
func (h *EndpointGroup) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.UpdateEndpointGroup
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	epg, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if req.Name != nil {
		epg.Name = *req.Name
	}
	if req.NameAlias != nil {
		epg.NameAlias = *req.NameAlias
	}
	if req.Description != nil {
		epg.Description = *req.Description
	}
	if req.Comments != nil {
		epg.Comments = *req.Comments
	}
	if req.BridgeDomainID != nil {
		epg.BridgeDomainID = *req.BridgeDomainID
	}
	if req.AdminShutdown != nil {
		epg.AdminShutdown = *req.AdminShutdown
	}
	if req.FloodInEncapEnabled != nil {
		epg.FloodInEncapEnabled = *req.FloodInEncapEnabled
	}
	if req.IntraEPGIsolationEnabled != nil {
		epg.IntraEPGIsolationEnabled = *req.IntraEPGIsolationEnabled
	}
	if req.PreferredGroupMemberEnabled != nil {
		epg.PreferredGroupMemberEnabled = *req.PreferredGroupMemberEnabled
	}
	if req.ProxyARPEnabled != nil {
		epg.ProxyARPEnabled = *req.ProxyARPEnabled
	}
	if req.QoSClass != nil {
		epg.QoSClass = *req.QoSClass
	}

	if err := h.svc.Update(r.Context(), epg); err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, epg)
}

// Delete godoc
//
//	@Summary		Delete an endpoint group
//	@Tags			Endpoint Groups
//	@Security		ApiKeyAuth
//	@Param			id path string true "Endpoint group ID"
//	@Success		204
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/endpoint-groups/{id} [delete]
func (h *EndpointGroup) Delete(w http.ResponseWriter, r *http.Request) {
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
