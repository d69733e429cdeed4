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

type VRF struct {
	svc *core.VRFService
}

func NewVRF(svc *core.VRFService) *VRF {
	return &VRF{svc: svc}
}

// ListByTenant godoc
//
//	@Summary		List VRFs in a tenant
//	@Tags			VRFs
//	@Security		ApiKeyAuth
//	@Param			tenantID path string true "Tenant ID"
//	@Param			search query string false "Search query"
//	@Param			limit query int false "Page size" default(50)
//	@Param			cursor query string false "Pagination cursor"
//	@Success		200 {object} response.PaginatedResponse{items=[]model.VRF}
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		500 {object} response.ErrorResponse
//	@Router			/tenants/{tenantID}/vrfs [get]
func (h *VRF) ListByTenant(w http.ResponseWriter, r *http.Request) {
	tenantID, err := request.RequireID(chi.URLParam(r, "tenantID"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	params := request.ParseListParams(r, "name")

	vrfs, hasMore, err := h.svc.ListByTenant(r.Context(), tenantID, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var nextCursor string
	if hasMore && len(vrfs) > 0 {
		nextCursor = vrfs[len(vrfs)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, vrfs, nextCursor, hasMore)
}

// Create godoc
//
//	@Summary		Create a VRF
//	@Tags			VRFs
//	@Security		ApiKeyAuth
//	@Param			tenantID path string true "Tenant ID"
//	@Param			body body request.CreateVRF true "VRF details"
//	@Success		201 {object} model.VRF
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		409 {object} response.ErrorResponse
//	@Router			/tenants/{tenantID}/vrfs [post]
func (h *VRF) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, err := request.RequireID(chi.URLParam(r, "tenantID"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.CreateVRF
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	vrf := &model.VRF{
		ID:                         platform.NewID(),
		Name:                       req.Name,
		NameAlias:                  req.NameAlias,
		Description:                req.Description,
		Comments:                   req.Comments,
		TenantID:                   tenantID,
		IPAMTenantID:               req.IPAMTenantID,
		IPAMVRFID:                  req.IPAMVRFID,
		DNSLabels:                  req.DNSLabels,
		IPDataPlaneLearningEnabled: true,
		PCEnforcementDirection:     model.VRFEnforcementDirectionIngress,
		PCEnforcementPreference:    model.VRFEnforcementPreferenceEnforced,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if req.BDEnforcementEnabled != nil {
		vrf.BDEnforcementEnabled = *req.BDEnforcementEnabled
	}
	if req.IPDataPlaneLearningEnabled != nil {
		vrf.IPDataPlaneLearningEnabled = *req.IPDataPlaneLearningEnabled
	}
	if req.PCEnforcementDirection != "" {
		vrf.PCEnforcementDirection = req.PCEnforcementDirection
	}
	if req.PCEnforcementPreference != "" {
		vrf.PCEnforcementPreference = req.PCEnforcementPreference
	}
	if req.PIMIPv4Enabled != nil {
		vrf.PIMIPv4Enabled = *req.PIMIPv4Enabled
	}
	if req.PIMIPv6Enabled != nil {
		vrf.PIMIPv6Enabled = *req.PIMIPv6Enabled
	}
	if req.PreferredGroupEnabled != nil {
		vrf.PreferredGroupEnabled = *req.PreferredGroupEnabled
	}

	if err := h.svc.Create(r.Context(), vrf); err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, vrf)
}

// Get godoc
//
//	@Summary		Get a VRF
//	@Tags			VRFs
//	@Security		ApiKeyAuth
//	@Param			id path string true "VRF ID"
//	@Success		200 {object} model.VRF
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/vrfs/{id} [get]
func (h *VRF) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	vrf, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, vrf)
}

// Update godoc
//
//	@Summary		Update a VRF
//	@Tags			VRFs
//	@Security		ApiKeyAuth
//	@Param			id path string true "VRF ID"
//	@Param			body body request.UpdateVRF true "VRF updates"
//	@Success		200 {object} model.VRF
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/vrfs/{id} [put]
func (h *VRF) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.UpdateVRF
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	vrf, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if req.Name != nil {
		vrf.Name = *req.Name
	}
	if req.NameAlias != nil {
		vrf.NameAlias = *req.NameAlias
	}
	if req.Description != nil {
		vrf.Description = *req.Description
	}
	if req.Comments != nil {
		vrf.Comments = *req.Comments
	}
	if req.IPAMTenantID != nil {
		vrf.IPAMTenantID = req.IPAMTenantID
	}
	if req.IPAMVRFID != nil {
		vrf.IPAMVRFID = req.IPAMVRFID
	}
	if req.BDEnforcementEnabled != nil {
		vrf.BDEnforcementEnabled = *req.BDEnforcementEnabled
	}
	if req.DNSLabels != nil {
		vrf.DNSLabels = req.DNSLabels
	}
	if req.IPDataPlaneLearningEnabled != nil {
		vrf.IPDataPlaneLearningEnabled = *req.IPDataPlaneLearningEnabled
	}
	if req.PCEnforcementDirection != nil {
		vrf.PCEnforcementDirection = *req.PCEnforcementDirection
	}
	if req.PCEnforcementPreference != nil {
		vrf.PCEnforcementPreference = *req.PCEnforcementPreference
	}
	if req.PIMIPv4Enabled != nil {
		vrf.PIMIPv4Enabled = *req.PIMIPv4Enabled
	}
	if req.PIMIPv6Enabled != nil {
		vrf.PIMIPv6Enabled = *req.PIMIPv6Enabled
	}
	if req.PreferredGroupEnabled != nil {
		vrf.PreferredGroupEnabled = *req.PreferredGroupEnabled
	}

	if err := h.svc.Update(r.Context(), vrf); err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, vrf)
}

// Delete godoc
//
//	@Summary		Delete a VRF
//	@Tags			VRFs
//	@Security		ApiKeyAuth
//	@Param			id path string true "VRF ID"
//	@Success		204
//	@Failure		409 {object} response.ErrorResponse
//	@Router			/vrfs/{id} [delete]
func (h *VRF) Delete(w http.ResponseWriter, r *http.Request) {
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
