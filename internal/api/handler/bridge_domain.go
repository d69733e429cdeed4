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

type BridgeDomain struct {
	svc *core.BridgeDomainService
}

func NewBridgeDomain(svc *core.BridgeDomainService) *BridgeDomain {
	return &BridgeDomain{svc: svc}
}

// ListByVRF godoc
//
//	@Summary		List bridge domains in a VRF
//	@Tags			Bridge Domains
//	@Security		ApiKeyAuth
//	@Param			vrfID path string true "VRF ID"
//	@Param			search query string false "Search query"
//	@Param			limit query int false "Page size" default(50)
//	@Param			cursor query string false "Pagination cursor"
//	@Success		200 {object} response.PaginatedResponse{items=[]model.BridgeDomain}
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		500 {object} response.ErrorResponse
//	@Router			/vrfs/{vrfID}/bridge-domains [get]
func (h *BridgeDomain) ListByVRF(w http.ResponseWriter, r *http.Request) {
	vrfID, err := request.RequireID(chi.URLParam(r, "vrfID"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	params := request.ParseListParams(r, "name")

	bds, hasMore, err := h.svc.ListByVRF(r.Context(), vrfID, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var nextCursor string
	if hasMore && len(bds) > 0 {
		nextCursor = bds[len(bds)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, bds, nextCursor, hasMore)
}

// Create godoc
//
//	@Summary		Create a bridge domain
//	@Tags			Bridge Domains
//	@Security		ApiKeyAuth
//	@Param			vrfID path string true "VRF ID"
//	@Param			body body request.CreateBridgeDomain true "Bridge domain details"
//	@Success		201 {object} model.BridgeDomain
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		409 {object} response.ErrorResponse
//	@Router			/vrfs/{vrfID}/bridge-domains [post]
func (h *BridgeDomain) Create(w http.ResponseWriter, r *http.Request) {
	vrfID, err := request.RequireID(chi.URLParam(r, "vrfID"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.CreateBridgeDomain
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	bd := &model.BridgeDomain{
		ID:                         platform.NewID(),
		Name:                       req.Name,
		NameAlias:                  req.NameAlias,
		Description:                req.Description,
		Comments:                   req.Comments,
		VRFID:                      vrfID,
		IPAMTenantID:               req.IPAMTenantID,
		DHCPLabels:                 req.DHCPLabels,
		IGMPInterfacePolicyName:    req.IGMPInterfacePolicyName,
		IGMPSnoopingPolicyName:     req.IGMPSnoopingPolicyName,
		IPDataPlaneLearningEnabled: true,
		LimitIPLearnEnabled:        true,
		MACAddress:                 model.DefaultBDMACAddress,
		MultiDestinationFlooding:   model.BDMultiDestinationFloodingBD,
		PIMIPv4DestinationFilter:   req.PIMIPv4DestinationFilter,
		PIMIPv4SourceFilter:        req.PIMIPv4SourceFilter,
		UnicastRoutingEnabled:      true,
		UnknownIPv4Multicast:       model.BDUnknownMulticastFlood,
		UnknownIPv6Multicast:       model.BDUnknownMulticastFlood,
		UnknownUnicast:             model.BDUnknownUnicastProxy,
		VirtualMACAddress:          req.VirtualMACAddress,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if req.AdvertiseHostRoutesEnabled != nil {
		bd.AdvertiseHostRoutesEnabled = *req.AdvertiseHostRoutesEnabled
	}
	if req.ARPFloodingEnabled != nil {
		bd.ARPFloodingEnabled = *req.ARPFloodingEnabled
	}
	if req.ClearRemoteMACEnabled != nil {
		bd.ClearRemoteMACEnabled = *req.ClearRemoteMACEnabled
	}
	if req.EPMoveDetectionEnabled != nil {
		bd.EPMoveDetectionEnabled = *req.EPMoveDetectionEnabled
	}
	if req.IPDataPlaneLearningEnabled != nil {
		bd.IPDataPlaneLearningEnabled = *req.IPDataPlaneLearningEnabled
	}
	if req.LimitIPLearnEnabled != nil {
		bd.LimitIPLearnEnabled = *req.LimitIPLearnEnabled
	}
	if req.MACAddress != "" {
		bd.MACAddress = req.MACAddress
	}
	if req.MultiDestinationFlooding != "" {
		bd.MultiDestinationFlooding = req.MultiDestinationFlooding
	}
	if req.PIMIPv4Enabled != nil {
		bd.PIMIPv4Enabled = *req.PIMIPv4Enabled
	}
	if req.PIMIPv6Enabled != nil {
		bd.PIMIPv6Enabled = *req.PIMIPv6Enabled
	}
	if req.UnicastRoutingEnabled != nil {
		bd.UnicastRoutingEnabled = *req.UnicastRoutingEnabled
	}
	if req.UnknownIPv4Multicast != "" {
		bd.UnknownIPv4Multicast = req.UnknownIPv4Multicast
	}
	if req.UnknownIPv6Multicast != "" {
		bd.UnknownIPv6Multicast = req.UnknownIPv6Multicast
	}
	if req.UnknownUnicast != "" {
		bd.UnknownUnicast = req.UnknownUnicast
	}

	if err := h.svc.Create(r.Context(), bd); err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, bd)
}

// Get godoc
//
//	@Summary		Get a bridge domain
//	@Tags			Bridge Domains
//	@Security		ApiKeyAuth
//	@Param			id path string true "Bridge domain ID"
//	@Success		200 {object} model.BridgeDomain
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/bridge-domains/{id} [get]
func (h *BridgeDomain) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	bd, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, bd)
}

// Update godoc
//
//	@Summary		Update a bridge domain
//	@Tags			Bridge Domains
//	@Security		ApiKeyAuth
//	@Param			id path string true "Bridge domain ID"
//	@Param			body body request.UpdateBridgeDomain true "Bridge domain updates"
//	@Success		200 {object} model.BridgeDomain
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/bridge-domains/{id} [put]
func (h *BridgeDomain) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.UpdateBridgeDomain
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	bd, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if req.Name != nil {
		bd.Name = *req.Name
	}
	if req.NameAlias != nil {
		bd.NameAlias = *req.NameAlias
	}
	if req.Description != nil {
		bd.Description = *req.Description
	}
	if req.Comments != nil {
		bd.Comments = *req.Comments
	}
	if req.IPAMTenantID != nil {
		bd.IPAMTenantID = req.IPAMTenantID
	}
	if req.AdvertiseHostRoutesEnabled != nil {
		bd.AdvertiseHostRoutesEnabled = *req.AdvertiseHostRoutesEnabled
	}
	if req.ARPFloodingEnabled != nil {
		bd.ARPFloodingEnabled = *req.ARPFloodingEnabled
	}
	if req.ClearRemoteMACEnabled != nil {
		bd.ClearRemoteMACEnabled = *req.ClearRemoteMACEnabled
	}
	if req.DHCPLabels != nil {
		bd.DHCPLabels = req.DHCPLabels
	}
	if req.EPMoveDetectionEnabled != nil {
		bd.EPMoveDetectionEnabled = *req.EPMoveDetectionEnabled
	}
	if req.IGMPInterfacePolicyName != nil {
		bd.IGMPInterfacePolicyName = *req.IGMPInterfacePolicyName
	}
	if req.IGMPSnoopingPolicyName != nil {
		bd.IGMPSnoopingPolicyName = *req.IGMPSnoopingPolicyName
	}
	if req.IPDataPlaneLearningEnabled != nil {
		bd.IPDataPlaneLearningEnabled = *req.IPDataPlaneLearningEnabled
	}
	if req.LimitIPLearnEnabled != nil {
		bd.LimitIPLearnEnabled = *req.LimitIPLearnEnabled
	}
	if req.MACAddress != nil {
		bd.MACAddress = *req.MACAddress
	}
	if req.MultiDestinationFlooding != nil {
		bd.MultiDestinationFlooding = *req.MultiDestinationFlooding
	}
	if req.PIMIPv4Enabled != nil {
		bd.PIMIPv4Enabled = *req.PIMIPv4Enabled
	}
	if req.PIMIPv4DestinationFilter != nil {
		bd.PIMIPv4DestinationFilter = *req.PIMIPv4DestinationFilter
	}
	if req.PIMIPv4SourceFilter != nil {
		bd.PIMIPv4SourceFilter = *req.PIMIPv4SourceFilter
	}
	if req.PIMIPv6Enabled != nil {
		bd.PIMIPv6Enabled = *req.PIMIPv6Enabled
	}
	if req.UnicastRoutingEnabled != nil {
		bd.UnicastRoutingEnabled = *req.UnicastRoutingEnabled
	}
	if req.UnknownIPv4Multicast != nil {
		bd.UnknownIPv4Multicast = *req.UnknownIPv4Multicast
	}
	if req.UnknownIPv6Multicast != nil {
		bd.UnknownIPv6Multicast = *req.UnknownIPv6Multicast
	}
	if req.UnknownUnicast != nil {
		bd.UnknownUnicast = *req.UnknownUnicast
	}
	if req.VirtualMACAddress != nil {
		bd.VirtualMACAddress = req.VirtualMACAddress
	}

	if err := h.svc.Update(r.Context(), bd); err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, bd)
}

// Delete godoc
//
//	@Summary		Delete a bridge domain
//	@Tags			Bridge Domains
//	@Security		ApiKeyAuth
//	@Param			id path string true "Bridge domain ID"
//	@Success		204
//	@Failure		409 {object} response.ErrorResponse
//	@Router			/bridge-domains/{id} [delete]
func (h *BridgeDomain) Delete(w http.ResponseWriter, r *http.Request) {
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
