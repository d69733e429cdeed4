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

type BridgeDomainSubnet struct {
	svc *core.BridgeDomainSubnetService
}

func NewBridgeDomainSubnet(svc *core.BridgeDomainSubnetService) *BridgeDomainSubnet {
	return &BridgeDomainSubnet{svc: svc}
}

// ListByBridgeDomain godoc
//
//	@Summary		List subnets of a bridge domain
//	@Tags			Bridge Domain Subnets
//	@Security		ApiKeyAuth
//	@Param			bdID path string true "Bridge domain ID"
//	@Param			search query string false "Search query"
//	@Param			limit query int false "Page size" default(50)
//	@Param			cursor query string false "Pagination cursor"
//	@Success		200 {object} response.PaginatedResponse{items=[]model.BridgeDomainSubnet}
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		500 {object} response.ErrorResponse
//	@Router			/bridge-domains/{bdID}/subnets [get]
func (h *BridgeDomainSubnet) ListByBridgeDomain(w http.ResponseWriter, r *http.Request) {
	bdID, err := request.RequireID(chi.URLParam(r, "bdID"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	params := request.ParseListParams(r, "name")

	subnets, hasMore, err := h.svc.ListByBridgeDomain(r.Context(), bdID, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var nextCursor string
	if hasMore && len(subnets) > 0 {
		nextCursor = subnets[len(subnets)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, subnets, nextCursor, hasMore)
}

// Create godoc
//
//	@Summary		Create a bridge domain subnet
//	@Tags			Bridge Domain Subnets
//	@Security		ApiKeyAuth
//	@Param			bdID path string true "Bridge domain ID"
//	@Param			body body request.CreateBridgeDomainSubnet true "Subnet details"
//	@Success		201 {object} model.BridgeDomainSubnet
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		409 {object} response.ErrorResponse
//	@Router			/bridge-domains/{bdID}/subnets [post]
func (h *BridgeDomainSubnet) Create(w http.ResponseWriter, r *http.Request) {
	bdID, err := request.RequireID(chi.URLParam(r, "bdID"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.CreateBridgeDomainSubnet
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	sn := &model.BridgeDomainSubnet{
		ID:                         platform.NewID(),
		Name:                       req.Name,
		NameAlias:                  req.NameAlias,
		Description:                req.Description,
		Comments:                   req.Comments,
		BridgeDomainID:             bdID,
		GatewayIP:                  req.GatewayIP,
		IPAMIPAddressID:            req.IPAMIPAddressID,
		IPAMVRFID:                  req.IPAMVRFID,
		IPDataPlaneLearningEnabled: true,
		NDRAEnabled:                true,
		NDRAPrefixPolicyName:       req.NDRAPrefixPolicyName,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if req.AdvertisedExternallyEnabled != nil {
		sn.AdvertisedExternallyEnabled = *req.AdvertisedExternallyEnabled
	}
	if req.IGMPQuerierEnabled != nil {
		sn.IGMPQuerierEnabled = *req.IGMPQuerierEnabled
	}
	if req.IPDataPlaneLearningEnabled != nil {
		sn.IPDataPlaneLearningEnabled = *req.IPDataPlaneLearningEnabled
	}
	if req.NoDefaultGateway != nil {
		sn.NoDefaultGateway = *req.NoDefaultGateway
	}
	if req.NDRAEnabled != nil {
		sn.NDRAEnabled = *req.NDRAEnabled
	}
	if req.PreferredIPAddressEnabled != nil {
		sn.PreferredIPAddressEnabled = *req.PreferredIPAddressEnabled
	}
	if req.SharedEnabled != nil {
		sn.SharedEnabled = *req.SharedEnabled
	}
	if req.VirtualIPEnabled != nil {
		sn.VirtualIPEnabled = *req.VirtualIPEnabled
	}

	if err := h.svc.Create(r.Context(), sn); err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, sn)
}

// Get godoc
//
//	@Summary		Get a bridge domain subnet
//	@Tags			Bridge Domain Subnets
//	@Security		ApiKeyAuth
//	@Param			id path string true "Subnet ID"
//	@Success		200 {object} model.BridgeDomainSubnet
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/subnets/{id} [get]
func (h *BridgeDomainSubnet) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	sn, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, sn)
}

// Update godoc
//
//	@Summary		Update a bridge domain subnet
//	@Tags			Bridge Domain Subnets
//	@Security		ApiKeyAuth
//	@Param			id path string true "Subnet ID"
//	@Param			body body request.UpdateBridgeDomainSubnet true "Subnet updates"
//	@Success		200 {object} model.BridgeDomainSubnet
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/subnets/{id} [put]
func (h *BridgeDomainSubnet) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.UpdateBridgeDomainSubnet
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	sn, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if req.Name != nil {
		sn.Name = *req.Name
	}
	if req.NameAlias != nil {
		sn.NameAlias = *req.NameAlias
	}
	if req.Description != nil {
		sn.Description = *req.Description
	}
	if req.Comments != nil {
		sn.Comments = *req.Comments
	}
	if req.GatewayIP != nil {
		sn.GatewayIP = *req.GatewayIP
	}
	if req.IPAMIPAddressID != nil {
		sn.IPAMIPAddressID = req.IPAMIPAddressID
	}
	if req.IPAMVRFID != nil {
		sn.IPAMVRFID = req.IPAMVRFID
	}
	if req.AdvertisedExternallyEnabled != nil {
		sn.AdvertisedExternallyEnabled = *req.AdvertisedExternallyEnabled
	}
	if req.IGMPQuerierEnabled != nil {
		sn.IGMPQuerierEnabled = *req.IGMPQuerierEnabled
	}
	if req.IPDataPlaneLearningEnabled != nil {
		sn.IPDataPlaneLearningEnabled = *req.IPDataPlaneLearningEnabled
	}
	if req.NoDefaultGateway != nil {
		sn.NoDefaultGateway = *req.NoDefaultGateway
	}
	if req.NDRAEnabled != nil {
		sn.NDRAEnabled = *req.NDRAEnabled
	}
	if req.NDRAPrefixPolicyName != nil {
		sn.NDRAPrefixPolicyName = *req.NDRAPrefixPolicyName
	}
	if req.PreferredIPAddressEnabled != nil {
		sn.PreferredIPAddressEnabled = *req.PreferredIPAddressEnabled
	}
	if req.SharedEnabled != nil {
		sn.SharedEnabled = *req.SharedEnabled
	}
	if req.VirtualIPEnabled != nil {
		sn.VirtualIPEnabled = *req.VirtualIPEnabled
	}

	if err := h.svc.Update(r.Context(), sn); err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, sn)
}

// Delete godoc
//
//	@Summary		Delete a bridge domain subnet
//	@Tags			Bridge Domain Subnets
//	@Security		ApiKeyAuth
//	@Param			id path string true "Subnet ID"
//	@Success		204
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/subnets/{id} [delete]
func (h *BridgeDomainSubnet) Delete(w http.ResponseWriter, r *http.Request) {
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
