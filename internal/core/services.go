package core

type Services struct {
	Tenant             *TenantService
	AppProfile         *AppProfileService
	VRF                *VRFService
	BridgeDomain       *BridgeDomainService
	BridgeDomainSubnet *BridgeDomainSubnetService
	EndpointGroup      *EndpointGroupService
	Search             *SearchService
	APIKey             *APIKeyService
}

func NewServices(db DB) *Services {
	return &Services{
		Tenant:             NewTenantService(db),
		AppProfile:         NewAppProfileService(db),
		VRF:                NewVRFService(db),
		BridgeDomain:       NewBridgeDomainService(db),
		BridgeDomainSubnet: NewBridgeDomainSubnetService(db),
		EndpointGroup:      NewEndpointGroupService(db),
		Search:             NewSearchService(db),
		APIKey:             NewAPIKeyService(db),
	}
}
