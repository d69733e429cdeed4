package request

type CreateBridgeDomainSubnet struct {
	Name        string `json:"name" validate:"required,aciname"`
	NameAlias   string `json:"name_alias" validate:"omitempty,aciname"`
	Description string `json:"description" validate:"omitempty,acidesc"`
	Comments    string `json:"comments"`
	// Gateway address in prefix notation, e.g. "10.0.0.1/24".
	GatewayIP       string  `json:"gateway_ip" validate:"required,cidr"`
	IPAMIPAddressID *string `json:"ipam_ip_address_id"`
	IPAMVRFID       *string `json:"ipam_vrf_id"`

	// Advertise the subnet to associated L3Outs (public scope). Default is
	// disabled.
	AdvertisedExternallyEnabled *bool `json:"advertised_externally_enabled"`
	// Treat the gateway as an IGMP querier source IP. Default is disabled.
	IGMPQuerierEnabled *bool `json:"igmp_querier_enabled"`
	// IP data plane learning for the subnet. Default is enabled.
	IPDataPlaneLearningEnabled *bool `json:"ip_data_plane_learning_enabled"`
	// Remove default gateway functionality from this address. Default is
	// disabled.
	NoDefaultGateway *bool `json:"no_default_gateway"`
	// Use the gateway as an IPv6 ND RA prefix. Default is enabled.
	NDRAEnabled          *bool  `json:"nd_ra_enabled"`
	NDRAPrefixPolicyName string `json:"nd_ra_prefix_policy_name" validate:"omitempty,aciname"`
	// Preferred (primary) gateway of the bridge domain. Default is disabled.
	PreferredIPAddressEnabled *bool `json:"preferred_ip_address_enabled"`
	// Inter-VRF route leaking. Default is disabled.
	SharedEnabled *bool `json:"shared_enabled"`
	// Treat the gateway IP as a virtual IP. Default is disabled.
	VirtualIPEnabled *bool `json:"virtual_ip_enabled"`
}

type UpdateBridgeDomainSubnet struct {
	Name                        *string `json:"name" validate:"omitempty,aciname"`
	NameAlias                   *string `json:"name_alias" validate:"omitempty,aciname"`
	Description                 *string `json:"description" validate:"omitempty,acidesc"`
	Comments                    *string `json:"comments"`
	GatewayIP                   *string `json:"gateway_ip" validate:"omitempty,cidr"`
	IPAMIPAddressID             *string `json:"ipam_ip_address_id"`
	IPAMVRFID                   *string `json:"ipam_vrf_id"`
	AdvertisedExternallyEnabled *bool   `json:"advertised_externally_enabled"`
	IGMPQuerierEnabled          *bool   `json:"igmp_querier_enabled"`
	IPDataPlaneLearningEnabled  *bool   `json:"ip_data_plane_learning_enabled"`
	NoDefaultGateway            *bool   `json:"no_default_gateway"`
	NDRAEnabled                 *bool   `json:"nd_ra_enabled"`
	NDRAPrefixPolicyName        *string `json:"nd_ra_prefix_policy_name" validate:"omitempty,aciname"`
	PreferredIPAddressEnabled   *bool   `json:"preferred_ip_address_enabled"`
	SharedEnabled               *bool   `json:"shared_enabled"`
	VirtualIPEnabled            *bool   `json:"virtual_ip_enabled"`
}
