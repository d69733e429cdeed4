package request

type CreateVRF struct {
	Name        string  `json:"name" validate:"required,aciname"`
	NameAlias   string  `json:"name_alias" validate:"omitempty,aciname"`
	Description string  `json:"description" validate:"omitempty,acidesc"`
	Comments    string  `json:"comments"`
	IPAMTenantID *string `json:"ipam_tenant_id"`
	IPAMVRFID    *string `json:"ipam_vrf_id"`

	// Allow endpoints to ping only gateways within their bridge domain.
	// Default is disabled.
	BDEnforcementEnabled *bool `json:"bd_enforcement_enabled"`
	// DNS labels attached to the VRF.
	DNSLabels []string `json:"dns_labels" validate:"omitempty,dive,aciname"`
	// IP data plane learning for the VRF. Default is enabled.
	IPDataPlaneLearningEnabled *bool `json:"ip_data_plane_learning_enabled"`
	// Policy control enforcement direction. Default is "ingress".
	PCEnforcementDirection string `json:"pc_enforcement_direction" validate:"omitempty,oneof=ingress egress"`
	// Policy control enforcement preference. Default is "enforced".
	PCEnforcementPreference string `json:"pc_enforcement_preference" validate:"omitempty,oneof=enforced unenforced"`
	// Multicast routing. Default is disabled.
	PIMIPv4Enabled *bool `json:"pim_ipv4_enabled"`
	PIMIPv6Enabled *bool `json:"pim_ipv6_enabled"`
	// Preferred group feature. Default is disabled.
	PreferredGroupEnabled *bool `json:"preferred_group_enabled"`
}

type UpdateVRF struct {
	Name                       *string  `json:"name" validate:"omitempty,aciname"`
	NameAlias                  *string  `json:"name_alias" validate:"omitempty,aciname"`
	Description                *string  `json:"description" validate:"omitempty,acidesc"`
	Comments                   *string  `json:"comments"`
	IPAMTenantID               *string  `json:"ipam_tenant_id"`
	IPAMVRFID                  *string  `json:"ipam_vrf_id"`
	BDEnforcementEnabled       *bool    `json:"bd_enforcement_enabled"`
	DNSLabels                  []string `json:"dns_labels" validate:"omitempty,dive,aciname"`
	IPDataPlaneLearningEnabled *bool    `json:"ip_data_plane_learning_enabled"`
	PCEnforcementDirection     *string  `json:"pc_enforcement_direction" validate:"omitempty,oneof=ingress egress"`
	PCEnforcementPreference    *string  `json:"pc_enforcement_preference" validate:"omitempty,oneof=enforced unenforced"`
	PIMIPv4Enabled             *bool    `json:"pim_ipv4_enabled"`
	PIMIPv6Enabled             *bool    `json:"pim_ipv6_enabled"`
	PreferredGroupEnabled      *bool    `json:"preferred_group_enabled"`
}
