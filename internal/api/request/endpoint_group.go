package request

type CreateEndpointGroup struct {
	Name        string `json:"name" validate:"required,aciname"`
	NameAlias   string `json:"name_alias" validate:"omitempty,aciname"`
	Description string `json:"description" validate:"omitempty,acidesc"`
	Comments    string `json:"comments"`
	// Bridge domain the endpoint group attaches to. Must belong to the
	// application profile's tenant or the common tenant.
	BridgeDomainID string `json:"bridge_domain_id" validate:"required"`

	// Shut down the endpoint group without removing it. Default is disabled.
	AdminShutdown *bool `json:"admin_shutdown"`
	// Flood in encapsulation. Default is disabled.
	FloodInEncapEnabled *bool `json:"flood_in_encap_enabled"`
	// Isolate endpoints within the group. Default is disabled.
	IntraEPGIsolationEnabled *bool `json:"intra_epg_isolation_enabled"`
	// Preferred group membership. Default is disabled.
	PreferredGroupMemberEnabled *bool `json:"preferred_group_member_enabled"`
	// Proxy ARP. Default is disabled.
	ProxyARPEnabled *bool `json:"proxy_arp_enabled"`
	// QoS class. Default is "unspecified".
	QoSClass string `json:"qos_class" validate:"omitempty,oneof=unspecified level1 level2 level3"`
}

type UpdateEndpointGroup struct {
	Name                        *string `json:"name" validate:"omitempty,aciname"`
	NameAlias                   *string `json:"name_alias" validate:"omitempty,aciname"`
	Description                 *string `json:"description" validate:"omitempty,acidesc"`
	Comments                    *string `json:"comments"`
	BridgeDomainID              *string `json:"bridge_domain_id"`
	AdminShutdown               *bool   `json:"admin_shutdown"`
	FloodInEncapEnabled         *bool   `json:"flood_in_encap_enabled"`
	IntraEPGIsolationEnabled    *bool   `json:"intra_epg_isolation_enabled"`
	PreferredGroupMemberEnabled *bool   `json:"preferred_group_member_enabled"`
	ProxyARPEnabled             *bool   `json:"proxy_arp_enabled"`
	QoSClass                    *string `json:"qos_class" validate:"omitempty,oneof=unspecified level1 level2 level3"`
}
