package request

type CreateBridgeDomain struct {
	Name         string  `json:"name" validate:"required,aciname"`
	NameAlias    string  `json:"name_alias" validate:"omitempty,aciname"`
	Description  string  `json:"description" validate:"omitempty,acidesc"`
	Comments     string  `json:"comments"`
	IPAMTenantID *string `json:"ipam_tenant_id"`

	// Advertise endpoints as host routes out of the L3Outs. Default is
	// disabled.
	AdvertiseHostRoutesEnabled *bool `json:"advertise_host_routes_enabled"`
	// ARP flooding within the bridge domain. Default is disabled.
	ARPFloodingEnabled *bool `json:"arp_flooding_enabled"`
	// Delete remote MAC endpoints when the local one is removed. Default is
	// disabled.
	ClearRemoteMACEnabled *bool    `json:"clear_remote_mac_enabled"`
	DHCPLabels            []string `json:"dhcp_labels" validate:"omitempty,dive,aciname"`
	// Gratuitous ARP based endpoint move detection. Default is disabled.
	EPMoveDetectionEnabled  *bool  `json:"ep_move_detection_enabled"`
	IGMPInterfacePolicyName string `json:"igmp_interface_policy_name" validate:"omitempty,aciname"`
	IGMPSnoopingPolicyName  string `json:"igmp_snooping_policy_name" validate:"omitempty,aciname"`
	// IP data plane learning for the bridge domain. Default is enabled.
	IPDataPlaneLearningEnabled *bool `json:"ip_data_plane_learning_enabled"`
	// Limit IP learning to the bridge domain's subnets. Default is enabled.
	LimitIPLearnEnabled *bool `json:"limit_ip_learn_enabled"`
	// Bridge domain MAC. Defaults to the fabric-wide 00:22:BD:F8:19:FF.
	MACAddress string `json:"mac_address" validate:"omitempty,mac"`
	// Forwarding method for L2 multicast, broadcast, and link layer traffic.
	// Default is "bd-flood".
	MultiDestinationFlooding string `json:"multi_destination_flooding" validate:"omitempty,oneof=bd-flood encap-flood drop"`
	PIMIPv4Enabled           *bool  `json:"pim_ipv4_enabled"`
	PIMIPv4DestinationFilter string `json:"pim_ipv4_destination_filter" validate:"omitempty,aciname"`
	PIMIPv4SourceFilter      string `json:"pim_ipv4_source_filter" validate:"omitempty,aciname"`
	PIMIPv6Enabled           *bool  `json:"pim_ipv6_enabled"`
	// IP forwarding for the bridge domain. Default is enabled.
	UnicastRoutingEnabled *bool `json:"unicast_routing_enabled"`
	// Unknown multicast forwarding methods. Default is "flood".
	UnknownIPv4Multicast string `json:"unknown_ipv4_multicast" validate:"omitempty,oneof=flood opt-flood"`
	UnknownIPv6Multicast string `json:"unknown_ipv6_multicast" validate:"omitempty,oneof=flood opt-flood"`
	// L2 unknown unicast forwarding method. Default is "proxy".
	UnknownUnicast    string  `json:"unknown_unicast" validate:"omitempty,oneof=flood proxy"`
	VirtualMACAddress *string `json:"virtual_mac_address" validate:"omitempty,mac"`
}

type UpdateBridgeDomain struct {
	Name                       *string  `json:"name" validate:"omitempty,aciname"`
	NameAlias                  *string  `json:"name_alias" validate:"omitempty,aciname"`
	Description                *string  `json:"description" validate:"omitempty,acidesc"`
	Comments                   *string  `json:"comments"`
	IPAMTenantID               *string  `json:"ipam_tenant_id"`
	AdvertiseHostRoutesEnabled *bool    `json:"advertise_host_routes_enabled"`
	ARPFloodingEnabled         *bool    `json:"arp_flooding_enabled"`
	ClearRemoteMACEnabled      *bool    `json:"clear_remote_mac_enabled"`
	DHCPLabels                 []string `json:"dhcp_labels" validate:"omitempty,dive,aciname"`
	EPMoveDetectionEnabled     *bool    `json:"ep_move_detection_enabled"`
	IGMPInterfacePolicyName    *string  `json:"igmp_interface_policy_name" validate:"omitempty,aciname"`
	IGMPSnoopingPolicyName     *string  `json:"igmp_snooping_policy_name" validate:"omitempty,aciname"`
	IPDataPlaneLearningEnabled *bool    `json:"ip_data_plane_learning_enabled"`
	LimitIPLearnEnabled        *bool    `json:"limit_ip_learn_enabled"`
	MACAddress                 *string  `json:"mac_address" validate:"omitempty,mac"`
	MultiDestinationFlooding   *string  `json:"multi_destination_flooding" validate:"omitempty,oneof=bd-flood encap-flood drop"`
	PIMIPv4Enabled             *bool    `json:"pim_ipv4_enabled"`
	PIMIPv4DestinationFilter   *string  `json:"pim_ipv4_destination_filter" validate:"omitempty,aciname"`
	PIMIPv4SourceFilter        *string  `json:"pim_ipv4_source_filter" validate:"omitempty,aciname"`
	PIMIPv6Enabled             *bool    `json:"pim_ipv6_enabled"`
	UnicastRoutingEnabled      *bool    `json:"unicast_routing_enabled"`
	UnknownIPv4Multicast       *string  `json:"unknown_ipv4_multicast" validate:"omitempty,oneof=flood opt-flood"`
	UnknownIPv6Multicast       *string  `json:"unknown_ipv6_multicast" validate:"omitempty,oneof=flood opt-flood"`
	UnknownUnicast             *string  `json:"unknown_unicast" validate:"omitempty,oneof=flood proxy"`
	VirtualMACAddress          *string  `json:"virtual_mac_address" validate:"omitempty,mac"`
}
