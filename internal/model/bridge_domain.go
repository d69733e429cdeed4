package model

import "time"

// BridgeDomain is a Layer-2 forwarding domain scoped to a VRF.
type BridgeDomain struct {
	ID                         string    `json:"id" db:"id"`
	Name                       string    `json:"name" db:"name"`
	NameAlias                  string    `json:"name_alias,omitempty" db:"name_alias"`
	Description                string    `json:"description,omitempty" db:"description"`
	Comments                   string    `json:"comments,omitempty" db:"comments"`
	VRFID                      string    `json:"vrf_id" db:"vrf_id"`
	IPAMTenantID               *string   `json:"ipam_tenant_id,omitempty" db:"ipam_tenant_id"`
	AdvertiseHostRoutesEnabled bool      `json:"advertise_host_routes_enabled" db:"advertise_host_routes_enabled"`
	ARPFloodingEnabled         bool      `json:"arp_flooding_enabled" db:"arp_flooding_enabled"`
	ClearRemoteMACEnabled      bool      `json:"clear_remote_mac_enabled" db:"clear_remote_mac_enabled"`
	DHCPLabels                 []string  `json:"dhcp_labels,omitempty" db:"dhcp_labels"`
	EPMoveDetectionEnabled     bool      `json:"ep_move_detection_enabled" db:"ep_move_detection_enabled"`
	IGMPInterfacePolicyName    string    `json:"igmp_interface_policy_name,omitempty" db:"igmp_interface_policy_name"`
	IGMPSnoopingPolicyName     string    `json:"igmp_snooping_policy_name,omitempty" db:"igmp_snooping_policy_name"`
	IPDataPlaneLearningEnabled bool      `json:"ip_data_plane_learning_enabled" db:"ip_data_plane_learning_enabled"`
	LimitIPLearnEnabled        bool      `json:"limit_ip_learn_enabled" db:"limit_ip_learn_enabled"`
	MACAddress                 string    `json:"mac_address" db:"mac_address"`
	MultiDestinationFlooding   string    `json:"multi_destination_flooding" db:"multi_destination_flooding"`
	PIMIPv4Enabled             bool      `json:"pim_ipv4_enabled" db:"pim_ipv4_enabled"`
	PIMIPv4DestinationFilter   string    `json:"pim_ipv4_destination_filter,omitempty" db:"pim_ipv4_destination_filter"`
	PIMIPv4SourceFilter        string    `json:"pim_ipv4_source_filter,omitempty" db:"pim_ipv4_source_filter"`
	PIMIPv6Enabled             bool      `json:"pim_ipv6_enabled" db:"pim_ipv6_enabled"`
	UnicastRoutingEnabled      bool      `json:"unicast_routing_enabled" db:"unicast_routing_enabled"`
	UnknownIPv4Multicast       string    `json:"unknown_ipv4_multicast" db:"unknown_ipv4_multicast"`
	UnknownIPv6Multicast       string    `json:"unknown_ipv6_multicast" db:"unknown_ipv6_multicast"`
	UnknownUnicast             string    `json:"unknown_unicast" db:"unknown_unicast"`
	VirtualMACAddress          *string   `json:"virtual_mac_address,omitempty" db:"virtual_mac_address"`
	CreatedAt                  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at" db:"updated_at"`
}
