package model

import "time"

// BridgeDomainSubnet is an IP gateway definition attached to a bridge domain.
// VRFID is resolved from the owning bridge domain at save time.
type BridgeDomainSubnet struct {
	ID                          string    `json:"id" db:"id"`
	Name                        string    `json:"name" db:"name"`
	NameAlias                   string    `json:"name_alias,omitempty" db:"name_alias"`
	Description                 string    `json:"description,omitempty" db:"description"`
	Comments                    string    `json:"comments,omitempty" db:"comments"`
	BridgeDomainID              string    `json:"bridge_domain_id" db:"bridge_domain_id"`
	VRFID                       string    `json:"vrf_id" db:"vrf_id"`
	GatewayIP                   string    `json:"gateway_ip" db:"gateway_ip"`
	IPAMIPAddressID             *string   `json:"ipam_ip_address_id,omitempty" db:"ipam_ip_address_id"`
	IPAMVRFID                   *string   `json:"ipam_vrf_id,omitempty" db:"ipam_vrf_id"`
	AdvertisedExternallyEnabled bool      `json:"advertised_externally_enabled" db:"advertised_externally_enabled"`
	IGMPQuerierEnabled          bool      `json:"igmp_querier_enabled" db:"igmp_querier_enabled"`
	IPDataPlaneLearningEnabled  bool      `json:"ip_data_plane_learning_enabled" db:"ip_data_plane_learning_enabled"`
	NoDefaultGateway            bool      `json:"no_default_gateway" db:"no_default_gateway"`
	NDRAEnabled                 bool      `json:"nd_ra_enabled" db:"nd_ra_enabled"`
	NDRAPrefixPolicyName        string    `json:"nd_ra_prefix_policy_name,omitempty" db:"nd_ra_prefix_policy_name"`
	PreferredIPAddressEnabled   bool      `json:"preferred_ip_address_enabled" db:"preferred_ip_address_enabled"`
	SharedEnabled               bool      `json:"shared_enabled" db:"shared_enabled"`
	VirtualIPEnabled            bool      `json:"virtual_ip_enabled" db:"virtual_ip_enabled"`
	CreatedAt                   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at" db:"updated_at"`
}
