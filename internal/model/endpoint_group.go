package model

import "time"

// EndpointGroup is a policy grouping of endpoints within an application
// profile, bound to a bridge domain.
type EndpointGroup struct {
	ID                          string    `json:"id" db:"id"`
	Name                        string    `json:"name" db:"name"`
	NameAlias                   string    `json:"name_alias,omitempty" db:"name_alias"`
	Description                 string    `json:"description,omitempty" db:"description"`
	Comments                    string    `json:"comments,omitempty" db:"comments"`
	AppProfileID                string    `json:"app_profile_id" db:"app_profile_id"`
	BridgeDomainID              string    `json:"bridge_domain_id" db:"bridge_domain_id"`
	AdminShutdown               bool      `json:"admin_shutdown" db:"admin_shutdown"`
	FloodInEncapEnabled         bool      `json:"flood_in_encap_enabled" db:"flood_in_encap_enabled"`
	IntraEPGIsolationEnabled    bool      `json:"intra_epg_isolation_enabled" db:"intra_epg_isolation_enabled"`
	PreferredGroupMemberEnabled bool      `json:"preferred_group_member_enabled" db:"preferred_group_member_enabled"`
	ProxyARPEnabled             bool      `json:"proxy_arp_enabled" db:"proxy_arp_enabled"`
	QoSClass                    string    `json:"qos_class" db:"qos_class"`
	CreatedAt                   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at" db:"updated_at"`
}
