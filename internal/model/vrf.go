package model

import "time"

// VRF is a Layer-3 isolation domain within a tenant.
type VRF struct {
	ID                         string    `json:"id" db:"id"`
	Name                       string    `json:"name" db:"name"`
	NameAlias                  string    `json:"name_alias,omitempty" db:"name_alias"`
	Description                string    `json:"description,omitempty" db:"description"`
	Comments                   string    `json:"comments,omitempty" db:"comments"`
	TenantID                   string    `json:"tenant_id" db:"tenant_id"`
	IPAMTenantID               *string   `json:"ipam_tenant_id,omitempty" db:"ipam_tenant_id"`
	IPAMVRFID                  *string   `json:"ipam_vrf_id,omitempty" db:"ipam_vrf_id"`
	BDEnforcementEnabled       bool      `json:"bd_enforcement_enabled" db:"bd_enforcement_enabled"`
	DNSLabels                  []string  `json:"dns_labels,omitempty" db:"dns_labels"`
	IPDataPlaneLearningEnabled bool      `json:"ip_data_plane_learning_enabled" db:"ip_data_plane_learning_enabled"`
	PCEnforcementDirection     string    `json:"pc_enforcement_direction" db:"pc_enforcement_direction"`
	PCEnforcementPreference    string    `json:"pc_enforcement_preference" db:"pc_enforcement_preference"`
	PIMIPv4Enabled             bool      `json:"pim_ipv4_enabled" db:"pim_ipv4_enabled"`
	PIMIPv6Enabled             bool      `json:"pim_ipv6_enabled" db:"pim_ipv6_enabled"`
	PreferredGroupEnabled      bool      `json:"preferred_group_enabled" db:"preferred_group_enabled"`
	CreatedAt                  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at" db:"updated_at"`
}
