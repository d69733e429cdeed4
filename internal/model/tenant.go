package model

import "time"

type Tenant struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	NameAlias    string    `json:"name_alias,omitempty" db:"name_alias"`
	Description  string    `json:"description,omitempty" db:"description"`
	Comments     string    `json:"comments,omitempty" db:"comments"`
	IPAMTenantID *string   `json:"ipam_tenant_id,omitempty" db:"ipam_tenant_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// SharedTenantName is the reserved tenant whose objects are usable from any
// other tenant, mirroring the fabric's built-in "common" tenant.
const SharedTenantName = "common"
