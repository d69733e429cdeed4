package model

import "time"

// AppProfile groups endpoint groups with similar application requirements
// inside a tenant.
type AppProfile struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	NameAlias    string    `json:"name_alias,omitempty" db:"name_alias"`
	Description  string    `json:"description,omitempty" db:"description"`
	Comments     string    `json:"comments,omitempty" db:"comments"`
	TenantID     string    `json:"tenant_id" db:"tenant_id"`
	IPAMTenantID *string   `json:"ipam_tenant_id,omitempty" db:"ipam_tenant_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
