package request

type CreateTenant struct {
	Name         string  `json:"name" validate:"required,aciname"`
	NameAlias    string  `json:"name_alias" validate:"omitempty,aciname"`
	Description  string  `json:"description" validate:"omitempty,acidesc"`
	Comments     string  `json:"comments"`
	IPAMTenantID *string `json:"ipam_tenant_id"`
}

type UpdateTenant struct {
	Name         *string `json:"name" validate:"omitempty,aciname"`
	NameAlias    *string `json:"name_alias" validate:"omitempty,aciname"`
	Description  *string `json:"description" validate:"omitempty,acidesc"`
	Comments     *string `json:"comments"`
	IPAMTenantID *string `json:"ipam_tenant_id"`
}
