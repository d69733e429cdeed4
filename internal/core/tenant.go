package core

import (
	"context"
	"fmt"

	"github.com/acifab/fabric-inventory/internal/api/request"
	"github.com/acifab/fabric-inventory/internal/model"
	"github.com/acifab/fabric-inventory/internal/naming"
)

type TenantService struct {
	db DB
}

func NewTenantService(db DB) *TenantService {
	return &TenantService{db: db}
}

func validateTenant(t *model.Tenant) error {
	if err := naming.ValidateName("name", t.Name); err != nil {
		return err
	}
	if err := naming.ValidateAlias("name_alias", t.NameAlias); err != nil {
		return err
	}
	return naming.ValidateDescription("description", t.Description)
}

func (s *TenantService) Create(ctx context.Context, tenant *model.Tenant) error {
	if err := validateTenant(tenant); err != nil {
		return err
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO tenants (id, name, name_alias, description, comments, ipam_tenant_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		tenant.ID, tenant.Name, tenant.NameAlias, tenant.Description, tenant.Comments,
		tenant.IPAMTenantID, tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tenant: %w", dbError(err))
	}
	return nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*model.Tenant, error) {
	var t model.Tenant
	err := s.db.QueryRow(ctx,
		`SELECT id, name, name_alias, description, comments, ipam_tenant_id, created_at, updated_at
		 FROM tenants WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.NameAlias, &t.Description, &t.Comments,
		&t.IPAMTenantID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get tenant %s: %w", id, dbError(err))
	}
	return &t, nil
}

func (s *TenantService) List(ctx context.Context, params request.ListParams) ([]model.Tenant, bool, error) {
	query := `SELECT id, name, name_alias, description, comments, ipam_tenant_id, created_at, updated_at
	          FROM tenants WHERE 1=1`
	args := []any{}
	argIdx := 1

	if params.Search != "" {
		query += fmt.Sprintf(` AND (name ILIKE $%d OR name_alias ILIKE $%d)`, argIdx, argIdx)
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}
	if params.Cursor != "" {
		query += fmt.Sprintf(` AND id > $%d`, argIdx)
		args = append(args, params.Cursor)
		argIdx++
	}

	sortCol := "name"
	if params.Sort == "created_at" {
		sortCol = "created_at"
	}
	order := "ASC"
	if params.Order == "desc" {
		order = "DESC"
	}
	query += fmt.Sprintf(` ORDER BY %s %s`, sortCol, order)
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, params.Limit+1)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []model.Tenant
	for rows.Next() {
		var t model.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.NameAlias, &t.Description, &t.Comments,
			&t.IPAMTenantID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, false, fmt.Errorf("scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate tenants: %w", err)
	}

	hasMore := len(tenants) > params.Limit
	if hasMore {
		tenants = tenants[:params.Limit]
	}
	return tenants, hasMore, nil
}

func (s *TenantService) Update(ctx context.Context, tenant *model.Tenant) error {
	if err := validateTenant(tenant); err != nil {
		return err
	}

	_, err := s.db.Exec(ctx,
		`UPDATE tenants SET name = $1, name_alias = $2, description = $3, comments = $4,
		 ipam_tenant_id = $5, updated_at = now() WHERE id = $6`,
		tenant.Name, tenant.NameAlias, tenant.Description, tenant.Comments,
		tenant.IPAMTenantID, tenant.ID,
	)
	if err != nil {
		return fmt.Errorf("update tenant %s: %w", tenant.ID, dbError(err))
	}
	return nil
}

func (s *TenantService) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM tenants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete tenant %s: %w", id, dbError(err))
	}
	return nil
}
