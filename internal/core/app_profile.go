package core

import (
	"context"
	"fmt"

	"github.com/acifab/fabric-inventory/internal/api/request"
	"github.com/acifab/fabric-inventory/internal/model"
	"github.com/acifab/fabric-inventory/internal/naming"
)

type AppProfileService struct {
	db DB
}

func NewAppProfileService(db DB) *AppProfileService {
	return &AppProfileService{db: db}
}

func validateAppProfile(ap *model.AppProfile) error {
	if err := naming.ValidateName("name", ap.Name); err != nil {
		return err
	}
	if err := naming.ValidateAlias("name_alias", ap.NameAlias); err != nil {
		return err
	}
	if err := naming.ValidateDescription("description", ap.Description); err != nil {
		return err
	}
	if ap.TenantID == "" {
		return &naming.FieldError{Field: "tenant_id", Message: "tenant is required"}
	}
	return nil
}

func (s *AppProfileService) Create(ctx context.Context, ap *model.AppProfile) error {
	if err := validateAppProfile(ap); err != nil {
		return err
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO app_profiles (id, name, name_alias, description, comments, tenant_id, ipam_tenant_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ap.ID, ap.Name, ap.NameAlias, ap.Description, ap.Comments,
		ap.TenantID, ap.IPAMTenantID, ap.CreatedAt, ap.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert app profile: %w", dbError(err))
	}
	return nil
}

func (s *AppProfileService) GetByID(ctx context.Context, id string) (*model.AppProfile, error) {
	var ap model.AppProfile
	err := s.db.QueryRow(ctx,
		`SELECT id, name, name_alias, description, comments, tenant_id, ipam_tenant_id, created_at, updated_at
		 FROM app_profiles WHERE id = $1`, id,
	).Scan(&ap.ID, &ap.Name, &ap.NameAlias, &ap.Description, &ap.Comments,
		&ap.TenantID, &ap.IPAMTenantID, &ap.CreatedAt, &ap.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get app profile %s: %w", id, dbError(err))
	}
	return &ap, nil
}

func (s *AppProfileService) ListByTenant(ctx context.Context, tenantID string, params request.ListParams) ([]model.AppProfile, bool, error) {
	query := `SELECT id, name, name_alias, description, comments, tenant_id, ipam_tenant_id, created_at, updated_at
	          FROM app_profiles WHERE tenant_id = $1`
	args := []any{tenantID}
	argIdx := 2

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
		return nil, false, fmt.Errorf("list app profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.AppProfile
	for rows.Next() {
		var ap model.AppProfile
		if err := rows.Scan(&ap.ID, &ap.Name, &ap.NameAlias, &ap.Description, &ap.Comments,
			&ap.TenantID, &ap.IPAMTenantID, &ap.CreatedAt, &ap.UpdatedAt); err != nil {
			return nil, false, fmt.Errorf("scan app profile: %w", err)
		}
		profiles = append(profiles, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate app profiles: %w", err)
	}

	hasMore := len(profiles) > params.Limit
	if hasMore {
		profiles = profiles[:params.Limit]
	}
	return profiles, hasMore, nil
}

func (s *AppProfileService) Update(ctx context.Context, ap *model.AppProfile) error {
	if err := validateAppProfile(ap); err != nil {
		return err
	}

	_, err := s.db.Exec(ctx,
		`UPDATE app_profiles SET name = $1, name_alias = $2, description = $3, comments = $4,
		 ipam_tenant_id = $5, updated_at = now() WHERE id = $6`,
		ap.Name, ap.NameAlias, ap.Description, ap.Comments, ap.IPAMTenantID, ap.ID,
	)
	if err != nil {
		return fmt.Errorf("update app profile %s: %w", ap.ID, dbError(err))
	}
	return nil
}

func (s *AppProfileService) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM app_profiles WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete app profile %s: %w", id, dbError(err))
	}
	return nil
}
