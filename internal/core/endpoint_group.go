package core

import (
	"context"
	"fmt"

	"github.com/acifab/fabric-inventory/internal/api/request"
	"github.com/acifab/fabric-inventory/internal/model"
	"github.com/acifab/fabric-inventory/internal/naming"
)

type EndpointGroupService struct {
	db DB
}

func NewEndpointGroupService(db DB) *EndpointGroupService {
	return &EndpointGroupService{db: db}
}

func validateEndpointGroup(epg *model.EndpointGroup) error {
	if err := naming.ValidateName("name", epg.Name); err != nil {
		return err
	}
	if err := naming.ValidateAlias("name_alias", epg.NameAlias); err != nil {
		return err
	}
	if err := naming.ValidateDescription("description", epg.Description); err != nil {
		return err
	}
	if epg.AppProfileID == "" {
		return &naming.FieldError{Field: "app_profile_id", Message: "application profile is required"}
	}
	if epg.BridgeDomainID == "" {
		return &naming.FieldError{Field: "bridge_domain_id", Message: "bridge domain is required"}
	}
	return naming.ValidateChoice("qos_class", epg.QoSClass, model.QoSClasses)
}

// checkTenantScope verifies the endpoint group's bridge domain belongs to the
// same tenant as its application profile, or to the shared "common" tenant.
func (s *EndpointGroupService) checkTenantScope(ctx context.Context, epg *model.EndpointGroup) error {
	var apTenantID string
	err := s.db.QueryRow(ctx,
		"SELECT tenant_id FROM app_profiles WHERE id = $1", epg.AppProfileID,
	).Scan(&apTenantID)
	if err != nil {
		return fmt.Errorf("resolve app profile tenant: %w", dbError(err))
	}

	var bdTenantID, bdTenantName string
	err = s.db.QueryRow(ctx,
		`SELECT t.id, t.name FROM bridge_domains bd
		 JOIN vrfs v ON bd.vrf_id = v.id
		 JOIN tenants t ON v.tenant_id = t.id
		 WHERE bd.id = $1`, epg.BridgeDomainID,
	).Scan(&bdTenantID, &bdTenantName)
	if err != nil {
		return fmt.Errorf("resolve bridge domain tenant: %w", dbError(err))
	}

	if bdTenantID != apTenantID && bdTenantName != model.SharedTenantName {
		return &naming.FieldError{
			Field:   "bridge_domain_id",
			Message: "bridge domain must belong to the application profile's tenant or the common tenant",
		}
	}
	return nil
}

const endpointGroupColumns = `id, name, name_alias, description, comments, app_profile_id, bridge_domain_id,
	admin_shutdown, flood_in_encap_enabled, intra_epg_isolation_enabled,
	preferred_group_member_enabled, proxy_arp_enabled, qos_class, created_at, updated_at`

func scanEndpointGroup(row interface{ Scan(dest ...any) error }) (*model.EndpointGroup, error) {
	var epg model.EndpointGroup
	err := row.Scan(&epg.ID, &epg.Name, &epg.NameAlias, &epg.Description, &epg.Comments,
		&epg.AppProfileID, &epg.BridgeDomainID,
		&epg.AdminShutdown, &epg.FloodInEncapEnabled, &epg.IntraEPGIsolationEnabled,
		&epg.PreferredGroupMemberEnabled, &epg.ProxyARPEnabled, &epg.QoSClass,
		&epg.CreatedAt, &epg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &epg, nil
}

func (s *EndpointGroupService) Create(ctx context.Context, epg *model.EndpointGroup) error {
	if err := validateEndpointGroup(epg); err != nil {
		return err
	}
	if err := s.checkTenantScope(ctx, epg); err != nil {
		return err
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO endpoint_groups (`+endpointGroupColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		epg.ID, epg.Name, epg.NameAlias, epg.Description, epg.Comments,
		epg.AppProfileID, epg.BridgeDomainID,
		epg.AdminShutdown, epg.FloodInEncapEnabled, epg.IntraEPGIsolationEnabled,
		epg.PreferredGroupMemberEnabled, epg.ProxyARPEnabled, epg.QoSClass,
		epg.CreatedAt, epg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert endpoint group: %w", dbError(err))
	}
	return nil
}

func (s *EndpointGroupService) GetByID(ctx context.Context, id string) (*model.EndpointGroup, error) {
	row := s.db.QueryRow(ctx, `SELECT `+endpointGroupColumns+` FROM endpoint_groups WHERE id = $1`, id)
	epg, err := scanEndpointGroup(row)
	if err != nil {
		return nil, fmt.Errorf("get endpoint group %s: %w", id, dbError(err))
	}
	return epg, nil
}

func (s *EndpointGroupService) ListByAppProfile(ctx context.Context, appProfileID string, params request.ListParams) ([]model.EndpointGroup, bool, error) {
	query := `SELECT ` + endpointGroupColumns + ` FROM endpoint_groups WHERE app_profile_id = $1`
	args := []any{appProfileID}
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
		return nil, false, fmt.Errorf("list endpoint groups: %w", err)
	}
	defer rows.Close()

	var epgs []model.EndpointGroup
	for rows.Next() {
		epg, err := scanEndpointGroup(rows)
		if err != nil {
			return nil, false, fmt.Errorf("scan endpoint group: %w", err)
		}
		epgs = append(epgs, *epg)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate endpoint groups: %w", err)
	}

	hasMore := len(epgs) > params.Limit
	if hasMore {
		epgs = epgs[:params.Limit]
	}
	return epgs, hasMore, nil
}

func (s *EndpointGroupService) Update(ctx context.Context, epg *model.EndpointGroup) error {
	if err := validateEndpointGroup(epg); err != nil {
		return err
	}
	if err := s.checkTenantScope(ctx, epg); err != nil {
		return err
	}

	_, err := s.db.Exec(ctx,
		`UPDATE endpoint_groups SET name = $1, name_alias = $2, description = $3, comments = $4,
		 bridge_domain_id = $5, admin_shutdown = $6, flood_in_encap_enabled = $7,
		 intra_epg_isolation_enabled = $8, preferred_group_member_enabled = $9,
		 proxy_arp_enabled = $10, qos_class = $11, updated_at = now()
		 WHERE id = $12`,
		epg.Name, epg.NameAlias, epg.Description, epg.Comments,
		epg.BridgeDomainID, epg.AdminShutdown, epg.FloodInEncapEnabled,
		epg.IntraEPGIsolationEnabled, epg.PreferredGroupMemberEnabled,
		epg.ProxyARPEnabled, epg.QoSClass, epg.ID,
	)
	if err != nil {
		return fmt.Errorf("update endpoint group %s: %w", epg.ID, dbError(err))
	}
	return nil
}

func (s *EndpointGroupService) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM endpoint_groups WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete endpoint group %s: %w", id, dbError(err))
	}
	return nil
}
