package core

import (
	"context"
	"fmt"

	"github.com/acifab/fabric-inventory/internal/api/request"
	"github.com/acifab/fabric-inventory/internal/model"
	"github.com/acifab/fabric-inventory/internal/naming"
)

type VRFService struct {
	db DB
}

func NewVRFService(db DB) *VRFService {
	return &VRFService{db: db}
}

func validateVRF(v *model.VRF) error {
	if err := naming.ValidateName("name", v.Name); err != nil {
		return err
	}
	if err := naming.ValidateAlias("name_alias", v.NameAlias); err != nil {
		return err
	}
	if err := naming.ValidateDescription("description", v.Description); err != nil {
		return err
	}
	if v.TenantID == "" {
		return &naming.FieldError{Field: "tenant_id", Message: "tenant is required"}
	}
	if err := naming.ValidateLabels("dns_labels", v.DNSLabels); err != nil {
		return err
	}
	if err := naming.ValidateChoice("pc_enforcement_direction", v.PCEnforcementDirection, model.VRFEnforcementDirections); err != nil {
		return err
	}
	return naming.ValidateChoice("pc_enforcement_preference", v.PCEnforcementPreference, model.VRFEnforcementPreferences)
}

const vrfColumns = `id, name, name_alias, description, comments, tenant_id, ipam_tenant_id, ipam_vrf_id,
	bd_enforcement_enabled, dns_labels, ip_data_plane_learning_enabled,
	pc_enforcement_direction, pc_enforcement_preference,
	pim_ipv4_enabled, pim_ipv6_enabled, preferred_group_enabled, created_at, updated_at`

func scanVRF(row interface{ Scan(dest ...any) error }) (*model.VRF, error) {
	var v model.VRF
	err := row.Scan(&v.ID, &v.Name, &v.NameAlias, &v.Description, &v.Comments,
		&v.TenantID, &v.IPAMTenantID, &v.IPAMVRFID,
		&v.BDEnforcementEnabled, &v.DNSLabels, &v.IPDataPlaneLearningEnabled,
		&v.PCEnforcementDirection, &v.PCEnforcementPreference,
		&v.PIMIPv4Enabled, &v.PIMIPv6Enabled, &v.PreferredGroupEnabled,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VRFService) Create(ctx context.Context, vrf *model.VRF) error {
	if err := validateVRF(vrf); err != nil {
		return err
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO vrfs (`+vrfColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		vrf.ID, vrf.Name, vrf.NameAlias, vrf.Description, vrf.Comments,
		vrf.TenantID, vrf.IPAMTenantID, vrf.IPAMVRFID,
		vrf.BDEnforcementEnabled, vrf.DNSLabels, vrf.IPDataPlaneLearningEnabled,
		vrf.PCEnforcementDirection, vrf.PCEnforcementPreference,
		vrf.PIMIPv4Enabled, vrf.PIMIPv6Enabled, vrf.PreferredGroupEnabled,
		vrf.CreatedAt, vrf.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vrf: %w", dbError(err))
	}
	return nil
}

func (s *VRFService) GetByID(ctx context.Context, id string) (*model.VRF, error) {
	row := s.db.QueryRow(ctx, `SELECT `+vrfColumns+` FROM vrfs WHERE id = $1`, id)
	vrf, err := scanVRF(row)
	if err != nil {
		return nil, fmt.Errorf("get vrf %s: %w", id, dbError(err))
	}
	return vrf, nil
}

func (s *VRFService) ListByTenant(ctx context.Context, tenantID string, params request.ListParams) ([]model.VRF, bool, error) {
	query := `SELECT ` + vrfColumns + ` FROM vrfs WHERE tenant_id = $1`
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
		return nil, false, fmt.Errorf("list vrfs: %w", err)
	}
	defer rows.Close()

	var vrfs []model.VRF
	for rows.Next() {
		vrf, err := scanVRF(rows)
		if err != nil {
			return nil, false, fmt.Errorf("scan vrf: %w", err)
		}
		vrfs = append(vrfs, *vrf)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate vrfs: %w", err)
	}

	hasMore := len(vrfs) > params.Limit
	if hasMore {
		vrfs = vrfs[:params.Limit]
	}
	return vrfs, hasMore, nil
}

func (s *VRFService) Update(ctx context.Context, vrf *model.VRF) error {
	if err := validateVRF(vrf); err != nil {
		return err
	}

	_, err := s.db.Exec(ctx,
		`UPDATE vrfs SET name = $1, name_alias = $2, description = $3, comments = $4,
		 ipam_tenant_id = $5, ipam_vrf_id = $6, bd_enforcement_enabled = $7, dns_labels = $8,
		 ip_data_plane_learning_enabled = $9, pc_enforcement_direction = $10,
		 pc_enforcement_preference = $11, pim_ipv4_enabled = $12, pim_ipv6_enabled = $13,
		 preferred_group_enabled = $14, updated_at = now()
		 WHERE id = $15`,
		vrf.Name, vrf.NameAlias, vrf.Description, vrf.Comments,
		vrf.IPAMTenantID, vrf.IPAMVRFID, vrf.BDEnforcementEnabled, vrf.DNSLabels,
		vrf.IPDataPlaneLearningEnabled, vrf.PCEnforcementDirection,
		vrf.PCEnforcementPreference, vrf.PIMIPv4Enabled, vrf.PIMIPv6Enabled,
		vrf.PreferredGroupEnabled, vrf.ID,
	)
	if err != nil {
		return fmt.Errorf("update vrf %s: %w", vrf.ID, dbError(err))
	}
	return nil
}

func (s *VRFService) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM vrfs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete vrf %s: %w", id, dbError(err))
	}
	return nil
}
