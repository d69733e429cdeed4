package core

import (
	"context"
	"fmt"

	"github.com/acifab/fabric-inventory/internal/api/request"
	"github.com/acifab/fabric-inventory/internal/model"
	"github.com/acifab/fabric-inventory/internal/naming"
)

type BridgeDomainSubnetService struct {
	db DB
}

func NewBridgeDomainSubnetService(db DB) *BridgeDomainSubnetService {
	return &BridgeDomainSubnetService{db: db}
}

func validateSubnet(sn *model.BridgeDomainSubnet) error {
	if err := naming.ValidateName("name", sn.Name); err != nil {
		return err
	}
	if err := naming.ValidateAlias("name_alias", sn.NameAlias); err != nil {
		return err
	}
	if err := naming.ValidateDescription("description", sn.Description); err != nil {
		return err
	}
	if sn.BridgeDomainID == "" {
		return &naming.FieldError{Field: "bridge_domain_id", Message: "bridge domain is required"}
	}
	if err := naming.ValidateGateway("gateway_ip", sn.GatewayIP); err != nil {
		return err
	}
	return naming.ValidateAlias("nd_ra_prefix_policy_name", sn.NDRAPrefixPolicyName)
}

const subnetColumns = `id, name, name_alias, description, comments, bridge_domain_id, vrf_id, gateway_ip,
	ipam_ip_address_id, ipam_vrf_id, advertised_externally_enabled, igmp_querier_enabled,
	ip_data_plane_learning_enabled, no_default_gateway, nd_ra_enabled, nd_ra_prefix_policy_name,
	preferred_ip_address_enabled, shared_enabled, virtual_ip_enabled, created_at, updated_at`

func scanSubnet(row interface{ Scan(dest ...any) error }) (*model.BridgeDomainSubnet, error) {
	var sn model.BridgeDomainSubnet
	err := row.Scan(&sn.ID, &sn.Name, &sn.NameAlias, &sn.Description, &sn.Comments,
		&sn.BridgeDomainID, &sn.VRFID, &sn.GatewayIP,
		&sn.IPAMIPAddressID, &sn.IPAMVRFID, &sn.AdvertisedExternallyEnabled, &sn.IGMPQuerierEnabled,
		&sn.IPDataPlaneLearningEnabled, &sn.NoDefaultGateway, &sn.NDRAEnabled, &sn.NDRAPrefixPolicyName,
		&sn.PreferredIPAddressEnabled, &sn.SharedEnabled, &sn.VirtualIPEnabled,
		&sn.CreatedAt, &sn.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sn, nil
}

// Create stores a subnet after resolving its VRF from the owning bridge
// domain. A subnet always shares its bridge domain's routing context, and at
// most one subnet per bridge domain may be the preferred gateway.
func (s *BridgeDomainSubnetService) Create(ctx context.Context, sn *model.BridgeDomainSubnet) error {
	if err := validateSubnet(sn); err != nil {
		return err
	}

	var vrfID string
	err := s.db.QueryRow(ctx,
		"SELECT vrf_id FROM bridge_domains WHERE id = $1", sn.BridgeDomainID,
	).Scan(&vrfID)
	if err != nil {
		return fmt.Errorf("resolve subnet vrf: %w", dbError(err))
	}
	sn.VRFID = vrfID

	if sn.PreferredIPAddressEnabled {
		if err := s.checkPreferred(ctx, sn.BridgeDomainID, sn.ID); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO bridge_domain_subnets (`+subnetColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		sn.ID, sn.Name, sn.NameAlias, sn.Description, sn.Comments,
		sn.BridgeDomainID, sn.VRFID, sn.GatewayIP,
		sn.IPAMIPAddressID, sn.IPAMVRFID, sn.AdvertisedExternallyEnabled, sn.IGMPQuerierEnabled,
		sn.IPDataPlaneLearningEnabled, sn.NoDefaultGateway, sn.NDRAEnabled, sn.NDRAPrefixPolicyName,
		sn.PreferredIPAddressEnabled, sn.SharedEnabled, sn.VirtualIPEnabled,
		sn.CreatedAt, sn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subnet: %w", dbError(err))
	}
	return nil
}

func (s *BridgeDomainSubnetService) checkPreferred(ctx context.Context, bridgeDomainID, excludeID string) error {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM bridge_domain_subnets
		 WHERE bridge_domain_id = $1 AND preferred_ip_address_enabled AND id != $2`,
		bridgeDomainID, excludeID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("check preferred subnet: %w", err)
	}
	if count > 0 {
		return &naming.FieldError{
			Field:   "preferred_ip_address_enabled",
			Message: "bridge domain already has a preferred gateway subnet",
		}
	}
	return nil
}

func (s *BridgeDomainSubnetService) GetByID(ctx context.Context, id string) (*model.BridgeDomainSubnet, error) {
	row := s.db.QueryRow(ctx, `SELECT `+subnetColumns+` FROM bridge_domain_subnets WHERE id = $1`, id)
	sn, err := scanSubnet(row)
	if err != nil {
		return nil, fmt.Errorf("get subnet %s: %w", id, dbError(err))
	}
	return sn, nil
}

func (s *BridgeDomainSubnetService) ListByBridgeDomain(ctx context.Context, bridgeDomainID string, params request.ListParams) ([]model.BridgeDomainSubnet, bool, error) {
	query := `SELECT ` + subnetColumns + ` FROM bridge_domain_subnets WHERE bridge_domain_id = $1`
	args := []any{bridgeDomainID}
	argIdx := 2

	if params.Search != "" {
		query += fmt.Sprintf(` AND (name ILIKE $%d OR gateway_ip::text ILIKE $%d)`, argIdx, argIdx)
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
		return nil, false, fmt.Errorf("list subnets: %w", err)
	}
	defer rows.Close()

	var subnets []model.BridgeDomainSubnet
	for rows.Next() {
		sn, err := scanSubnet(rows)
		if err != nil {
			return nil, false, fmt.Errorf("scan subnet: %w", err)
		}
		subnets = append(subnets, *sn)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate subnets: %w", err)
	}

	hasMore := len(subnets) > params.Limit
	if hasMore {
		subnets = subnets[:params.Limit]
	}
	return subnets, hasMore, nil
}

func (s *BridgeDomainSubnetService) Update(ctx context.Context, sn *model.BridgeDomainSubnet) error {
	if err := validateSubnet(sn); err != nil {
		return err
	}

	if sn.PreferredIPAddressEnabled {
		if err := s.checkPreferred(ctx, sn.BridgeDomainID, sn.ID); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(ctx,
		`UPDATE bridge_domain_subnets SET name = $1, name_alias = $2, description = $3, comments = $4,
		 gateway_ip = $5, ipam_ip_address_id = $6, ipam_vrf_id = $7,
		 advertised_externally_enabled = $8, igmp_querier_enabled = $9,
		 ip_data_plane_learning_enabled = $10, no_default_gateway = $11, nd_ra_enabled = $12,
		 nd_ra_prefix_policy_name = $13, preferred_ip_address_enabled = $14, shared_enabled = $15,
		 virtual_ip_enabled = $16, updated_at = now()
		 WHERE id = $17`,
		sn.Name, sn.NameAlias, sn.Description, sn.Comments,
		sn.GatewayIP, sn.IPAMIPAddressID, sn.IPAMVRFID,
		sn.AdvertisedExternallyEnabled, sn.IGMPQuerierEnabled,
		sn.IPDataPlaneLearningEnabled, sn.NoDefaultGateway, sn.NDRAEnabled,
		sn.NDRAPrefixPolicyName, sn.PreferredIPAddressEnabled, sn.SharedEnabled,
		sn.VirtualIPEnabled, sn.ID,
	)
	if err != nil {
		return fmt.Errorf("update subnet %s: %w", sn.ID, dbError(err))
	}
	return nil
}

func (s *BridgeDomainSubnetService) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM bridge_domain_subnets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete subnet %s: %w", id, dbError(err))
	}
	return nil
}
