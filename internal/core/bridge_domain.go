package core

import (
	"context"
	"fmt"

	"github.com/acifab/fabric-inventory/internal/api/request"
	"github.com/acifab/fabric-inventory/internal/model"
	"github.com/acifab/fabric-inventory/internal/naming"
)

type BridgeDomainService struct {
	db DB
}

func NewBridgeDomainService(db DB) *BridgeDomainService {
	return &BridgeDomainService{db: db}
}

func validateBridgeDomain(bd *model.BridgeDomain) error {
	if err := naming.ValidateName("name", bd.Name); err != nil {
		return err
	}
	if err := naming.ValidateAlias("name_alias", bd.NameAlias); err != nil {
		return err
	}
	if err := naming.ValidateDescription("description", bd.Description); err != nil {
		return err
	}
	if bd.VRFID == "" {
		return &naming.FieldError{Field: "vrf_id", Message: "vrf is required"}
	}
	if err := naming.ValidateLabels("dhcp_labels", bd.DHCPLabels); err != nil {
		return err
	}
	if err := naming.ValidateMAC("mac_address", bd.MACAddress); err != nil {
		return err
	}
	if bd.VirtualMACAddress != nil {
		if err := naming.ValidateMAC("virtual_mac_address", *bd.VirtualMACAddress); err != nil {
			return err
		}
	}
	for _, f := range []string{bd.IGMPInterfacePolicyName, bd.IGMPSnoopingPolicyName,
		bd.PIMIPv4DestinationFilter, bd.PIMIPv4SourceFilter} {
		if err := naming.ValidateAlias("policy_name", f); err != nil {
			return err
		}
	}
	if err := naming.ValidateChoice("multi_destination_flooding", bd.MultiDestinationFlooding, model.BDMultiDestinationFloods); err != nil {
		return err
	}
	if err := naming.ValidateChoice("unknown_ipv4_multicast", bd.UnknownIPv4Multicast, model.BDUnknownMulticasts); err != nil {
		return err
	}
	if err := naming.ValidateChoice("unknown_ipv6_multicast", bd.UnknownIPv6Multicast, model.BDUnknownMulticasts); err != nil {
		return err
	}
	return naming.ValidateChoice("unknown_unicast", bd.UnknownUnicast, model.BDUnknownUnicasts)
}

const bridgeDomainColumns = `id, name, name_alias, description, comments, vrf_id, ipam_tenant_id,
	advertise_host_routes_enabled, arp_flooding_enabled, clear_remote_mac_enabled, dhcp_labels,
	ep_move_detection_enabled, igmp_interface_policy_name, igmp_snooping_policy_name,
	ip_data_plane_learning_enabled, limit_ip_learn_enabled, mac_address, multi_destination_flooding,
	pim_ipv4_enabled, pim_ipv4_destination_filter, pim_ipv4_source_filter, pim_ipv6_enabled,
	unicast_routing_enabled, unknown_ipv4_multicast, unknown_ipv6_multicast, unknown_unicast,
	virtual_mac_address, created_at, updated_at`

func scanBridgeDomain(row interface{ Scan(dest ...any) error }) (*model.BridgeDomain, error) {
	var bd model.BridgeDomain
	err := row.Scan(&bd.ID, &bd.Name, &bd.NameAlias, &bd.Description, &bd.Comments,
		&bd.VRFID, &bd.IPAMTenantID,
		&bd.AdvertiseHostRoutesEnabled, &bd.ARPFloodingEnabled, &bd.ClearRemoteMACEnabled, &bd.DHCPLabels,
		&bd.EPMoveDetectionEnabled, &bd.IGMPInterfacePolicyName, &bd.IGMPSnoopingPolicyName,
		&bd.IPDataPlaneLearningEnabled, &bd.LimitIPLearnEnabled, &bd.MACAddress, &bd.MultiDestinationFlooding,
		&bd.PIMIPv4Enabled, &bd.PIMIPv4DestinationFilter, &bd.PIMIPv4SourceFilter, &bd.PIMIPv6Enabled,
		&bd.UnicastRoutingEnabled, &bd.UnknownIPv4Multicast, &bd.UnknownIPv6Multicast, &bd.UnknownUnicast,
		&bd.VirtualMACAddress, &bd.CreatedAt, &bd.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &bd, nil
}

func (s *BridgeDomainService) Create(ctx context.Context, bd *model.BridgeDomain) error {
	if err := validateBridgeDomain(bd); err != nil {
		return err
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO bridge_domains (`+bridgeDomainColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		         $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)`,
		bd.ID, bd.Name, bd.NameAlias, bd.Description, bd.Comments, bd.VRFID, bd.IPAMTenantID,
		bd.AdvertiseHostRoutesEnabled, bd.ARPFloodingEnabled, bd.ClearRemoteMACEnabled, bd.DHCPLabels,
		bd.EPMoveDetectionEnabled, bd.IGMPInterfacePolicyName, bd.IGMPSnoopingPolicyName,
		bd.IPDataPlaneLearningEnabled, bd.LimitIPLearnEnabled, bd.MACAddress, bd.MultiDestinationFlooding,
		bd.PIMIPv4Enabled, bd.PIMIPv4DestinationFilter, bd.PIMIPv4SourceFilter, bd.PIMIPv6Enabled,
		bd.UnicastRoutingEnabled, bd.UnknownIPv4Multicast, bd.UnknownIPv6Multicast, bd.UnknownUnicast,
		bd.VirtualMACAddress, bd.CreatedAt, bd.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bridge domain: %w", dbError(err))
	}
	return nil
}

func (s *BridgeDomainService) GetByID(ctx context.Context, id string) (*model.BridgeDomain, error) {
	row := s.db.QueryRow(ctx, `SELECT `+bridgeDomainColumns+` FROM bridge_domains WHERE id = $1`, id)
	bd, err := scanBridgeDomain(row)
	if err != nil {
		return nil, fmt.Errorf("get bridge domain %s: %w", id, dbError(err))
	}
	return bd, nil
}

// TenantID resolves the tenant owning a bridge domain through its VRF.
func (s *BridgeDomainService) TenantID(ctx context.Context, id string) (string, error) {
	var tenantID string
	err := s.db.QueryRow(ctx,
		`SELECT v.tenant_id FROM bridge_domains bd JOIN vrfs v ON bd.vrf_id = v.id WHERE bd.id = $1`, id,
	).Scan(&tenantID)
	if err != nil {
		return "", fmt.Errorf("get bridge domain %s tenant: %w", id, dbError(err))
	}
	return tenantID, nil
}

func (s *BridgeDomainService) ListByVRF(ctx context.Context, vrfID string, params request.ListParams) ([]model.BridgeDomain, bool, error) {
	query := `SELECT ` + bridgeDomainColumns + ` FROM bridge_domains WHERE vrf_id = $1`
	args := []any{vrfID}
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
		return nil, false, fmt.Errorf("list bridge domains: %w", err)
	}
	defer rows.Close()

	var bds []model.BridgeDomain
	for rows.Next() {
		bd, err := scanBridgeDomain(rows)
		if err != nil {
			return nil, false, fmt.Errorf("scan bridge domain: %w", err)
		}
		bds = append(bds, *bd)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate bridge domains: %w", err)
	}

	hasMore := len(bds) > params.Limit
	if hasMore {
		bds = bds[:params.Limit]
	}
	return bds, hasMore, nil
}

func (s *BridgeDomainService) Update(ctx context.Context, bd *model.BridgeDomain) error {
	if err := validateBridgeDomain(bd); err != nil {
		return err
	}

	_, err := s.db.Exec(ctx,
		`UPDATE bridge_domains SET name = $1, name_alias = $2, description = $3, comments = $4,
		 ipam_tenant_id = $5, advertise_host_routes_enabled = $6, arp_flooding_enabled = $7,
		 clear_remote_mac_enabled = $8, dhcp_labels = $9, ep_move_detection_enabled = $10,
		 igmp_interface_policy_name = $11, igmp_snooping_policy_name = $12,
		 ip_data_plane_learning_enabled = $13, limit_ip_learn_enabled = $14, mac_address = $15,
		 multi_destination_flooding = $16, pim_ipv4_enabled = $17, pim_ipv4_destination_filter = $18,
		 pim_ipv4_source_filter = $19, pim_ipv6_enabled = $20, unicast_routing_enabled = $21,
		 unknown_ipv4_multicast = $22, unknown_ipv6_multicast = $23, unknown_unicast = $24,
		 virtual_mac_address = $25, updated_at = now()
		 WHERE id = $26`,
		bd.Name, bd.NameAlias, bd.Description, bd.Comments,
		bd.IPAMTenantID, bd.AdvertiseHostRoutesEnabled, bd.ARPFloodingEnabled,
		bd.ClearRemoteMACEnabled, bd.DHCPLabels, bd.EPMoveDetectionEnabled,
		bd.IGMPInterfacePolicyName, bd.IGMPSnoopingPolicyName,
		bd.IPDataPlaneLearningEnabled, bd.LimitIPLearnEnabled, bd.MACAddress,
		bd.MultiDestinationFlooding, bd.PIMIPv4Enabled, bd.PIMIPv4DestinationFilter,
		bd.PIMIPv4SourceFilter, bd.PIMIPv6Enabled, bd.UnicastRoutingEnabled,
		bd.UnknownIPv4Multicast, bd.UnknownIPv6Multicast, bd.UnknownUnicast,
		bd.VirtualMACAddress, bd.ID,
	)
	if err != nil {
		return fmt.Errorf("update bridge domain %s: %w", bd.ID, dbError(err))
	}
	return nil
}

func (s *BridgeDomainService) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM bridge_domains WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete bridge domain %s: %w", id, dbError(err))
	}
	return nil
}
