package core

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Field match weights; a lower weight ranks higher.
const (
	searchWeightName        = 100
	searchWeightNameAlias   = 300
	searchWeightDescription = 500
)

// SearchResult is a single match from the cross-entity search index.
type SearchResult struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameAlias   string `json:"name_alias,omitempty"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	Weight      int    `json:"weight"`
}

// SearchService provides weighted free-text lookup across all fabric objects.
type SearchService struct {
	db DB
}

func NewSearchService(db DB) *SearchService {
	return &SearchService{db: db}
}

// Search runs parallel per-entity queries, ranking matches on name before
// name_alias before description, and merges them sorted by weight.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + query + "%"

	weightExpr := fmt.Sprintf(`CASE
		WHEN name ILIKE $1 THEN %d
		WHEN name_alias ILIKE $1 THEN %d
		ELSE %d END`,
		searchWeightName, searchWeightNameAlias, searchWeightDescription)

	queries := []string{
		`SELECT 'tenant', id, name, name_alias, description, '', ` + weightExpr + `
		 FROM tenants
		 WHERE name ILIKE $1 OR name_alias ILIKE $1 OR description ILIKE $1
		 ORDER BY 7 LIMIT $2`,
		`SELECT 'app_profile', id, name, name_alias, description, tenant_id, ` + weightExpr + `
		 FROM app_profiles
		 WHERE name ILIKE $1 OR name_alias ILIKE $1 OR description ILIKE $1
		 ORDER BY 7 LIMIT $2`,
		`SELECT 'vrf', id, name, name_alias, description, tenant_id, ` + weightExpr + `
		 FROM vrfs
		 WHERE name ILIKE $1 OR name_alias ILIKE $1 OR description ILIKE $1
		 ORDER BY 7 LIMIT $2`,
		`SELECT 'bridge_domain', id, name, name_alias, description, vrf_id, ` + weightExpr + `
		 FROM bridge_domains
		 WHERE name ILIKE $1 OR name_alias ILIKE $1 OR description ILIKE $1
		 ORDER BY 7 LIMIT $2`,
		`SELECT 'bridge_domain_subnet', id, name, name_alias, description, bridge_domain_id, ` + weightExpr + `
		 FROM bridge_domain_subnets
		 WHERE name ILIKE $1 OR name_alias ILIKE $1 OR description ILIKE $1
		 ORDER BY 7 LIMIT $2`,
		`SELECT 'endpoint_group', id, name, name_alias, description, app_profile_id, ` + weightExpr + `
		 FROM endpoint_groups
		 WHERE name ILIKE $1 OR name_alias ILIKE $1 OR description ILIKE $1
		 ORDER BY 7 LIMIT $2`,
	}

	results := make([][]SearchResult, len(queries))
	g, ctx := errgroup.WithContext(ctx)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			rows, err := s.db.Query(ctx, q, pattern, limit)
			if err != nil {
				return fmt.Errorf("search query %d: %w", i, err)
			}
			defer rows.Close()

			for rows.Next() {
				var r SearchResult
				if err := rows.Scan(&r.Type, &r.ID, &r.Name, &r.NameAlias, &r.Description, &r.ParentID, &r.Weight); err != nil {
					return fmt.Errorf("scan search result: %w", err)
				}
				results[i] = append(results[i], r)
			}
			return rows.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []SearchResult
	for _, rs := range results {
		merged = append(merged, rs...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Weight != merged[j].Weight {
			return merged[i].Weight < merged[j].Weight
		}
		return merged[i].Name < merged[j].Name
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}
