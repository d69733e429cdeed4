package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractResource(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		path         string
		resourceType *string
		resourceID   *string
	}{
		{"/api/v1/tenants", strPtr("tenants"), nil},
		{"/api/v1/tenants/abc", strPtr("tenants"), strPtr("abc")},
		{"/api/v1/tenants/abc/vrfs", strPtr("vrfs"), nil},
		{"/api/v1/tenants/abc/vrfs/def", strPtr("vrfs"), strPtr("def")},
		{"/api/v1/bridge-domains/bd1/subnets", strPtr("subnets"), nil},
		{"/api/v1/search", strPtr("search"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resourceType, resourceID := extractResource(tt.path)

			if tt.resourceType == nil {
				assert.Nil(t, resourceType)
			} else {
				require.NotNil(t, resourceType)
				assert.Equal(t, *tt.resourceType, *resourceType)
			}

			if tt.resourceID == nil {
				assert.Nil(t, resourceID)
			} else {
				require.NotNil(t, resourceID)
				assert.Equal(t, *tt.resourceID, *resourceID)
			}
		})
	}
}
