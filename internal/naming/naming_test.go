package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName_Valid(t *testing.T) {
	for _, name := range []string{
		"ACITestTenant1",
		"prod",
		"a",
		"Tenant_01.web:dmz-zone",
		strings.Repeat("x", 64),
	} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, ValidateName("name", name))
		})
	}
}

func TestValidateName_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"spaces", "ACI Test Tenant 1"},
		{"too long", strings.Repeat("x", 65)},
		{"slash", "tenant/web"},
		{"non-ascii", "tenantö"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("name", tt.value)
			require.Error(t, err)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "name", fe.Field)
		})
	}
}

// Validation is idempotent: a value that passes once keeps passing.
func TestValidateName_Idempotent(t *testing.T) {
	require.NoError(t, ValidateName("name", "ACITestTenant1"))
	require.NoError(t, ValidateName("name", "ACITestTenant1"))
}

func TestValidateAlias(t *testing.T) {
	assert.NoError(t, ValidateAlias("name_alias", ""))
	assert.NoError(t, ValidateAlias("name_alias", "TestingTenant"))
	assert.Error(t, ValidateAlias("name_alias", "Invalid Alias"))
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription("description", ""))
	assert.NoError(t, ValidateDescription("description", "Tenant for testing"))
	assert.NoError(t, ValidateDescription("description", "Covers apps (web; db) @ site-1, 100% managed!"))
	assert.Error(t, ValidateDescription("description", "Invalid Description: ö"))
	assert.Error(t, ValidateDescription("description", strings.Repeat("x", 257)))
}

func TestValidateLabels(t *testing.T) {
	assert.NoError(t, ValidateLabels("dns_labels", nil))
	assert.NoError(t, ValidateLabels("dns_labels", []string{"DNS1", "DNS2"}))
	assert.Error(t, ValidateLabels("dns_labels", []string{"DNS1", "bad label"}))
}

func TestValidateMAC(t *testing.T) {
	assert.NoError(t, ValidateMAC("mac_address", ""))
	assert.NoError(t, ValidateMAC("mac_address", "00:11:22:33:44:55"))
	assert.NoError(t, ValidateMAC("mac_address", "00:22:BD:F8:19:FF"))
	assert.Error(t, ValidateMAC("mac_address", "00:11:22:33:44"))
	assert.Error(t, ValidateMAC("mac_address", "not-a-mac"))
}

func TestValidateChoice(t *testing.T) {
	choices := []string{"bd-flood", "encap-flood", "drop"}
	assert.NoError(t, ValidateChoice("multi_destination_flooding", "bd-flood", choices))
	err := ValidateChoice("multi_destination_flooding", "broadcast", choices)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestValidateGateway(t *testing.T) {
	assert.NoError(t, ValidateGateway("gateway_ip", "10.0.0.1/24"))
	assert.NoError(t, ValidateGateway("gateway_ip", "2001:db8::1/64"))
	assert.Error(t, ValidateGateway("gateway_ip", ""))
	assert.Error(t, ValidateGateway("gateway_ip", "10.0.0.1"))
	assert.Error(t, ValidateGateway("gateway_ip", "10.0.0.1/33"))
}
