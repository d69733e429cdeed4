// Package naming implements the fabric object naming and content rules
// enforced before any record is persisted.
package naming

import (
	"fmt"
	"net"
	"net/netip"
	"regexp"
	"slices"
)

const (
	MaxNameLength        = 64
	MaxDescriptionLength = 256
)

var (
	// Fabric object names: letters, digits, and _.:- only.
	nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)

	// Descriptions allow a wider but strictly ASCII character set.
	descriptionRegex = regexp.MustCompile(`^[a-zA-Z0-9\\!#$%()*,\-./:;@ _{|}~?&+"'^=\[\]]*$`)
)

// FieldError reports a validation failure against a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateName checks a required fabric object name.
func ValidateName(field, value string) error {
	if value == "" {
		return &FieldError{Field: field, Message: "name is required"}
	}
	return ValidateAlias(field, value)
}

// ValidateAlias checks an optional fabric object name; empty is allowed.
func ValidateAlias(field, value string) error {
	if value == "" {
		return nil
	}
	if len(value) > MaxNameLength {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", MaxNameLength)}
	}
	if !nameRegex.MatchString(value) {
		return &FieldError{Field: field, Message: "only letters, digits and the characters _.:- are allowed"}
	}
	return nil
}

// ValidateDescription checks an optional description string.
func ValidateDescription(field, value string) error {
	if value == "" {
		return nil
	}
	if len(value) > MaxDescriptionLength {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", MaxDescriptionLength)}
	}
	if !descriptionRegex.MatchString(value) {
		return &FieldError{Field: field, Message: "contains characters outside the allowed ASCII set"}
	}
	return nil
}

// ValidateLabels applies the name rule to every element of a label list.
func ValidateLabels(field string, values []string) error {
	for _, v := range values {
		if err := ValidateName(field, v); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMAC checks MAC address syntax. Empty is allowed.
func ValidateMAC(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := net.ParseMAC(value); err != nil {
		return &FieldError{Field: field, Message: "invalid MAC address"}
	}
	return nil
}

// ValidateChoice checks membership in a closed choice set.
func ValidateChoice(field, value string, choices []string) error {
	if !slices.Contains(choices, value) {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be one of %v", choices)}
	}
	return nil
}

// ValidateGateway checks a gateway address in prefix notation, e.g.
// "10.0.0.1/24" or "2001:db8::1/64".
func ValidateGateway(field, value string) error {
	if value == "" {
		return &FieldError{Field: field, Message: "gateway IP is required"}
	}
	if _, err := netip.ParsePrefix(value); err != nil {
		return &FieldError{Field: field, Message: "must be an IP address in prefix notation"}
	}
	return nil
}
