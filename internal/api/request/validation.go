package request

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/acifab/fabric-inventory/internal/naming"
)

var validate = validator.New()

func init() {
	// Fabric object name charset; pair with omitempty for optional fields.
	validate.RegisterValidation("aciname", func(fl validator.FieldLevel) bool {
		return naming.ValidateName(fl.FieldName(), fl.Field().String()) == nil
	})
	validate.RegisterValidation("acidesc", func(fl validator.FieldLevel) bool {
		return naming.ValidateDescription(fl.FieldName(), fl.Field().String()) == nil
	})
}

func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

func RequireID(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("missing required ID")
	}
	return s, nil
}
