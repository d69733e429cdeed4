package handler

import (
	"errors"
	"net/http"

	"github.com/acifab/fabric-inventory/internal/api/response"
	"github.com/acifab/fabric-inventory/internal/core"
	"github.com/acifab/fabric-inventory/internal/naming"
)

// writeServiceError maps service-layer failures to HTTP status codes.
// Validation failures become 400, missing rows 404, and constraint
// violations 409.
func writeServiceError(w http.ResponseWriter, err error) {
	var fieldErr *naming.FieldError
	switch {
	case errors.As(err, &fieldErr):
		response.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, core.ErrNotFound):
		response.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrConflict), errors.Is(err, core.ErrReferenced):
		response.WriteError(w, http.StatusConflict, err.Error())
	default:
		response.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
