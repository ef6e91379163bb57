package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/service"
)

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Success: false, Message: message})
}

// writeServiceError maps the checkout error taxonomy onto HTTP status
// codes: 400 for validation, 404 for not-found, 409 for stock conflicts,
// 403 for ownership. The message texts are the contract and pass through
// unchanged.
func writeServiceError(w http.ResponseWriter, err error) {
	var notFound *service.ListingNotFoundError
	var noStock *service.InsufficientStockError

	switch {
	case errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidReview),
		errors.Is(err, entity.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &noStock):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, entity.ErrLineNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
