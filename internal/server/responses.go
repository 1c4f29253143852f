package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Fr4ncx-04/Balance/internal/engine"
	"github.com/Fr4ncx-04/Balance/internal/ledger"
	"github.com/Fr4ncx-04/Balance/internal/model"
	"github.com/Fr4ncx-04/Balance/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func mapError(err error) int {
	var pre *engine.PreconditionError
	var dom *engine.DomainError
	switch {
	case errors.As(err, &pre):
		return http.StatusConflict
	case errors.As(err, &dom):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrUnknownOperation),
		errors.Is(err, model.ErrTooFewLines),
		errors.Is(err, model.ErrEmptyAccount),
		errors.Is(err, model.ErrUnknownCategory),
		errors.Is(err, model.ErrNegativeAmount),
		errors.Is(err, model.ErrUnbalancedEntry),
		errors.Is(err, ledger.ErrCategoryConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
