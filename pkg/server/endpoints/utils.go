package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/envelope"
	"github.com/ankush-tewari/holograph/pkg/identity"
	"github.com/ankush-tewari/holograph/pkg/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithServiceError maps the service error taxonomy onto HTTP
// statuses. Decryption failures deliberately carry no detail.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, access.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, access.ErrDenied):
		respondWithError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, store.ErrOwnerProtected):
		respondWithError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrInvalidState):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, envelope.ErrDecryptionFailure):
		respondWithError(w, http.StatusInternalServerError, "decryption failure")
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}

// currentUser pulls the authenticated user from the request context.
// The middleware guarantees it is present on protected routes.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := identity.Get(r.Context())
	if !ok || id.UserID == "" {
		respondWithError(w, http.StatusUnauthorized, "authentication missing")
		return "", false
	}
	return id.UserID, true
}

// decodeJSON parses a request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
