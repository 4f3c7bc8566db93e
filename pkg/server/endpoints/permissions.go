package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ankush-tewari/holograph/pkg/audit"
	"github.com/ankush-tewari/holograph/pkg/server"
)

// SetPermissionRequest assigns a delegate's access level on a section.
type SetPermissionRequest struct {
	SectionID   string `json:"section_id"`
	AccessLevel string `json:"access_level"`
}

// RegisterPermissionsEndpoints registers delegate management routes.
// Delegates leave without ceremony; only principal removal needs the
// consent workflow.
func RegisterPermissionsEndpoints(s *server.Server) {
	s.Router.HandleFunc("/holographs/{holograph_id}/delegates/{user_id}/permissions", handleSetPermission(s)).Methods("PUT")
	s.Router.HandleFunc("/holographs/{holograph_id}/delegates/{user_id}", handleRemoveDelegate(s)).Methods("DELETE")
}

func handleSetPermission(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		vars := mux.Vars(r)
		holographID := vars["holograph_id"]
		delegateID := vars["user_id"]
		var req SetPermissionRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := s.Registry.CanManage(holographID, userID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		if err := s.Registry.SetDelegatePermission(holographID, delegateID, req.SectionID, req.AccessLevel); err != nil {
			respondWithServiceError(w, err)
			return
		}

		audit.Log(audit.PermissionChangeEvent{
			HolographID: holographID,
			ActorID:     userID,
			DelegateID:  delegateID,
			SectionID:   req.SectionID,
			AccessLevel: req.AccessLevel,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleRemoveDelegate(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		vars := mux.Vars(r)
		holographID := vars["holograph_id"]
		delegateID := vars["user_id"]

		if err := s.Registry.CanManage(holographID, userID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		if err := s.Registry.RemoveDelegate(holographID, delegateID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
