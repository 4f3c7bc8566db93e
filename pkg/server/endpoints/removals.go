package endpoints

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ankush-tewari/holograph/pkg/server"
)

// CreateRemovalRequest names the principal whose removal is requested.
type CreateRemovalRequest struct {
	TargetUserID string `json:"target_user_id"`
}

// RemovalResponse is the public shape of a pending removal request.
type RemovalResponse struct {
	ID           string    `json:"id"`
	HolographID  string    `json:"holograph_id"`
	TargetUserID string    `json:"target_user_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRemovalsEndpoints registers the principal-removal workflow.
func RegisterRemovalsEndpoints(s *server.Server) {
	s.Router.HandleFunc("/holographs/{holograph_id}/removals", handleCreateRemoval(s)).Methods("POST")
	s.Router.HandleFunc("/removals/{removal_id}/accept", handleRespondRemoval(s, true)).Methods("POST")
	s.Router.HandleFunc("/removals/{removal_id}/decline", handleRespondRemoval(s, false)).Methods("POST")
}

func handleCreateRemoval(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		holographID := mux.Vars(r)["holograph_id"]
		var req CreateRemovalRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.TargetUserID == "" {
			respondWithError(w, http.StatusBadRequest, "target_user_id is required")
			return
		}

		removal, err := s.Removals.Request(userID, holographID, req.TargetUserID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, RemovalResponse{
			ID:           removal.ID,
			HolographID:  removal.HolographID,
			TargetUserID: removal.TargetUserID,
			Status:       removal.Status,
			CreatedAt:    removal.CreatedAt,
		})
	}
}

func handleRespondRemoval(s *server.Server, accept bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		removalID := mux.Vars(r)["removal_id"]

		if err := s.Removals.Respond(userID, removalID, accept); err != nil {
			respondWithServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
