package endpoints

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/server"
)

// CreateHolographRequest is the payload for creating a holograph.
type CreateHolographRequest struct {
	Title string `json:"title"`
}

// HolographResponse is the public shape of a holograph.
type HolographResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TransferRequest names the principal receiving ownership.
type TransferRequest struct {
	NewOwnerID string `json:"new_owner_id"`
}

// OwnershipAuditResponse is one row of the transfer trail.
type OwnershipAuditResponse struct {
	HolographID string    `json:"holograph_id"`
	OldOwnerID  string    `json:"old_owner_id"`
	NewOwnerID  string    `json:"new_owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterHolographsEndpoints registers holograph lifecycle routes.
func RegisterHolographsEndpoints(s *server.Server) {
	s.Router.HandleFunc("/holographs", handleCreateHolograph(s)).Methods("POST")
	s.Router.HandleFunc("/holographs/{holograph_id}", handleFetchHolograph(s)).Methods("GET")
	s.Router.HandleFunc("/holographs/{holograph_id}/transfer", handleTransferOwnership(s)).Methods("POST")
	s.Router.HandleFunc("/holographs/{holograph_id}/ownership-history", handleOwnershipHistory(s)).Methods("GET")
}

func handleCreateHolograph(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req CreateHolographRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		h, err := s.Holographs.Create(r.Context(), userID, req.Title)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, holographResponse(h))
	}
}

func handleFetchHolograph(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		holographID := mux.Vars(r)["holograph_id"]

		h, err := s.Holographs.Fetch(holographID, userID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, holographResponse(h))
	}
}

func handleTransferOwnership(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		holographID := mux.Vars(r)["holograph_id"]
		var req TransferRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.NewOwnerID == "" {
			respondWithError(w, http.StatusBadRequest, "new_owner_id is required")
			return
		}

		if err := s.Transfers.Transfer(userID, holographID, req.NewOwnerID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleOwnershipHistory(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		holographID := mux.Vars(r)["holograph_id"]

		rows, err := s.Holographs.OwnershipHistory(holographID, userID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		history := make([]OwnershipAuditResponse, 0, len(rows))
		for _, row := range rows {
			history = append(history, OwnershipAuditResponse{
				HolographID: row.HolographID,
				OldOwnerID:  row.OldOwnerID,
				NewOwnerID:  row.NewOwnerID,
				CreatedAt:   row.CreatedAt,
			})
		}
		respondWithJSON(w, http.StatusOK, history)
	}
}

func holographResponse(h *model.Holograph) HolographResponse {
	return HolographResponse{
		ID:        h.ID,
		Title:     h.Title,
		OwnerID:   h.OwnerID,
		CreatedAt: h.CreatedAt,
	}
}
