package endpoints

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ankush-tewari/holograph/pkg/server"
)

// CreateInvitationRequest is the payload for inviting a user.
type CreateInvitationRequest struct {
	InviteeEmail string `json:"invitee_email"`
	Role         string `json:"role"`
}

// InvitationResponse is the public shape of a pending invitation.
type InvitationResponse struct {
	ID           string    `json:"id"`
	HolographID  string    `json:"holograph_id"`
	InviteeEmail string    `json:"invitee_email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterInvitationsEndpoints registers the invitation workflow.
func RegisterInvitationsEndpoints(s *server.Server) {
	s.Router.HandleFunc("/holographs/{holograph_id}/invitations", handleCreateInvitation(s)).Methods("POST")
	s.Router.HandleFunc("/invitations/{invitation_id}/accept", handleRespondInvitation(s, true)).Methods("POST")
	s.Router.HandleFunc("/invitations/{invitation_id}/decline", handleRespondInvitation(s, false)).Methods("POST")
}

func handleCreateInvitation(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		holographID := mux.Vars(r)["holograph_id"]
		var req CreateInvitationRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		inv, err := s.Invitations.Invite(userID, holographID, req.InviteeEmail, req.Role)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, InvitationResponse{
			ID:           inv.ID,
			HolographID:  inv.HolographID,
			InviteeEmail: inv.InviteeEmail,
			Role:         inv.Role,
			Status:       inv.Status,
			CreatedAt:    inv.CreatedAt,
		})
	}
}

func handleRespondInvitation(s *server.Server, accept bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		invitationID := mux.Vars(r)["invitation_id"]

		if err := s.Invitations.Respond(userID, invitationID, accept); err != nil {
			respondWithServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
