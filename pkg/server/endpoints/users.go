package endpoints

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/server"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// CreateUserRequest is the payload for user registration.
type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// RegisterUsersEndpoints registers user registration and lookup.
func RegisterUsersEndpoints(s *server.Server) {
	s.Router.HandleFunc("/users", handleCreateUser(s)).Methods("POST")
	s.Router.HandleFunc("/users/me", handleWhoami(s)).Methods("GET")
}

func handleCreateUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Email == "" {
			respondWithError(w, http.StatusBadRequest, "email is required")
			return
		}

		user := &model.User{
			ID:    uuid.NewString(),
			Email: req.Email,
			Name:  req.Name,
		}
		if err := s.Users.Create(user); err != nil {
			if errors.Is(err, store.ErrConflict) {
				respondWithError(w, http.StatusConflict, "a user with that email already exists")
				return
			}
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, UserResponse{ID: user.ID, Email: user.Email, Name: user.Name})
	}
}

func handleWhoami(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := s.Users.ByID(userID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, UserResponse{ID: user.ID, Email: user.Email, Name: user.Name})
	}
}
