package endpoints

import (
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ankush-tewari/holograph/pkg/records"
	"github.com/ankush-tewari/holograph/pkg/server"
)

// VitalDocumentRequest carries the plaintext fields of a vital
// document.
type VitalDocumentRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// VitalDocumentResponse is a decrypted vital document.
type VitalDocumentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Notes         string    `json:"notes"`
	HasFile       bool      `json:"has_file"`
	DecryptFailed bool      `json:"decrypt_failed,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FinancialAccountRequest carries the plaintext fields of a financial
// account.
type FinancialAccountRequest struct {
	Institution string `json:"institution"`
	AccountName string `json:"account_name"`
	Notes       string `json:"notes"`
}

// FinancialAccountResponse is a decrypted financial account.
type FinancialAccountResponse struct {
	ID            string    `json:"id"`
	Institution   string    `json:"institution"`
	AccountName   string    `json:"account_name"`
	Notes         string    `json:"notes"`
	DecryptFailed bool      `json:"decrypt_failed,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RegisterRecordsEndpoints registers the encrypted record sections and
// the vital-document file attachment routes.
func RegisterRecordsEndpoints(s *server.Server) {
	base := "/holographs/{holograph_id}"

	s.Router.HandleFunc(base+"/vital-documents", handleCreateVitalDocument(s)).Methods("POST")
	s.Router.HandleFunc(base+"/vital-documents", handleListVitalDocuments(s)).Methods("GET")
	s.Router.HandleFunc(base+"/vital-documents/{record_id}", handleGetVitalDocument(s)).Methods("GET")
	s.Router.HandleFunc(base+"/vital-documents/{record_id}", handleDeleteVitalDocument(s)).Methods("DELETE")
	s.Router.HandleFunc(base+"/vital-documents/{record_id}/file", handleAttachFile(s)).Methods("PUT")
	s.Router.HandleFunc(base+"/vital-documents/{record_id}/file", handleDownloadFile(s)).Methods("GET")
	s.Router.HandleFunc(base+"/vital-documents/{record_id}/file", handleDetachFile(s)).Methods("DELETE")

	s.Router.HandleFunc(base+"/financial-accounts", handleCreateFinancialAccount(s)).Methods("POST")
	s.Router.HandleFunc(base+"/financial-accounts", handleListFinancialAccounts(s)).Methods("GET")
	s.Router.HandleFunc(base+"/financial-accounts/{record_id}", handleGetFinancialAccount(s)).Methods("GET")
}

func handleCreateVitalDocument(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		holographID := mux.Vars(r)["holograph_id"]
		var req VitalDocumentRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		view, err := s.Records.CreateVitalDocument(r.Context(), userID, holographID, records.VitalDocumentInput{
			Name:  req.Name,
			Notes: req.Notes,
		})
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, vitalDocumentResponse(view))
	}
}

func handleListVitalDocuments(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		holographID := mux.Vars(r)["holograph_id"]

		views, err := s.Records.ListVitalDocuments(r.Context(), userID, holographID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		out := make([]VitalDocumentResponse, 0, len(views))
		for i := range views {
			out = append(out, vitalDocumentResponse(&views[i]))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleGetVitalDocument(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		vars := mux.Vars(r)

		view, err := s.Records.GetVitalDocument(r.Context(), userID, vars["holograph_id"], vars["record_id"])
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, vitalDocumentResponse(view))
	}
}

func handleDeleteVitalDocument(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		vars := mux.Vars(r)

		if err := s.Records.DeleteVitalDocument(r.Context(), userID, vars["holograph_id"], vars["record_id"]); err != nil {
			respondWithServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAttachFile(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		vars := mux.Vars(r)

		name := r.URL.Query().Get("filename")
		if name == "" {
			respondWithError(w, http.StatusBadRequest, "filename query parameter is required")
			return
		}

		limit := s.Config.MaxUploadBytes
		content, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "failed to read upload")
			return
		}
		if int64(len(content)) > limit {
			respondWithError(w, http.StatusRequestEntityTooLarge, "upload exceeds the attachment size limit")
			return
		}
		if len(content) == 0 {
			respondWithError(w, http.StatusBadRequest, "upload is empty")
			return
		}

		if err := s.Records.AttachFile(r.Context(), userID, vars["holograph_id"], vars["record_id"], name, content); err != nil {
			respondWithServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleDownloadFile(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		vars := mux.Vars(r)

		content, err := s.Records.DownloadFile(r.Context(), userID, vars["holograph_id"], vars["record_id"])
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	}
}

func handleDetachFile(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		vars := mux.Vars(r)

		if err := s.Records.DetachFile(r.Context(), userID, vars["holograph_id"], vars["record_id"]); err != nil {
			respondWithServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCreateFinancialAccount(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		holographID := mux.Vars(r)["holograph_id"]
		var req FinancialAccountRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		view, err := s.Records.CreateFinancialAccount(r.Context(), userID, holographID, records.FinancialAccountInput{
			Institution: req.Institution,
			AccountName: req.AccountName,
			Notes:       req.Notes,
		})
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, financialAccountResponse(view))
	}
}

func handleListFinancialAccounts(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		holographID := mux.Vars(r)["holograph_id"]

		views, err := s.Records.ListFinancialAccounts(r.Context(), userID, holographID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		out := make([]FinancialAccountResponse, 0, len(views))
		for i := range views {
			out = append(out, financialAccountResponse(&views[i]))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleGetFinancialAccount(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		vars := mux.Vars(r)

		view, err := s.Records.GetFinancialAccount(r.Context(), userID, vars["holograph_id"], vars["record_id"])
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, financialAccountResponse(view))
	}
}

func vitalDocumentResponse(v *records.VitalDocumentView) VitalDocumentResponse {
	return VitalDocumentResponse{
		ID:            v.ID,
		Name:          v.Name,
		Notes:         v.Notes,
		HasFile:       v.HasFile,
		DecryptFailed: v.DecryptFailed,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func financialAccountResponse(v *records.FinancialAccountView) FinancialAccountResponse {
	return FinancialAccountResponse{
		ID:            v.ID,
		Institution:   v.Institution,
		AccountName:   v.AccountName,
		Notes:         v.Notes,
		DecryptFailed: v.DecryptFailed,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
