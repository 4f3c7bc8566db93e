package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/config"
	"github.com/ankush-tewari/holograph/pkg/holograph"
	"github.com/ankush-tewari/holograph/pkg/membership"
	"github.com/ankush-tewari/holograph/pkg/records"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// Services bundles the domain services and stores the endpoints serve.
type Services struct {
	Registry    *access.Registry
	Holographs  *holograph.Service
	Invitations *membership.Invitations
	Removals    *membership.Removals
	Transfers   *membership.Transfers
	Records     *records.Service
	Users       store.UsersStore
	Health      store.HealthStore
}

type Server struct {
	Services
	Router *mux.Router
	Config *config.HolographConfig
	DB     *gorm.DB
	srv    *http.Server
}

func NewServer(services Services, cfg *config.HolographConfig, db *gorm.DB, host string, port string) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Services: services,
		Router:   router,
		Config:   cfg,
		DB:       db,
		srv:      srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
