package server

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Server wraps the HTTP stack shared by gormbase services.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	srv    *http.Server
}

// NewServer builds a server around a fresh router, with request logging
// and timeouts applied.
func NewServer(db *gorm.DB, addr string) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    addr,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router: router,
		DB:     db,
		srv:    srv,
	}
}

// RegisterHealthEndpoint responds on /healthz once the server is up.
func (s *Server) RegisterHealthEndpoint() {
	s.Router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}

// StartWithListener serves on an existing listener. Tests use this to run
// servers on ephemeral ports.
func (s Server) StartWithListener(ln net.Listener) error {
	return s.srv.Serve(ln)
}
