package autocomplete

import (
	"github.com/gorilla/mux"
)

// Register mounts an endpoint on the router at path for GET requests.
func Register(router *mux.Router, path string, e *Endpoint) {
	router.Handle(path, e).Methods("GET")
}

// RegisterEndpoints mounts endpoints under an /autocomplete prefix, one
// per slug, and returns the subrouter for further middleware wiring.
func RegisterEndpoints(router *mux.Router, endpoints map[string]*Endpoint) *mux.Router {
	sub := router.PathPrefix("/autocomplete").Subrouter()
	for slug, e := range endpoints {
		sub.Handle("/"+slug, e).Methods("GET")
	}
	return sub
}
