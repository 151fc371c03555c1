// Package server provides the HTTP shell for gormbase services.
//
// This package wires gorilla/mux routing behind a logging handler with
// request timeouts, leaving endpoint registration to the packages that
// own the routes.
//
// # Server Setup
//
//	srv := server.NewServer(db, ":8080")
//	srv.RegisterHealthEndpoint()
//	envvar.RegisterEndpoints(srv.Router, store, auth.Middleware)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
package server
