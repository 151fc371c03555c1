package envvar

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gorm.io/datatypes"
)

// Representation is the wire form of a variable.
type Representation struct {
	Key       string         `json:"key"`
	Value     datatypes.JSON `json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Represent converts a variable into its wire form.
func Represent(v *EnvVar) Representation {
	return Representation{
		Key:       v.Key,
		Value:     v.Value,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// RegisterEndpoints mounts the variable endpoints under /variables and
// applies the given middleware to every route. The subrouter is returned
// so callers can attach more routes.
func RegisterEndpoints(router *mux.Router, store Store, middleware ...mux.MiddlewareFunc) *mux.Router {
	variablesRouter := router.PathPrefix("/variables").Subrouter()
	variablesRouter.Use(middleware...)

	// GET /variables - List all variables
	variablesRouter.HandleFunc("", handleListVariables(store)).Methods("GET")

	// GET /variables/{key} - Fetch a single variable
	variablesRouter.HandleFunc("/{key}", handleFetchVariable(store)).Methods("GET")

	// POST /variables/{key} - Create or update a variable value
	variablesRouter.HandleFunc("/{key}", handleSetVariable(store)).Methods("POST")

	// DELETE /variables/{key} - Remove a variable
	variablesRouter.HandleFunc("/{key}", handleUnsetVariable(store)).Methods("DELETE")

	return variablesRouter
}

func handleListVariables(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars, err := store.All(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list variables")
			return
		}

		results := make([]Representation, 0, len(vars))
		for i := range vars {
			results = append(results, Represent(&vars[i]))
		}
		respondWithJSON(w, http.StatusOK, results)
	}
}

func handleFetchVariable(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]

		v, err := store.Get(r.Context(), key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "variable not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to fetch variable")
			return
		}
		respondWithJSON(w, http.StatusOK, Represent(v))
	}
}

func handleSetVariable(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]

		body, err := io.ReadAll(r.Body)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "failed to read request body")
			return
		}
		if len(body) == 0 {
			respondWithError(w, http.StatusBadRequest, "request body required")
			return
		}

		// Bodies that are not valid JSON are stored as plain strings
		var value interface{}
		if err := json.Unmarshal(body, &value); err != nil {
			value = string(body)
		}

		v, err := store.Set(r.Context(), key, value)
		if err != nil {
			if errors.Is(err, ErrEmptyKey) || errors.Is(err, ErrKeyTooLong) {
				respondWithError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to store variable")
			return
		}
		respondWithJSON(w, http.StatusCreated, Represent(v))
	}
}

func handleUnsetVariable(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]

		if err := store.Unset(r.Context(), key); err != nil {
			if errors.Is(err, ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "variable not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to remove variable")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
