package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PackageHandler is the handler surface the router wires up.
type PackageHandler interface {
	BuildPackage(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	packageHandler PackageHandler
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	packageHandler PackageHandler,
	router *mux.Router) *Router {
	return &Router{
		packageHandler: packageHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects a TripResponse JSON body
	r.router.HandleFunc("/v1/build-package", r.packageHandler.BuildPackage).Methods("POST")

	r.router.HandleFunc("/ping", r.packageHandler.Ping).Methods("GET")
}
