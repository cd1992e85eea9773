package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"pb-server/models"
	services "pb-server/service"
)

type PackageHandler struct {
	packageService *services.PackageService
}

func NewPackageHandler(packageService *services.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// BuildPackage handles POST /v1/build-package. The body is a TripResponse;
// a malformed body is the only client error. Data-quality problems inside
// sections degrade to dropped sections, not errors.
func (h *PackageHandler) BuildPackage(w http.ResponseWriter, r *http.Request) {
	var trip models.TripResponse
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		log.Printf("[PackageHandler] Invalid trip payload: %v", err)
		http.Error(w, "Invalid trip payload", http.StatusBadRequest)
		return
	}

	start := time.Now()
	layout := h.packageService.BuildPackage(&trip)
	log.Printf("[PackageHandler] Package built in %.2f ms", float64(time.Since(start).Microseconds())/1000)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(layout); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Ping handles GET /ping
func (h *PackageHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
