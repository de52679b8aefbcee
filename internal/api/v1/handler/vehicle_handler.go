package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"transportpro/internal/api/v1/dto"
	"transportpro/internal/service"
)

type VehicleHandler struct {
	vehicleService service.VehicleService
	authService    service.AuthService
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewVehicleHandler(vehicleService service.VehicleService, authService service.AuthService, v *validator.Validate, logger zerolog.Logger) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService, authService: authService, validate: v, logger: logger}
}

// RegisterRoutes mounts the vehicle endpoints. Listing and single-vehicle
// reads are public; everything else requires a bearer token.
func (h *VehicleHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("GET /vehicles", http.HandlerFunc(h.list))
	mux.Handle("POST /vehicles", authMw(http.HandlerFunc(h.create)))
	mux.Handle("GET /vehicles/my", authMw(http.HandlerFunc(h.listMine)))
	mux.Handle("GET /vehicles/{id}", http.HandlerFunc(h.get))
	mux.Handle("PUT /vehicles/{id}", authMw(http.HandlerFunc(h.update)))
	mux.Handle("DELETE /vehicles/{id}", authMw(http.HandlerFunc(h.delete)))
}

func (h *VehicleHandler) create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.authService)
	if !ok {
		return
	}

	var req dto.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	vehicle, err := h.vehicleService.Create(r.Context(), user, req.Input())
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionRequired) {
			http.Error(w, "Active subscription required to add vehicles", http.StatusForbidden)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to create vehicle")
		http.Error(w, "Failed to create vehicle", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewVehicleResponse(vehicle))
}

func parseFloatParam(r *http.Request, name string) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseIntParam(r *http.Request, name, fallback string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		raw = fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		n, _ = strconv.Atoi(fallback)
	}
	return n
}

func (h *VehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	params := service.ListParams{
		VehicleType: r.URL.Query().Get("vehicle_type"),
		City:        r.URL.Query().Get("city"),
		MinCapacity: parseFloatParam(r, "min_capacity"),
		MaxPrice:    parseFloatParam(r, "max_price"),
		Limit:       parseIntParam(r, "limit", "50"),
		Offset:      parseIntParam(r, "offset", "0"),
	}

	vehicles, err := h.vehicleService.List(r.Context(), params)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list vehicles")
		http.Error(w, "Failed to list vehicles", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewVehicleResponses(vehicles))
}

func (h *VehicleHandler) listMine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.authService)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.ListOwnedBy(r.Context(), user)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list own vehicles")
		http.Error(w, "Failed to list vehicles", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewVehicleResponses(vehicles))
}

func (h *VehicleHandler) get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicleService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to fetch vehicle")
		http.Error(w, "Failed to fetch vehicle", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewVehicleResponse(vehicle))
}

func (h *VehicleHandler) update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.authService)
	if !ok {
		return
	}

	var req dto.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	vehicle, err := h.vehicleService.Update(r.Context(), user, r.PathValue("id"), req.Input())
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to update vehicle")
		http.Error(w, "Failed to update vehicle", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewVehicleResponse(vehicle))
}

func (h *VehicleHandler) delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.authService)
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to delete vehicle")
		http.Error(w, "Failed to delete vehicle", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted"})
}
