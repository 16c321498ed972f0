package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"officina/internal/logger"
	"officina/internal/metrics"
	"officina/internal/service"
)

type AvailabilityHandler struct {
	Service *service.AvailabilityService
	log     zerolog.Logger
}

func NewAvailabilityHandler(svc *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		Service: svc,
		log:     logger.New("api"),
	}
}

// CheckAvailability handles POST /api/availability.
func (h *AvailabilityHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { metrics.RequestDuration.Observe(time.Since(start).Seconds()) }()

	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		metrics.AvailabilityRequests.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid JSON",
			Message: err.Error(),
		})
		return
	}

	req, fieldErrs := ValidateAvailabilityRequest(body)
	if len(fieldErrs) > 0 {
		metrics.AvailabilityRequests.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: fieldErrs,
		})
		return
	}

	resp, err := h.Service.CheckAvailability(req)
	if err != nil {
		metrics.AvailabilityRequests.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("availability computation failed")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	metrics.AvailabilityRequests.WithLabelValues("ok").Inc()
	for _, result := range resp.Results {
		metrics.SlotsComputed.Add(float64(len(result.AvailableSlots)))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /health.
func (h *AvailabilityHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: "workshop-availability-service",
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
