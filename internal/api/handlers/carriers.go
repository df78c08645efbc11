package handlers

import (
	"errors"
	"net/http"
	"shipping-quote-service/internal/api/dto"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/services"
	"strings"
)

// CarrierHandler exposes read-only carrier and zone coverage endpoints.
type CarrierHandler struct {
	Engine *services.QuoteEngine
}

// Available lists the carriers whose rate tables cover a destination.
func (h *CarrierHandler) Available(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	if destination == "" {
		writeError(w, r, http.StatusBadRequest, "destination query parameter is required")
		return
	}

	carriers, err := h.Engine.AvailableCarriers(destination)
	if errors.Is(err, domain.ErrUnsupportedDestination) {
		writeError(w, r, http.StatusUnprocessableEntity, "destination not supported")
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	zone, _ := services.ResolveZone(destination)

	res := dto.CarriersResponse{
		Destination: strings.ToUpper(destination),
		Zone:        string(zone),
		Carriers:    make([]string, 0, len(carriers)),
	}
	for _, c := range carriers {
		res.Carriers = append(res.Carriers, string(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Zones lists every pricing zone covered by at least one carrier.
func (h *CarrierHandler) Zones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	zones := h.Engine.SupportedZones()

	res := dto.ZonesResponse{Zones: make([]string, 0, len(zones))}
	for _, z := range zones {
		res.Zones = append(res.Zones, string(z))
	}

	writeJSON(w, r, http.StatusOK, res)
}
