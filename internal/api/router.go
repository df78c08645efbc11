package api

import (
	"net/http"
	"shipping-quote-service/internal/api/handlers"
	"shipping-quote-service/internal/ports"
	"shipping-quote-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(engine *services.QuoteEngine, fx ports.FXProvider, quoteLog ports.QuoteLog) http.Handler {
	mux := http.NewServeMux()

	quoteHandler := &handlers.QuoteHandler{
		Engine: engine,
		FX:     fx,
		Log:    quoteLog,
	}
	carrierHandler := &handlers.CarrierHandler{Engine: engine}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/quotes", quoteHandler.Quote)
	mux.HandleFunc("/carriers", carrierHandler.Available)
	mux.HandleFunc("/zones", carrierHandler.Zones)

	return loggingMiddleware(mux)
}
