package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"shipping-quote-service/internal/api/dto"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/ports"
	"shipping-quote-service/internal/services"
	"strings"

	"github.com/shopspring/decimal"
)

// QuoteHandler exposes the quote engine over HTTP.
type QuoteHandler struct {
	Engine *services.QuoteEngine
	FX     ports.FXProvider
	Log    ports.QuoteLog
}

// Quote prices a package against every configured carrier and returns the
// ranked quote list with cheapest/fastest selections. An optional currency
// converts display prices through the FX multiplier; the engine itself only
// ever prices in USD.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.QuoteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	pkg := domain.Package{
		LengthCm:    req.LengthCm,
		WidthCm:     req.WidthCm,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
		Destination: strings.TrimSpace(req.Destination),
	}

	qs, err := h.Engine.Quote(pkg)
	switch {
	case errors.Is(err, domain.ErrInvalidPackage):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, domain.ErrUnsupportedDestination):
		writeError(w, r, http.StatusUnprocessableEntity, "destination not supported")
		return
	case err != nil:
		log.Printf("quote failed: destination=%s err=%v", pkg.Destination, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	displayCurrency := services.QuoteCurrency
	var fxRate *decimal.Decimal

	if cur := strings.ToUpper(strings.TrimSpace(req.Currency)); cur != "" && cur != services.QuoteCurrency {
		rate, err := h.FX.Multiplier(r.Context(), cur)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "unsupported display currency")
			return
		}
		displayCurrency = cur
		fxRate = &rate
	}

	res := dto.QuoteSetResponse{
		Zone:     string(qs.Zone),
		Currency: displayCurrency,
		Quotes:   make([]dto.QuoteResponse, 0, len(qs.ByPrice)),
	}
	for _, q := range qs.ByPrice {
		res.Quotes = append(res.Quotes, toQuoteResponse(q, displayCurrency, fxRate))
	}

	if cheapest, ok := qs.Cheapest(); ok {
		res.Cheapest = findQuote(res.Quotes, cheapest.Carrier)
	}
	if fastest, ok := qs.Fastest(); ok {
		res.Fastest = findQuote(res.Quotes, fastest.Carrier)
	}

	// Best-effort analytics trail; quoting never fails on log errors.
	if err := h.Log.RecordQuoteSet(r.Context(), pkg, qs); err != nil {
		log.Printf("quote log failed: destination=%s err=%v", pkg.Destination, err)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Display conversion rounds half-up to cents; the engine's per-carrier
// rounding policy applies only to the underlying USD price.
func toQuoteResponse(q domain.Quote, currency string, fxRate *decimal.Decimal) dto.QuoteResponse {
	price := q.Price
	if fxRate != nil {
		price = services.RoundPrice(price.Mul(*fxRate), 2, domain.RoundHalfUp)
	}

	return dto.QuoteResponse{
		Carrier:            string(q.Carrier),
		Zone:               string(q.Zone),
		ChargeableWeightKg: q.ChargeableWeightKg,
		Price:              price,
		Currency:           currency,
		MinDays:            q.Transit.MinDays,
		MaxDays:            q.Transit.MaxDays,
		Tracking:           q.Tracking,
		InsuranceAvailable: q.InsuranceAvailable,
	}
}

func findQuote(quotes []dto.QuoteResponse, carrier domain.Carrier) *dto.QuoteResponse {
	for i := range quotes {
		if quotes[i].Carrier == string(carrier) {
			return &quotes[i]
		}
	}
	return nil
}
