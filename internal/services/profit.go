package services

import (
	"errors"
	"fmt"
	"shipping-quote-service/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
)

// CostBreakdown collects per-unit costs around a sale. Sourcing-side costs
// are denominated in CNY and converted through the FX rate; everything else
// is USD, matching the quote currency.
type CostBreakdown struct {
	ProductCostCNY      decimal.Decimal
	DomesticShippingCNY decimal.Decimal
	PackagingCNY        decimal.Decimal
	PlatformFeePct      decimal.Decimal // marketplace commission on the selling price
	AdCostUSD           decimal.Decimal
	ReturnRatePct       decimal.Decimal // expected returns as a fraction of the selling price
	FXRateCNYPerUSD     decimal.Decimal
}

// ProfitReport is the margin analysis for one sale using one selected
// shipping quote. All amounts are USD rounded to cents.
type ProfitReport struct {
	SellingPrice   decimal.Decimal
	ShippingCost   decimal.Decimal
	TotalCost      decimal.Decimal
	GrossProfit    decimal.Decimal
	GrossMarginPct decimal.Decimal
	NetProfit      decimal.Decimal
	NetMarginPct   decimal.Decimal
	BreakEvenPrice decimal.Decimal
}

// Profitable reports whether the sale nets above zero.
func (r ProfitReport) Profitable() bool {
	return r.NetProfit.IsPositive()
}

// CalculateProfit computes the margin of selling at sellingPriceUSD when
// shipping with the given quote. The quote's price is the cross-border
// shipping cost subtracted from revenue.
func CalculateProfit(
	sellingPriceUSD decimal.Decimal,
	shipping domain.Quote,
	costs CostBreakdown,
) (ProfitReport, error) {
	if !sellingPriceUSD.IsPositive() {
		return ProfitReport{}, fmt.Errorf("calculate profit: selling price must be positive, got %s", sellingPriceUSD)
	}
	if !costs.FXRateCNYPerUSD.IsPositive() {
		return ProfitReport{}, fmt.Errorf("calculate profit: fx rate must be positive, got %s", costs.FXRateCNYPerUSD)
	}

	sp := sellingPriceUSD

	productCost := costs.ProductCostCNY.Div(costs.FXRateCNYPerUSD)
	domesticShip := costs.DomesticShippingCNY.Div(costs.FXRateCNYPerUSD)
	packaging := costs.PackagingCNY.Div(costs.FXRateCNYPerUSD)

	platformFee := sp.Mul(costs.PlatformFeePct).Div(oneHundred)
	returnCost := sp.Mul(costs.ReturnRatePct).Div(oneHundred)

	cogs := productCost.Add(domesticShip).Add(packaging)
	totalCost := cogs.
		Add(shipping.Price).
		Add(platformFee).
		Add(costs.AdCostUSD).
		Add(returnCost)

	grossProfit := sp.Sub(cogs).Sub(shipping.Price)
	netProfit := sp.Sub(totalCost)

	grossMargin := grossProfit.Div(sp).Mul(oneHundred)
	netMargin := netProfit.Div(sp).Mul(oneHundred)

	// Break-even solves price = fixed costs + price-proportional costs.
	feeFraction := one.
		Sub(costs.PlatformFeePct.Div(oneHundred)).
		Sub(costs.ReturnRatePct.Div(oneHundred))
	if !feeFraction.IsPositive() {
		return ProfitReport{}, errors.New("calculate profit: platform fee and return rate consume the whole price")
	}
	fixedCosts := cogs.Add(shipping.Price).Add(costs.AdCostUSD)
	breakEven := fixedCosts.Div(feeFraction)

	return ProfitReport{
		SellingPrice:   sp.Round(2),
		ShippingCost:   shipping.Price,
		TotalCost:      totalCost.Round(2),
		GrossProfit:    grossProfit.Round(2),
		GrossMarginPct: grossMargin.Round(2),
		NetProfit:      netProfit.Round(2),
		NetMarginPct:   netMargin.Round(2),
		BreakEvenPrice: breakEven.Round(2),
	}, nil
}
