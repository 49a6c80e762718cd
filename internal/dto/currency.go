package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// UpsertRateRequest defines the payload for creating or updating a currency
// rate. Rate positivity is enforced by the pricing service, not just binding.
type UpsertRateRequest struct {
	CurrencyCode string          `json:"currency" binding:"required,currencycode"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
}

// RateResponse defines the data returned for a stored currency rate.
type RateResponse struct {
	CurrencyCode  string          `json:"currency"`
	Rate          decimal.Decimal `json:"rate"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// UpsertRateResponse confirms a rate change and the recalculation it triggered.
type UpsertRateResponse struct {
	Message         string       `json:"message"`
	Rate            RateResponse `json:"rate"`
	UpdatedProducts int          `json:"updatedProducts"`
}

// ToRateResponse converts a domain.CurrencyRate to RateResponse DTO
func ToRateResponse(r *domain.CurrencyRate) RateResponse {
	return RateResponse{
		CurrencyCode:  r.CurrencyCode,
		Rate:          r.Rate,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToListRateResponse converts a slice of domain.CurrencyRate to RateResponse DTOs
func ToListRateResponse(rates []domain.CurrencyRate) []RateResponse {
	res := make([]RateResponse, len(rates))
	for i := range rates {
		res[i] = ToRateResponse(&rates[i])
	}
	return res
}
