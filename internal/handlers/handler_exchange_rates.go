package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/middleware"
)

// exchangeRateHandler serves the public rate map.
type exchangeRateHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newExchangeRateHandler(cs portssvc.CurrencySvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{currencyService: cs}
}

// registerExchangeRateRoutes registers the public exchange rate route.
func registerExchangeRateRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newExchangeRateHandler(currencyService)
	rg.GET("/exchange-rates", h.getExchangeRates)
}

// getExchangeRates godoc
// @Summary Get the public exchange rate map
// @Description Returns current rates keyed by currency code. The base currency is always 1. Falls back to defaults when the store is unavailable.
// @Tags currencies
// @Produce json
// @Success 200 {object} map[string]string
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getExchangeRates(c *gin.Context) {
	rates := h.currencyService.GetRateMap(c.Request.Context())
	c.JSON(http.StatusOK, rates)
}

// adminCurrencyHandler handles rate administration and triggers repricing.
type adminCurrencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	pricingService  portssvc.PricingSvcFacade
}

func newAdminCurrencyHandler(cs portssvc.CurrencySvcFacade, ps portssvc.PricingSvcFacade) *adminCurrencyHandler {
	return &adminCurrencyHandler{
		currencyService: cs,
		pricingService:  ps,
	}
}

// RegisterAdminCurrencyRoutes registers the admin currency rate routes.
func RegisterAdminCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, pricingService portssvc.PricingSvcFacade) {
	h := newAdminCurrencyHandler(currencyService, pricingService)

	currency := rg.Group("/currency")
	{
		currency.GET("", h.listRates)
		currency.POST("", h.upsertRate)
	}
}

// listRates godoc
// @Summary List stored currency rates
// @Description Retrieves all stored rates with audit fields (admin operation)
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.RateResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/currency [get]
func (h *adminCurrencyHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.currencyService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currency rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve currency rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// upsertRate godoc
// @Summary Upsert a currency rate and reprice affected products
// @Description Stores the new rate and recomputes the base price of every product denominated in the currency, atomically.
// @Tags currencies
// @Accept json
// @Produce json
// @Param rate body dto.UpsertRateRequest true "Currency rate"
// @Success 200 {object} dto.UpsertRateResponse
// @Failure 400 {object} ErrorResponse "Invalid rate or currency"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/currency [post]
func (h *adminCurrencyHandler) upsertRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsert rate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("currency_code", req.CurrencyCode))

	updated, err := h.pricingService.Recalculate(c.Request.Context(), req.CurrencyCode, req.Rate, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error upserting rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to upsert rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update currency rate"})
		return
	}

	stored, err := h.currencyService.GetRate(c.Request.Context(), req.CurrencyCode)
	if err != nil {
		logger.Error("Failed to reload stored rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Rate updated but could not be reloaded"})
		return
	}

	logger.Info("Rate upserted and products repriced", slog.Int("updated_products", updated))
	c.JSON(http.StatusOK, dto.UpsertRateResponse{
		Message:         fmt.Sprintf("Rate for %s updated, %d products repriced", stored.CurrencyCode, updated),
		Rate:            dto.ToRateResponse(stored),
		UpdatedProducts: updated,
	})
}
