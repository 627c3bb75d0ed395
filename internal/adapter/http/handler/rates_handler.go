package handler

import (
	"stars-converter/internal/adapter/http/dto"
	"stars-converter/internal/core/ports"
	"stars-converter/pkg/response"

	"github.com/gin-gonic/gin"
)

// RatesHandler exposes the published rate table.
type RatesHandler struct {
	rateSvc ports.RateService
}

// NewRatesHandler creates a new RatesHandler.
func NewRatesHandler(rateSvc ports.RateService) *RatesHandler {
	return &RatesHandler{rateSvc: rateSvc}
}

// GetRates handles GET /api/v1/rates. Before the first refresh it answers
// with ready=false instead of an error.
func (h *RatesHandler) GetRates(c *gin.Context) {
	snap, _ := h.rateSvc.Snapshot()
	response.OK(c, dto.NewRatesResponse(snap))
}

