package handler

import (
	"stars-converter/internal/adapter/http/dto"
	"stars-converter/internal/core/domain"
	"stars-converter/internal/core/ports"
	"stars-converter/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConvertHandler handles one-shot conversions.
type ConvertHandler struct {
	conversionSvc ports.ConversionService
	rateSvc       ports.RateService
}

// NewConvertHandler creates a new ConvertHandler.
func NewConvertHandler(conversionSvc ports.ConversionService, rateSvc ports.RateService) *ConvertHandler {
	return &ConvertHandler{conversionSvc: conversionSvc, rateSvc: rateSvc}
}

// Convert handles POST /api/v1/convert.
func (h *ConvertHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	base := domain.DefaultBaseCurrency
	if req.Base != "" {
		base, _ = domain.ParseCurrency(req.Base)
	}

	conv := h.conversionSvc.Convert(domain.AmountText(req.Amount), base, h.rateSvc.Table())
	response.OK(c, dto.NewConvertResponse(conv))
}
