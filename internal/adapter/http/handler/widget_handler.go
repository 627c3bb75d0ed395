package handler

import (
	"stars-converter/internal/adapter/http/dto"
	"stars-converter/internal/core/ports"
	"stars-converter/pkg/response"

	"github.com/gin-gonic/gin"
)

// WidgetHandler feeds host UI events to the widget dispatcher.
type WidgetHandler struct {
	widgetSvc ports.WidgetService
}

// NewWidgetHandler creates a new WidgetHandler.
func NewWidgetHandler(widgetSvc ports.WidgetService) *WidgetHandler {
	return &WidgetHandler{widgetSvc: widgetSvc}
}

// HandleEvent handles POST /api/v1/widget/events.
func (h *WidgetHandler) HandleEvent(c *gin.Context) {
	var req dto.WidgetEventRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	state, event := req.ToDomain()
	out, err := h.widgetSvc.Dispatch(c.Request.Context(), state, event)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewWidgetEventResponse(out))
}
