package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fandresena/gereo-server/internal/application/service"
	"github.com/fandresena/gereo-server/internal/presentation/http/dto/request"
	"github.com/fandresena/gereo-server/internal/presentation/http/dto/response"
)

// StockHandler handles stock entry and movement history HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// RecordEntry handles recording an inbound stock entry
func (h *StockHandler) RecordEntry(c *gin.Context) {
	var req request.RecordStockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.stockService.RecordEntry(c.Request.Context(), &service.RecordEntryInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Date:      req.Date,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock entry recorded successfully", movement)
}

// ListMovements handles listing the full movement history with product names
func (h *StockHandler) ListMovements(c *gin.Context) {
	movements, err := h.stockService.ListEntries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock movements retrieved successfully", movements)
}
