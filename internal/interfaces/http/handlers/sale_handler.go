package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"payeasy.backend/internal/interfaces/http/response"
	"payeasy.backend/internal/usecases"
)

// SaleHandler handles merchant sale endpoints
type SaleHandler struct {
	saleUsecase *usecases.SaleUsecase
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleUsecase *usecases.SaleUsecase) *SaleHandler {
	return &SaleHandler{saleUsecase: saleUsecase}
}

// List returns the merchant's sales
// GET /api/v1/sales
func (h *SaleHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sales, meta, err := h.saleUsecase.List(c.Request.Context(), userID, paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": sales,
		"meta": meta,
	})
}

// Get returns one of the merchant's sales
// GET /api/v1/sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	saleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sale, err := h.saleUsecase.Get(c.Request.Context(), userID, saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, sale)
}

// Refund reverses an approved sale and debits the merchant balance
// POST /api/v1/sales/:id/refund
func (h *SaleHandler) Refund(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	saleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.saleUsecase.Refund(c.Request.Context(), userID, saleID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"refunded": true})
}
