package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"payeasy.backend/internal/interfaces/http/response"
	"payeasy.backend/internal/usecases"
	"payeasy.backend/pkg/utils"
)

// MerchantHandler handles merchant finance endpoints
type MerchantHandler struct {
	merchantUsecase *usecases.MerchantUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{merchantUsecase: merchantUsecase}
}

// FinanceOverview returns the merchant dashboard numbers
// GET /api/v1/finance/overview
func (h *MerchantHandler) FinanceOverview(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	overview, err := h.merchantUsecase.FinanceOverview(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, overview)
}

// Ledger returns the merchant's balance ledger, newest first
// GET /api/v1/finance/ledger
func (h *MerchantHandler) Ledger(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	params := paginationFromQuery(c)
	entries, total, err := h.merchantUsecase.Ledger(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := utils.CalculateMeta(int64(total), params.Page, params.Limit)
	response.Success(c, http.StatusOK, gin.H{
		"data": entries,
		"meta": meta,
	})
}
