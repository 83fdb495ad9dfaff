package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/interfaces/http/response"
	"payeasy.backend/internal/usecases"
)

// AdminHandler handles platform operator endpoints
type AdminHandler struct {
	adminUsecase      *usecases.AdminUsecase
	merchantUsecase   *usecases.MerchantUsecase
	withdrawalUsecase *usecases.WithdrawalUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	adminUsecase *usecases.AdminUsecase,
	merchantUsecase *usecases.MerchantUsecase,
	withdrawalUsecase *usecases.WithdrawalUsecase,
) *AdminHandler {
	return &AdminHandler{
		adminUsecase:      adminUsecase,
		merchantUsecase:   merchantUsecase,
		withdrawalUsecase: withdrawalUsecase,
	}
}

// Stats summarizes the merchant base
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// ListMerchants returns every merchant account
// GET /api/v1/admin/merchants
func (h *AdminHandler) ListMerchants(c *gin.Context) {
	merchants, err := h.merchantUsecase.ListMerchants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"data": merchants})
}

// UpdateMerchantStatus moves a merchant between account states
// PUT /api/v1/admin/merchants/:id/status
func (h *AdminHandler) UpdateMerchantStatus(c *gin.Context) {
	merchantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	err := h.merchantUsecase.UpdateMerchantStatus(c.Request.Context(), merchantID, entities.MerchantStatus(input.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": input.Status})
}

// ReviewProduct overrides the automatic product review
// PUT /api/v1/admin/products/:id/status
func (h *AdminHandler) ReviewProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	err := h.adminUsecase.ReviewProduct(c.Request.Context(), productID, entities.ProductStatus(input.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": input.Status})
}

// SettleWithdrawal completes or rejects a pending withdrawal. A
// rejection credits the held amount back to the merchant.
// PUT /api/v1/admin/withdrawals/:id/status
func (h *AdminHandler) SettleWithdrawal(c *gin.Context) {
	withdrawalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	var err error
	switch entities.WithdrawalStatus(input.Status) {
	case entities.WithdrawalStatusCompleted:
		err = h.withdrawalUsecase.Complete(c.Request.Context(), withdrawalID)
	case entities.WithdrawalStatusRejected:
		err = h.withdrawalUsecase.Reject(c.Request.Context(), withdrawalID)
	default:
		err = domainerrors.BadRequest("status must be completed or rejected")
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": input.Status})
}
