package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/interfaces/http/response"
	"payeasy.backend/internal/usecases"
)

// PaymentLinkHandler handles checkout link endpoints
type PaymentLinkHandler struct {
	linkUsecase *usecases.PaymentLinkUsecase
}

// NewPaymentLinkHandler creates a new payment link handler
func NewPaymentLinkHandler(linkUsecase *usecases.PaymentLinkUsecase) *PaymentLinkHandler {
	return &PaymentLinkHandler{linkUsecase: linkUsecase}
}

// Create generates a checkout link for a product. Calling it again for
// the same product returns the existing link.
// POST /api/v1/payment-links
func (h *PaymentLinkHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input entities.CreatePaymentLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	link, err := h.linkUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, link)
}

// List returns the merchant's checkout links
// GET /api/v1/payment-links
func (h *PaymentLinkHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	links, meta, err := h.linkUsecase.List(c.Request.Context(), userID, paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": links,
		"meta": meta,
	})
}

// Delete removes a checkout link
// DELETE /api/v1/payment-links/:id
func (h *PaymentLinkHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	linkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.linkUsecase.Delete(c.Request.Context(), userID, linkID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
