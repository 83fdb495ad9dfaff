package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/interfaces/http/response"
	"payeasy.backend/internal/usecases"
)

// CheckoutHandler handles the public buyer-facing checkout endpoints
type CheckoutHandler struct {
	checkoutUsecase *usecases.CheckoutUsecase
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutUsecase *usecases.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase}
}

// GetPage returns the product information shown on the checkout page
// GET /api/v1/checkout/:productId
func (h *CheckoutHandler) GetPage(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	page, err := h.checkoutUsecase.GetPage(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// Submit takes a buyer's details and starts the mobile-money charge
// POST /api/v1/checkout/:productId
func (h *CheckoutHandler) Submit(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	var input entities.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	input.LinkID = c.Query("ref")

	resp, err := h.checkoutUsecase.Submit(c.Request.Context(), productID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}
