package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/interfaces/http/response"
	"payeasy.backend/internal/usecases"
	"payeasy.backend/pkg/logger"
)

// WebhookHandler handles settlement pushes from the wallet gateway
type WebhookHandler struct {
	saleUsecase       *usecases.SaleUsecase
	withdrawalUsecase *usecases.WithdrawalUsecase
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(saleUsecase *usecases.SaleUsecase, withdrawalUsecase *usecases.WithdrawalUsecase) *WebhookHandler {
	return &WebhookHandler{
		saleUsecase:       saleUsecase,
		withdrawalUsecase: withdrawalUsecase,
	}
}

// HandleGatewayWebhook processes a settlement push. The reference is
// the one sent with the original charge or disbursement, e.g.
// "sale:<id>". Duplicate deliveries are acknowledged without effect.
// POST /api/v1/webhooks/gateway
func (h *WebhookHandler) HandleGatewayWebhook(c *gin.Context) {
	var input struct {
		Reference string `json:"reference" binding:"required"`
		Status    string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	kind, id, ok := strings.Cut(input.Reference, ":")
	if !ok {
		response.Error(c, domainerrors.BadRequest("malformed reference"))
		return
	}
	refID, err := uuid.Parse(id)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("malformed reference"))
		return
	}

	ctx := c.Request.Context()
	approved := input.Status == "approved" || input.Status == "completed"

	switch kind {
	case "sale":
		err = h.saleUsecase.HandleSettlement(ctx, refID, approved)
	case "withdrawal":
		if approved {
			err = h.withdrawalUsecase.Complete(ctx, refID)
		} else {
			err = h.withdrawalUsecase.Reject(ctx, refID)
		}
		if errors.Is(err, domainerrors.ErrInvalidTransition) {
			// Gateways redeliver; a settled withdrawal stays settled.
			logger.Warn(ctx, "duplicate withdrawal settlement ignored",
				zap.String("reference", input.Reference))
			err = nil
		}
	default:
		response.Error(c, domainerrors.BadRequest("unknown reference type"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"received": true})
}
