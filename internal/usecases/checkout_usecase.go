package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/domain/fees"
	"payeasy.backend/internal/domain/repositories"
	"payeasy.backend/internal/domain/wallet"
	"payeasy.backend/internal/infrastructure/gateway"
	"payeasy.backend/pkg/logger"
)

// CheckoutUsecase handles the public buyer-facing checkout flow
type CheckoutUsecase struct {
	productRepo  repositories.ProductRepository
	merchantRepo repositories.MerchantRepository
	linkRepo     repositories.PaymentLinkRepository
	saleRepo     repositories.SaleRepository
	charger      gateway.Charger
}

// NewCheckoutUsecase creates a new checkout usecase
func NewCheckoutUsecase(
	productRepo repositories.ProductRepository,
	merchantRepo repositories.MerchantRepository,
	linkRepo repositories.PaymentLinkRepository,
	saleRepo repositories.SaleRepository,
	charger gateway.Charger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		linkRepo:     linkRepo,
		saleRepo:     saleRepo,
		charger:      charger,
	}
}

// sellableProduct loads a product and checks the buyer may purchase it
func (u *CheckoutUsecase) sellableProduct(ctx context.Context, productID uuid.UUID) (*entities.Product, *entities.Merchant, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	if !product.Purchasable() {
		return nil, nil, domainerrors.ErrProductUnavailable
	}

	merchant, err := u.merchantRepo.GetByID(ctx, product.MerchantID)
	if err != nil {
		return nil, nil, err
	}
	if merchant.Status != entities.MerchantStatusActive {
		return nil, nil, domainerrors.ErrProductUnavailable
	}

	return product, merchant, nil
}

// GetPage returns the public checkout view of a product
func (u *CheckoutUsecase) GetPage(ctx context.Context, productID uuid.UUID) (*entities.CheckoutPage, error) {
	product, merchant, err := u.sellableProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &entities.CheckoutPage{
		ProductID:   product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		LimitedTime: product.LimitedTime,
		OfferTitle:  product.OfferTitle,
		OfferPrice:  product.OfferPrice,
		Merchant:    merchant.BusinessName,
	}, nil
}

// effectivePrice is what the buyer pays: the offer price when an offer
// is live, the regular price otherwise.
func effectivePrice(p *entities.Product) decimal.Decimal {
	if p.OfferPrice.Valid {
		return p.OfferPrice.Decimal
	}
	return p.Price
}

// Submit validates a buyer submission and creates a pending sale, then
// asks the gateway to collect the payment. Nothing is persisted when
// validation fails.
func (u *CheckoutUsecase) Submit(ctx context.Context, productID uuid.UUID, input *entities.CheckoutInput) (*entities.CheckoutResponse, error) {
	product, merchant, err := u.sellableProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	provider := wallet.Provider(input.Provider)
	phone, err := wallet.ValidatePhone(input.BuyerPhone, provider)
	if err != nil {
		return nil, domainerrors.NewError(err.Error(), domainerrors.ErrInvalidPhone)
	}

	// A stale or foreign ?ref= must not divert the sale: the link has to
	// exist and point at the exact product being bought.
	if input.LinkID != "" {
		linkID, err := uuid.Parse(input.LinkID)
		if err != nil {
			return nil, domainerrors.NewError("invalid checkout reference", domainerrors.ErrInvalidInput)
		}
		link, err := u.linkRepo.GetByID(ctx, linkID)
		if err != nil {
			return nil, domainerrors.NewError("unknown checkout reference", domainerrors.ErrInvalidInput)
		}
		if link.ProductID != product.ID {
			return nil, domainerrors.NewError("checkout reference does not match product", domainerrors.ErrInvalidInput)
		}
	}

	amount := effectivePrice(product)
	sale := &entities.Sale{
		MerchantID:  merchant.ID,
		ProductID:   product.ID,
		ProductName: product.Name,
		BuyerName:   input.BuyerName,
		BuyerPhone:  phone,
		Provider:    provider,
		Amount:      amount,
		Fee:         fees.SaleFee(amount),
		Status:      entities.SaleStatusPending,
	}
	if input.BuyerEmail != "" {
		sale.BuyerEmail = null.StringFrom(input.BuyerEmail)
	}

	if err := u.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	result, err := u.charger.Charge(ctx, gateway.ChargeRequest{
		SaleID:    sale.ID,
		Phone:     phone,
		Provider:  provider,
		Amount:    amount,
		Reference: fmt.Sprintf("sale:%s", sale.ID),
	})
	if err != nil || !result.Accepted {
		// The charge never reached the wallet; close the sale out.
		if cancelErr := u.saleRepo.UpdateStatus(ctx, sale.ID, entities.SaleStatusCancelled); cancelErr != nil {
			logger.Error(ctx, "failed to cancel sale after charge failure",
				zap.String("sale_id", sale.ID.String()), zap.Error(cancelErr))
		}
		if err != nil {
			return nil, err
		}
		return nil, domainerrors.ErrGatewayUnavailable
	}

	logger.Info(ctx, "checkout submitted",
		zap.String("sale_id", sale.ID.String()),
		zap.String("provider", string(provider)),
		zap.String("amount", amount.String()))

	return &entities.CheckoutResponse{
		SaleID:  sale.ID,
		Status:  sale.Status,
		Message: "Confirme o pagamento no seu telemóvel.",
	}, nil
}
