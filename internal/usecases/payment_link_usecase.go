package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/domain/repositories"
	"payeasy.backend/pkg/utils"
)

// PaymentLinkUsecase handles checkout link business logic
type PaymentLinkUsecase struct {
	linkRepo     repositories.PaymentLinkRepository
	productRepo  repositories.ProductRepository
	merchantRepo repositories.MerchantRepository
	checkoutBase string
}

// NewPaymentLinkUsecase creates a new payment link usecase
func NewPaymentLinkUsecase(
	linkRepo repositories.PaymentLinkRepository,
	productRepo repositories.ProductRepository,
	merchantRepo repositories.MerchantRepository,
	checkoutBase string,
) *PaymentLinkUsecase {
	return &PaymentLinkUsecase{
		linkRepo:     linkRepo,
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		checkoutBase: checkoutBase,
	}
}

// Create generates the checkout link for a product. Creating a link for
// the same product twice returns the existing link unchanged.
func (u *PaymentLinkUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreatePaymentLinkInput) (*entities.PaymentLink, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return nil, domainerrors.NewError("invalid product id", domainerrors.ErrInvalidInput)
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.MerchantID != merchant.ID {
		return nil, domainerrors.ErrNotFound
	}

	existing, err := u.linkRepo.GetByMerchantAndProduct(ctx, merchant.ID, productID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	link := &entities.PaymentLink{
		ID:         utils.GenerateUUIDv7(),
		MerchantID: merchant.ID,
		ProductID:  productID,
	}
	link.URL = entities.BuildCheckoutURL(u.checkoutBase, productID, link.ID)

	if err := u.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// List returns the merchant's links with pagination
func (u *PaymentLinkUsecase) List(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.PaymentLink, *utils.PaginationMeta, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	links, total, err := u.linkRepo.GetByMerchantID(ctx, merchant.ID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}

	meta := utils.CalculateMeta(int64(total), params.Page, params.Limit)
	return links, &meta, nil
}

// Delete revokes a link. The product itself is untouched.
func (u *PaymentLinkUsecase) Delete(ctx context.Context, userID, linkID uuid.UUID) error {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	link, err := u.linkRepo.GetByID(ctx, linkID)
	if err != nil {
		return err
	}
	if link.MerchantID != merchant.ID {
		return domainerrors.ErrNotFound
	}

	return u.linkRepo.SoftDelete(ctx, linkID)
}
