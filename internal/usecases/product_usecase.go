package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/domain/repositories"
	"payeasy.backend/pkg/utils"
)

// ProductUsecase handles product catalog business logic
type ProductUsecase struct {
	productRepo  repositories.ProductRepository
	merchantRepo repositories.MerchantRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository, merchantRepo repositories.MerchantRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
	}
}

// merchantForUser resolves the merchant profile owning the request.
// Suspended and rejected merchants cannot manage their catalog.
func (u *ProductUsecase) merchantForUser(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if merchant.Status == entities.MerchantStatusSuspended || merchant.Status == entities.MerchantStatusRejected {
		return nil, domainerrors.ErrMerchantNotActive
	}
	return merchant, nil
}

// parsePrice parses a positive MZN amount from its string form
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domainerrors.NewError("invalid price", domainerrors.ErrInvalidInput)
	}
	if !price.IsPositive() {
		return decimal.Zero, domainerrors.NewError("price must be positive", domainerrors.ErrInvalidInput)
	}
	return price, nil
}

// Create lists a new product. New products start in review.
func (u *ProductUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateProductInput) (*entities.Product, error) {
	merchant, err := u.merchantForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	product := &entities.Product{
		MerchantID:  merchant.ID,
		Name:        input.Name,
		Category:    input.Category,
		Price:       price,
		Available:   true,
		LimitedTime: input.LimitedTime,
		Status:      entities.ProductStatusPending,
	}
	if input.Available != nil {
		product.Available = *input.Available
	}

	if input.OfferTitle != "" || input.OfferPrice != "" {
		if input.OfferTitle == "" || input.OfferPrice == "" {
			return nil, domainerrors.NewError("offer needs both a title and a price", domainerrors.ErrInvalidInput)
		}
		offerPrice, err := parsePrice(input.OfferPrice)
		if err != nil {
			return nil, err
		}
		if offerPrice.GreaterThanOrEqual(price) {
			return nil, domainerrors.NewError("offer price must be below the regular price", domainerrors.ErrInvalidInput)
		}
		product.OfferTitle = null.StringFrom(input.OfferTitle)
		product.OfferPrice = decimal.NewNullDecimal(offerPrice)
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns one of the merchant's products
func (u *ProductUsecase) Get(ctx context.Context, userID, productID uuid.UUID) (*entities.Product, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.MerchantID != merchant.ID {
		return nil, domainerrors.ErrNotFound
	}
	return product, nil
}

// List returns the merchant's products with pagination
func (u *ProductUsecase) List(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.Product, *utils.PaginationMeta, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	products, total, err := u.productRepo.GetByMerchantID(ctx, merchant.ID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}

	meta := utils.CalculateMeta(int64(total), params.Page, params.Limit)
	return products, &meta, nil
}

// Update edits a product's merchant-facing fields. Review status is not
// editable here.
func (u *ProductUsecase) Update(ctx context.Context, userID, productID uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error) {
	merchant, err := u.merchantForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.MerchantID != merchant.ID {
		return nil, domainerrors.ErrNotFound
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Price != "" {
		price, err := parsePrice(input.Price)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if input.Available != nil {
		product.Available = *input.Available
	}
	if input.LimitedTime != nil {
		product.LimitedTime = *input.LimitedTime
	}
	if input.OfferTitle != "" {
		product.OfferTitle = null.StringFrom(input.OfferTitle)
	}
	if input.OfferPrice != "" {
		offerPrice, err := parsePrice(input.OfferPrice)
		if err != nil {
			return nil, err
		}
		product.OfferPrice = decimal.NewNullDecimal(offerPrice)
	}
	if product.OfferPrice.Valid && product.OfferPrice.Decimal.GreaterThanOrEqual(product.Price) {
		return nil, domainerrors.NewError("offer price must be below the regular price", domainerrors.ErrInvalidInput)
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog. Sales referencing it keep
// their own product name snapshot.
func (u *ProductUsecase) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	merchant, err := u.merchantForUser(ctx, userID)
	if err != nil {
		return err
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.MerchantID != merchant.ID {
		return domainerrors.ErrNotFound
	}

	return u.productRepo.SoftDelete(ctx, productID)
}
