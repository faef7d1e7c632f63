package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/internal/domain/repository"
	"github.com/fandresena/gereo-server/pkg/apperror"
	"github.com/fandresena/gereo-server/pkg/money"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

// ProductService handles product catalog operations
type ProductService struct {
	uow         repository.UnitOfWork
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(uow repository.UnitOfWork, productRepo repository.ProductRepository) *ProductService {
	return &ProductService{
		uow:         uow,
		productRepo: productRepo,
	}
}

// CreateProductInput represents the create product input. InitialStock, when
// positive, is recorded as an opening ENTRY movement so the ledger and the
// cached stock stay in step from the very first row.
type CreateProductInput struct {
	Name           string
	ReferenceCode  string
	PurchasePrice  float64
	WholesalePrice float64
	SellingPrice   float64
	MinStockAlert  int
	InitialStock   int
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)

	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "must not be empty"})
	}
	if input.InitialStock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "initial_stock", Message: "must not be negative"})
	}
	if input.PurchasePrice < 0 || input.WholesalePrice < 0 || input.SellingPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "prices", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this name already exists")
	}

	product := &entity.Product{
		Name:           name,
		ReferenceCode:  strings.TrimSpace(input.ReferenceCode),
		PurchasePrice:  money.ToCents(input.PurchasePrice),
		WholesalePrice: money.ToCents(input.WholesalePrice),
		SellingPrice:   money.ToCents(input.SellingPrice),
		MinStockAlert:  input.MinStockAlert,
	}

	err = s.uow.Do(ctx, func(tx repository.Store) error {
		if err := tx.Products().Create(ctx, product); err != nil {
			return err
		}
		if input.InitialStock > 0 {
			notes := "Opening stock"
			if err := tx.Movements().Create(ctx, &entity.StockMovement{
				ProductID:    product.ID,
				MovementType: enum.MovementEntry,
				Quantity:     input.InitialStock,
				UnitPrice:    product.PurchasePrice,
				MovementDate: time.Now(),
				Notes:        &notes,
			}); err != nil {
				return err
			}
			if err := tx.Products().IncrementStock(ctx, product.ID, input.InitialStock); err != nil {
				return err
			}
			product.CurrentStock = input.InitialStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input. Stock is absent on
// purpose: it only moves through the stock ledger.
type UpdateProductInput struct {
	ID             uuid.UUID
	Name           string
	ReferenceCode  string
	PurchasePrice  float64
	WholesalePrice float64
	SellingPrice   float64
	MinStockAlert  int
}

// UpdateProduct updates product attributes
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "must not be empty"},
		})
	}

	if name != product.Name {
		existing, err := s.productRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A product with this name already exists")
		}
	}

	product.Name = name
	product.ReferenceCode = strings.TrimSpace(input.ReferenceCode)
	product.PurchasePrice = money.ToCents(input.PurchasePrice)
	product.WholesalePrice = money.ToCents(input.WholesalePrice)
	product.SellingPrice = money.ToCents(input.SellingPrice)
	product.MinStockAlert = input.MinStockAlert

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct soft-deletes a product; its movement history is kept
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// GetLowStockProducts returns products at or below their alert threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
