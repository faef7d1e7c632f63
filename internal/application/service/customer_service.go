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

// CustomerService handles customer operations
type CustomerService struct {
	uow          repository.UnitOfWork
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(uow repository.UnitOfWork, customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{
		uow:          uow,
		customerRepo: customerRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   *string
	Address *string
}

// CreateCustomer creates a new customer with zero debt
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "must not be empty"},
		})
	}

	customer := &entity.Customer{
		Name:    name,
		Phone:   input.Phone,
		Address: input.Address,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer with their invoice history
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetWithInvoices(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID      uuid.UUID
	Name    string
	Phone   *string
	Address *string
}

// UpdateCustomer updates customer contact details. Debt is never edited
// directly; it moves through sales and repayments only.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "must not be empty"},
		})
	}

	customer.Name = name
	customer.Phone = input.Phone
	customer.Address = input.Address

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// PayDebt records a debt repayment: the customer's debt decreases and the
// cash register receives the amount, atomically.
func (s *CustomerService) PayDebt(ctx context.Context, customerID uuid.UUID, amount float64) (*entity.Customer, error) {
	if amount <= 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "must be greater than zero"},
		})
	}
	amountCents := money.ToCents(amount)

	err := s.uow.Do(ctx, func(tx repository.Store) error {
		customer, err := tx.Customers().GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperror.NewNotFoundError("Customer")
		}
		if amountCents > customer.TotalDebt {
			return apperror.NewBadRequestError("Payment exceeds outstanding debt")
		}

		if err := tx.Customers().AddDebt(ctx, customerID, -amountCents); err != nil {
			return err
		}

		balance, err := tx.CashMovements().LatestBalance(ctx)
		if err != nil {
			return err
		}
		return tx.CashMovements().Create(ctx, &entity.CashMovement{
			MovementDate:   time.Now(),
			MovementType:   enum.CashDebtPayment,
			Amount:         amountCents,
			ReferenceID:    &customerID,
			CurrentBalance: balance + amountCents,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.customerRepo.GetByID(ctx, customerID)
}
