package customer

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"vos-erp-service/internal/domain/customer"
	xerrors "vos-erp-service/internal/pkg/errors"
	"vos-erp-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type CustomerService struct {
	customerRepo *postgres.CustomerRepository
	logger       *zap.Logger
}

func NewCustomerService(customerRepo *postgres.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ListCustomers returns a page of customer summaries plus the total count.
func (s *CustomerService) ListCustomers(ctx context.Context, f *customer.ListFilters) ([]customer.Summary, int64, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	return s.customerRepo.List(ctx, f)
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*customer.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *customer.CreateCustomerRequest) (*customer.Customer, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customer_name is required", xerrors.ErrInvalidInput)
	}

	c := &customer.Customer{
		CustomerCode:  sql.NullString{String: req.CustomerCode, Valid: req.CustomerCode != ""},
		CustomerName:  name,
		StoreName:     sql.NullString{String: req.StoreName, Valid: req.StoreName != ""},
		ContactNumber: sql.NullString{String: req.ContactNumber, Valid: req.ContactNumber != ""},
		Email:         sql.NullString{String: req.Email, Valid: req.Email != ""},
		Address:       sql.NullString{String: req.Address, Valid: req.Address != ""},
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create customer", zap.Error(err))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created",
		zap.Int64("customer_id", c.ID),
		zap.String("customer_name", c.CustomerName),
	)
	return c, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, req *customer.UpdateCustomerRequest) (*customer.Customer, error) {
	if req.CustomerName != nil && strings.TrimSpace(*req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer_name cannot be blank", xerrors.ErrInvalidInput)
	}

	if err := s.customerRepo.Update(ctx, id, req); err != nil {
		return nil, err
	}
	return s.customerRepo.FindByID(ctx, id)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.customerRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("customer deleted", zap.Int64("customer_id", id))
	return nil
}
