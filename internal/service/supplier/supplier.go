package supplier

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"vos-erp-service/internal/domain/supplier"
	xerrors "vos-erp-service/internal/pkg/errors"
	"vos-erp-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type SupplierService struct {
	supplierRepo *postgres.SupplierRepository
	logger       *zap.Logger
}

func NewSupplierService(supplierRepo *postgres.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

func (s *SupplierService) ListSuppliers(ctx context.Context, f *supplier.ListFilters) ([]supplier.Supplier, int64, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	return s.supplierRepo.List(ctx, f)
}

func (s *SupplierService) GetSupplier(ctx context.Context, id int64) (*supplier.Supplier, error) {
	return s.supplierRepo.FindByID(ctx, id)
}

func (s *SupplierService) CreateSupplier(ctx context.Context, req *supplier.CreateSupplierRequest) (*supplier.Supplier, error) {
	name := strings.TrimSpace(req.SupplierName)
	if name == "" {
		return nil, fmt.Errorf("%w: supplier_name is required", xerrors.ErrInvalidInput)
	}

	sp := &supplier.Supplier{
		SupplierName:  name,
		ContactPerson: sql.NullString{String: req.ContactPerson, Valid: req.ContactPerson != ""},
		ContactNumber: sql.NullString{String: req.ContactNumber, Valid: req.ContactNumber != ""},
		Email:         sql.NullString{String: req.Email, Valid: req.Email != ""},
		Address:       sql.NullString{String: req.Address, Valid: req.Address != ""},
	}

	if err := s.supplierRepo.Create(ctx, sp); err != nil {
		s.logger.Error("failed to create supplier", zap.Error(err))
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	s.logger.Info("supplier created",
		zap.Int64("supplier_id", sp.ID),
		zap.String("supplier_name", sp.SupplierName),
	)
	return sp, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, id int64, req *supplier.UpdateSupplierRequest) (*supplier.Supplier, error) {
	if req.SupplierName != nil && strings.TrimSpace(*req.SupplierName) == "" {
		return nil, fmt.Errorf("%w: supplier_name cannot be blank", xerrors.ErrInvalidInput)
	}

	if err := s.supplierRepo.Update(ctx, id, req); err != nil {
		return nil, err
	}
	return s.supplierRepo.FindByID(ctx, id)
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id int64) error {
	if err := s.supplierRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("supplier deleted", zap.Int64("supplier_id", id))
	return nil
}
