package lookup

import (
	"context"

	"vos-erp-service/internal/domain/lookup"
	"vos-erp-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type LookupService struct {
	lookupRepo *postgres.LookupRepository
	logger     *zap.Logger
}

func NewLookupService(lookupRepo *postgres.LookupRepository, logger *zap.Logger) *LookupService {
	return &LookupService{
		lookupRepo: lookupRepo,
		logger:     logger,
	}
}

// Options resolves a dropdown resource by name. Unknown resource names yield
// an empty slice: the set of queryable tables is closed and a request for
// anything outside it never reaches the database.
func (s *LookupService) Options(ctx context.Context, resource, q string) ([]lookup.Option, error) {
	res, ok := lookup.ParseResource(resource)
	if !ok {
		s.logger.Debug("unknown lookup resource", zap.String("resource", resource))
		return []lookup.Option{}, nil
	}
	return s.lookupRepo.Options(ctx, res, q)
}
