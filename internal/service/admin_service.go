package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type customerRepository interface {
	List(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, int, error)
	ListAll(ctx context.Context) ([]models.Customer, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// AdminService backs the sales panel.
type AdminService struct {
	repo       customerRepository
	exporter   *ExportService
	logger     *zap.Logger
	priceCents int64
}

// NewAdminService constructs the service.
func NewAdminService(repo customerRepository, exporter *ExportService, logger *zap.Logger, priceCents int64) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exporter == nil {
		exporter = NewExportService(nil, nil)
	}
	if priceCents <= 0 {
		priceCents = 4000
	}
	return &AdminService{repo: repo, exporter: exporter, logger: logger, priceCents: priceCents}
}

// ListCustomers returns one page of registrations with the revenue summary of all of them.
func (s *AdminService) ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, *models.Pagination, *dto.CustomerSummary, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	customers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list customers")
	}
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return customers, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, summary, nil
}

// Summary returns the registration count and the revenue it represents.
func (s *AdminService) Summary(ctx context.Context) (*dto.CustomerSummary, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count customers")
	}
	return s.summarize(count), nil
}

// Export renders every registration as CSV or PDF.
func (s *AdminService) Export(ctx context.Context, format dto.ExportFormat) (*ExportFile, error) {
	if format == "" {
		format = dto.ExportFormatCSV
	}
	customers, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load customers")
	}
	return s.exporter.Customers(customers, format, *s.summarize(len(customers)))
}

// Clear deletes every registration.
func (s *AdminService) Clear(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear customers")
	}
	s.logger.Warn("customer registrations cleared", zap.Int64("deleted", deleted))
	return deleted, nil
}

func (s *AdminService) summarize(count int) *dto.CustomerSummary {
	cents := int64(count) * s.priceCents
	return &dto.CustomerSummary{Count: count, TotalRevenueCents: cents, TotalRevenue: FormatBRL(cents)}
}
