package service

import (
	"context"

	"go.uber.org/zap"

	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type purchaseRepository interface {
	HasAccess(ctx context.Context, userID string) (bool, error)
}

// AccessService answers whether a student paid for the planner.
type AccessService struct {
	repo   purchaseRepository
	logger *zap.Logger
}

// NewAccessService constructs the service.
func NewAccessService(repo purchaseRepository, logger *zap.Logger) *AccessService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccessService{repo: repo, logger: logger}
}

// HasAccess reports whether userID holds a confirmed purchase.
func (s *AccessService) HasAccess(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, appErrors.ErrUnauthorized
	}
	ok, err := s.repo.HasAccess(ctx, userID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check access")
	}
	return ok, nil
}
