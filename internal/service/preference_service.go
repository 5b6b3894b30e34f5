package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type studyPreferenceRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.StudyPreference, error)
	UpsertMode(ctx context.Context, pref *models.StudyPreference) error
}

// PreferenceService manages the study mode chosen on the dashboard.
type PreferenceService struct {
	repo         studyPreferenceRepository
	cache        *CacheService
	validator    *validator.Validate
	logger       *zap.Logger
	defaultHours int
}

// NewPreferenceService constructs the service.
func NewPreferenceService(repo studyPreferenceRepository, cacheSvc *CacheService, validate *validator.Validate, logger *zap.Logger, defaultHours int) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if defaultHours <= 0 {
		defaultHours = 20
	}
	return &PreferenceService{repo: repo, cache: cacheSvc, validator: validate, logger: logger, defaultHours: defaultHours}
}

// Get returns stored preferences, or defaults with no mode when the user never chose one.
func (s *PreferenceService) Get(ctx context.Context, userID string) (*models.StudyPreference, error) {
	pref, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.StudyPreference{UserID: userID, WeeklyHours: s.defaultHours}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study preferences")
	}
	return pref, nil
}

// SelectMode stores the chosen study mode.
func (s *PreferenceService) SelectMode(ctx context.Context, userID string, req dto.SelectModeRequest) (*models.StudyPreference, error) {
	if err := s.validator.Struct(req); err != nil || !req.Mode.Valid() {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "study mode must be routine or cycle")
	}
	pref, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	mode := req.Mode
	pref.StudyMode = &mode
	if err := s.repo.UpsertMode(ctx, pref); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save study mode")
	}
	invalidateOverview(ctx, s.cache, userID)
	s.logger.Debug("study mode selected", zap.String("user_id", userID), zap.String("mode", string(mode)))
	return pref, nil
}
