package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	"github.com/vidro-absolut/study-api/pkg/cache"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type studyCycleRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.StudySubject, error)
	FindByID(ctx context.Context, userID, id string) (*models.StudySubject, error)
	CreateWithAllocation(ctx context.Context, subject *models.StudySubject, siblings []models.StudySubject) error
	DeleteWithAllocation(ctx context.Context, userID, id string, remaining []models.StudySubject) error
	SaveAllocation(ctx context.Context, subjects []models.StudySubject) error
	SaveBudget(ctx context.Context, pref *models.StudyPreference, subjects []models.StudySubject) error
	UpdateCompleted(ctx context.Context, userID, id string, completed int) error
	ResetProgress(ctx context.Context, userID string) (int64, error)
}

type studyPreferenceReader interface {
	GetByUser(ctx context.Context, userID string) (*models.StudyPreference, error)
}

// StudyCycleServiceConfig tunes the study cycle.
type StudyCycleServiceConfig struct {
	DefaultWeeklyHours int
	CacheTTL           time.Duration
}

// StudyCycleService distributes the weekly hour budget across subjects by weight and
// tracks completed hours.
type StudyCycleService struct {
	repo      studyCycleRepository
	prefs     studyPreferenceReader
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       StudyCycleServiceConfig
}

// NewStudyCycleService constructs the service.
func NewStudyCycleService(repo studyCycleRepository, prefs studyPreferenceReader, cacheSvc *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg StudyCycleServiceConfig) *StudyCycleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cfg.DefaultWeeklyHours <= 0 {
		cfg.DefaultWeeklyHours = 20
	}
	return &StudyCycleService{repo: repo, prefs: prefs, cache: cacheSvc, metrics: metrics, validator: validate, logger: logger, cfg: cfg}
}

// Overview returns preferences, subjects and progress totals, and whether they came from cache.
func (s *StudyCycleService) Overview(ctx context.Context, userID string) (*dto.StudyCycleOverview, bool, error) {
	key := overviewCacheKey(userID)
	if s.cache != nil {
		var cached dto.StudyCycleOverview
		hit, err := s.cache.Get(ctx, key, &cached)
		if err == nil && hit {
			return &cached, true, nil
		}
	}

	pref, err := s.preference(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	start := time.Now()
	subjects, err := s.repo.ListByUser(ctx, userID)
	s.metrics.ObserveDBQuery("study_cycle_list", time.Since(start))
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study subjects")
	}

	overview := &dto.StudyCycleOverview{
		Preferences: *pref,
		Subjects:    subjects,
		Progress:    Progress(subjects),
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, overview, s.cfg.CacheTTL)
	}
	return overview, false, nil
}

// SetWeeklyBudget stores the weekly budget and reallocates every subject.
func (s *StudyCycleService) SetWeeklyBudget(ctx context.Context, userID string, req dto.WeeklyBudgetRequest) (*models.StudyPreference, error) {
	req.TargetUniversity = strings.TrimSpace(req.TargetUniversity)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "weekly hours must be between 1 and 80")
	}

	pref, err := s.preference(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref.StudyMode == nil {
		mode := models.StudyModeCycle
		pref.StudyMode = &mode
	}
	pref.WeeklyHours = req.WeeklyHours
	pref.TargetUniversity = req.TargetUniversity

	subjects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study subjects")
	}
	RecomputeAll(subjects, pref.WeeklyHours)

	if err := s.repo.SaveBudget(ctx, pref, subjects); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save weekly hours")
	}
	s.committed(ctx, userID, "set_budget")
	return pref, nil
}

// AddSubject inserts a subject with no completed hours and reallocates the whole set.
func (s *StudyCycleService) AddSubject(ctx context.Context, userID string, req dto.AddSubjectRequest) (*models.StudySubject, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	weight := 1
	if req.Weight != nil {
		weight = *req.Weight
	}

	budget, err := s.budget(ctx, userID)
	if err != nil {
		return nil, err
	}
	siblings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study subjects")
	}

	subject := models.StudySubject{UserID: userID, Name: req.Name, Weight: weight}
	all := append(siblings, subject)
	RecomputeAll(all, budget)
	subject = all[len(all)-1]

	if err := s.repo.CreateWithAllocation(ctx, &subject, all[:len(all)-1]); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add subject")
	}
	s.committed(ctx, userID, "add_subject")
	return &subject, nil
}

// UpdateWeight changes a subject weight and reallocates the whole set.
func (s *StudyCycleService) UpdateWeight(ctx context.Context, userID, id string, req dto.UpdateWeightRequest) (*models.StudySubject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "weight must be between 1 and 10")
	}
	budget, err := s.budget(ctx, userID)
	if err != nil {
		return nil, err
	}
	subjects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study subjects")
	}
	idx := indexOfSubject(subjects, id)
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	subjects[idx].Weight = req.Weight
	RecomputeAll(subjects, budget)

	if err := s.repo.SaveAllocation(ctx, subjects); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update weight")
	}
	s.committed(ctx, userID, "update_weight")
	updated := subjects[idx]
	return &updated, nil
}

// RemoveSubject deletes a subject and reallocates the remaining ones.
func (s *StudyCycleService) RemoveSubject(ctx context.Context, userID, id string) error {
	budget, err := s.budget(ctx, userID)
	if err != nil {
		return err
	}
	subjects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study subjects")
	}
	idx := indexOfSubject(subjects, id)
	if idx < 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	remaining := append(subjects[:idx:idx], subjects[idx+1:]...)
	RecomputeAll(remaining, budget)

	if err := s.repo.DeleteWithAllocation(ctx, userID, id, remaining); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove subject")
	}
	s.committed(ctx, userID, "remove_subject")
	return nil
}

// ToggleHour advances the completed hours of a subject by one, wrapping to zero when full.
// hourIndex only identifies the clicked square and must lie within the allotted hours.
func (s *StudyCycleService) ToggleHour(ctx context.Context, userID, id string, req dto.ToggleHourRequest) (*models.StudySubject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid hour index")
	}
	subject, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}
	if req.HourIndex != nil && *req.HourIndex >= subject.CalculatedHours {
		return nil, appErrors.Clone(appErrors.ErrValidation, "hour index out of range")
	}

	subject.CompletedHours = NextCompleted(subject.CompletedHours, subject.CalculatedHours)
	if err := s.repo.UpdateCompleted(ctx, userID, id, subject.CompletedHours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update progress")
	}
	s.committed(ctx, userID, "toggle_hour")
	return subject, nil
}

// ResetProgress zeroes completed hours of every subject.
func (s *StudyCycleService) ResetProgress(ctx context.Context, userID string) (int64, error) {
	affected, err := s.repo.ResetProgress(ctx, userID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset progress")
	}
	s.committed(ctx, userID, "reset_progress")
	return affected, nil
}

func (s *StudyCycleService) preference(ctx context.Context, userID string) (*models.StudyPreference, error) {
	pref, err := s.prefs.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.StudyPreference{UserID: userID, WeeklyHours: s.cfg.DefaultWeeklyHours}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study preferences")
	}
	if pref.WeeklyHours <= 0 {
		pref.WeeklyHours = s.cfg.DefaultWeeklyHours
	}
	return pref, nil
}

func (s *StudyCycleService) budget(ctx context.Context, userID string) (int, error) {
	pref, err := s.preference(ctx, userID)
	if err != nil {
		return 0, err
	}
	return pref.WeeklyHours, nil
}

func (s *StudyCycleService) committed(ctx context.Context, userID, operation string) {
	s.metrics.RecordStudyMutation(operation)
	invalidateOverview(ctx, s.cache, userID)
	s.logger.Debug("study cycle updated", zap.String("user_id", userID), zap.String("operation", operation))
}

func invalidateOverview(ctx context.Context, cacheSvc *CacheService, userID string) {
	if cacheSvc == nil {
		return
	}
	_ = cacheSvc.Evict(ctx, overviewCacheKey(userID))
}

func overviewCacheKey(userID string) string {
	return cache.Key("cycle", userID)
}

func indexOfSubject(subjects []models.StudySubject, id string) int {
	for i := range subjects {
		if subjects[i].ID == id {
			return i
		}
	}
	return -1
}
