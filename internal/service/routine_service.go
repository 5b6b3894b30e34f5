package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

// UnnamedTask replaces blank task names on rename.
const UnnamedTask = "Sem nome"

type routineRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.RoutineTask, error)
	FindByID(ctx context.Context, userID, id string) (*models.RoutineTask, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	Create(ctx context.Context, task *models.RoutineTask) error
	Update(ctx context.Context, task *models.RoutineTask) error
	Delete(ctx context.Context, userID, id string) error
}

// RoutineService manages the fixed weekly routine table.
type RoutineService struct {
	repo      routineRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRoutineService constructs the service.
func NewRoutineService(repo routineRepository, validate *validator.Validate, logger *zap.Logger) *RoutineService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RoutineService{repo: repo, validator: validate, logger: logger}
}

// List returns the user's tasks in table order.
func (s *RoutineService) List(ctx context.Context, userID string) ([]models.RoutineTask, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load routine")
	}
	return tasks, nil
}

// Add appends a task at the end of the table with every day unchecked.
func (s *RoutineService) Add(ctx context.Context, userID string, req dto.CreateRoutineTaskRequest) (*models.RoutineTask, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.TimeSlot != nil {
		slot := strings.TrimSpace(*req.TimeSlot)
		if slot == "" {
			req.TimeSlot = nil
		} else {
			req.TimeSlot = &slot
		}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "task name is required")
	}

	count, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load routine")
	}
	task := &models.RoutineTask{UserID: userID, Name: req.Name, TimeSlot: req.TimeSlot, SortOrder: count}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add task")
	}
	s.logger.Debug("routine task added", zap.String("user_id", userID), zap.String("task_id", task.ID))
	return task, nil
}

// ToggleDay flips one weekday of a task.
func (s *RoutineService) ToggleDay(ctx context.Context, userID, id string, req dto.ToggleDayRequest) (*models.RoutineTask, error) {
	day, err := models.ParseWeekday(req.Day)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid day")
	}
	task, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	task.Toggle(day)
	if err := s.save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Rename changes a task name, storing UnnamedTask for blank input.
func (s *RoutineService) Rename(ctx context.Context, userID, id string, req dto.RenameRoutineTaskRequest) (*models.RoutineTask, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "task name too long")
	}
	task, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	task.Name = strings.TrimSpace(req.Name)
	if task.Name == "" {
		task.Name = UnnamedTask
	}
	if err := s.save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task.
func (s *RoutineService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete task")
	}
	s.logger.Debug("routine task deleted", zap.String("user_id", userID), zap.String("task_id", id))
	return nil
}

func (s *RoutineService) load(ctx context.Context, userID, id string) (*models.RoutineTask, error) {
	task, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load task")
	}
	return task, nil
}

func (s *RoutineService) save(ctx context.Context, task *models.RoutineTask) error {
	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update task")
	}
	s.logger.Debug("routine task updated", zap.String("user_id", task.UserID), zap.String("task_id", task.ID))
	return nil
}
