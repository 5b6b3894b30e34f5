package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type routineRepoStub struct {
	tasks map[string]*models.RoutineTask
	order []string
}

func newRoutineRepoStub() *routineRepoStub {
	return &routineRepoStub{tasks: map[string]*models.RoutineTask{}}
}

func (s *routineRepoStub) ListByUser(ctx context.Context, userID string) ([]models.RoutineTask, error) {
	var out []models.RoutineTask
	for _, id := range s.order {
		if t := s.tasks[id]; t != nil && t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *routineRepoStub) FindByID(ctx context.Context, userID, id string) (*models.RoutineTask, error) {
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return nil, sql.ErrNoRows
	}
	found := *t
	return &found, nil
}

func (s *routineRepoStub) CountByUser(ctx context.Context, userID string) (int, error) {
	tasks, _ := s.ListByUser(ctx, userID)
	return len(tasks), nil
}

func (s *routineRepoStub) Create(ctx context.Context, task *models.RoutineTask) error {
	task.ID = fmt.Sprintf("t-%d", len(s.order)+1)
	stored := *task
	s.tasks[task.ID] = &stored
	s.order = append(s.order, task.ID)
	return nil
}

func (s *routineRepoStub) Update(ctx context.Context, task *models.RoutineTask) error {
	if _, ok := s.tasks[task.ID]; !ok {
		return sql.ErrNoRows
	}
	stored := *task
	s.tasks[task.ID] = &stored
	return nil
}

func (s *routineRepoStub) Delete(ctx context.Context, userID, id string) error {
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return sql.ErrNoRows
	}
	delete(s.tasks, id)
	return nil
}

func TestRoutineServiceAddAssignsSortOrder(t *testing.T) {
	svc := NewRoutineService(newRoutineRepoStub(), nil, nil)
	ctx := context.Background()

	first, err := svc.Add(ctx, "user-1", dto.CreateRoutineTaskRequest{Name: "Leitura"})
	require.NoError(t, err)
	blank := "  "
	second, err := svc.Add(ctx, "user-1", dto.CreateRoutineTaskRequest{Name: " Exercícios ", TimeSlot: &blank})
	require.NoError(t, err)

	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, 1, second.SortOrder)
	assert.Equal(t, "Exercícios", second.Name)
	assert.Nil(t, second.TimeSlot)
	assert.False(t, second.Monday)

	_, err = svc.Add(ctx, "user-1", dto.CreateRoutineTaskRequest{Name: " "})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRoutineServiceToggleDay(t *testing.T) {
	svc := NewRoutineService(newRoutineRepoStub(), nil, nil)
	ctx := context.Background()
	task, err := svc.Add(ctx, "user-1", dto.CreateRoutineTaskRequest{Name: "Simulado"})
	require.NoError(t, err)

	updated, err := svc.ToggleDay(ctx, "user-1", task.ID, dto.ToggleDayRequest{Day: "Saturday"})
	require.NoError(t, err)
	assert.True(t, updated.Saturday)

	updated, err = svc.ToggleDay(ctx, "user-1", task.ID, dto.ToggleDayRequest{Day: "saturday"})
	require.NoError(t, err)
	assert.False(t, updated.Saturday)

	_, err = svc.ToggleDay(ctx, "user-1", task.ID, dto.ToggleDayRequest{Day: "funday"})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.ToggleDay(ctx, "user-2", task.ID, dto.ToggleDayRequest{Day: "monday"})
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRoutineServiceRenameBlankUsesPlaceholder(t *testing.T) {
	svc := NewRoutineService(newRoutineRepoStub(), nil, nil)
	ctx := context.Background()
	task, err := svc.Add(ctx, "user-1", dto.CreateRoutineTaskRequest{Name: "Revisão"})
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, "user-1", task.ID, dto.RenameRoutineTaskRequest{Name: "   "})
	require.NoError(t, err)
	assert.Equal(t, UnnamedTask, renamed.Name)
}

func TestRoutineServiceDelete(t *testing.T) {
	svc := NewRoutineService(newRoutineRepoStub(), nil, nil)
	ctx := context.Background()
	task, err := svc.Add(ctx, "user-1", dto.CreateRoutineTaskRequest{Name: "Revisão"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "user-1", task.ID))
	err = svc.Delete(ctx, "user-1", task.ID)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	tasks, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestRoutineServiceLogsMutations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewRoutineService(newRoutineRepoStub(), nil, zap.New(core))
	ctx := context.Background()

	task, err := svc.Add(ctx, "user-1", dto.CreateRoutineTaskRequest{Name: "Simulado"})
	require.NoError(t, err)
	_, err = svc.ToggleDay(ctx, "user-1", task.ID, dto.ToggleDayRequest{Day: "friday"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "user-1", task.ID))

	assert.Equal(t, 1, logs.FilterMessage("routine task added").Len())
	assert.Equal(t, 1, logs.FilterMessage("routine task updated").Len())
	deleted := logs.FilterMessage("routine task deleted").All()
	require.Len(t, deleted, 1)
	assert.Equal(t, task.ID, deleted[0].ContextMap()["task_id"])
}
