package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vidro-absolut/study-api/internal/models"
)

const routineColumns = `id, user_id, task_name, time_slot, monday, tuesday, wednesday, thursday, friday, saturday, sunday, sort_order, created_at, updated_at`

// RoutineRepository persists weekly routine tasks.
type RoutineRepository struct {
	db *sqlx.DB
}

// NewRoutineRepository constructs the repository.
func NewRoutineRepository(db *sqlx.DB) *RoutineRepository {
	return &RoutineRepository{db: db}
}

// ListByUser returns tasks ordered by their position in the table.
func (r *RoutineRepository) ListByUser(ctx context.Context, userID string) ([]models.RoutineTask, error) {
	query := `SELECT ` + routineColumns + ` FROM routine_tasks WHERE user_id = $1 ORDER BY sort_order ASC, created_at ASC`
	tasks := []models.RoutineTask{}
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("list routine tasks: %w", err)
	}
	return tasks, nil
}

// FindByID returns a task owned by userID.
func (r *RoutineRepository) FindByID(ctx context.Context, userID, id string) (*models.RoutineTask, error) {
	query := `SELECT ` + routineColumns + ` FROM routine_tasks WHERE id = $1 AND user_id = $2`
	var task models.RoutineTask
	if err := r.db.GetContext(ctx, &task, query, id, userID); err != nil {
		return nil, err
	}
	return &task, nil
}

// CountByUser returns how many tasks the user has.
func (r *RoutineRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM routine_tasks WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("count routine tasks: %w", err)
	}
	return count, nil
}

// Create persists a new task.
func (r *RoutineRepository) Create(ctx context.Context, task *models.RoutineTask) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	const query = `INSERT INTO routine_tasks (` + routineColumns + `)
VALUES (:id, :user_id, :task_name, :time_slot, :monday, :tuesday, :wednesday, :thursday, :friday, :saturday, :sunday, :sort_order, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return fmt.Errorf("create routine task: %w", err)
	}
	return nil
}

// Update stores the name and day flags of a task.
func (r *RoutineRepository) Update(ctx context.Context, task *models.RoutineTask) error {
	task.UpdatedAt = time.Now().UTC()
	const query = `UPDATE routine_tasks SET task_name = :task_name, time_slot = :time_slot,
monday = :monday, tuesday = :tuesday, wednesday = :wednesday, thursday = :thursday,
friday = :friday, saturday = :saturday, sunday = :sunday, updated_at = :updated_at
WHERE id = :id AND user_id = :user_id`
	res, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		return fmt.Errorf("update routine task: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a task.
func (r *RoutineRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routine_tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete routine task: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
