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

const subjectColumns = `id, user_id, subject_name, weight, calculated_hours, completed_hours, created_at, updated_at`

const updateAllocationQuery = `UPDATE study_cycle_subjects
SET weight = $1, calculated_hours = $2, completed_hours = $3, updated_at = $4
WHERE id = $5 AND user_id = $6`

// StudyCycleRepository persists study cycle subjects. Every call that touches more than one row
// runs inside a single transaction.
type StudyCycleRepository struct {
	db *sqlx.DB
}

// NewStudyCycleRepository creates a new repository instance.
func NewStudyCycleRepository(db *sqlx.DB) *StudyCycleRepository {
	return &StudyCycleRepository{db: db}
}

// ListByUser returns the user's subjects in creation order.
func (r *StudyCycleRepository) ListByUser(ctx context.Context, userID string) ([]models.StudySubject, error) {
	query := `SELECT ` + subjectColumns + ` FROM study_cycle_subjects WHERE user_id = $1 ORDER BY created_at ASC, id ASC`
	subjects := []models.StudySubject{}
	if err := r.db.SelectContext(ctx, &subjects, query, userID); err != nil {
		return nil, fmt.Errorf("list study subjects: %w", err)
	}
	return subjects, nil
}

// FindByID returns a subject owned by userID.
func (r *StudyCycleRepository) FindByID(ctx context.Context, userID, id string) (*models.StudySubject, error) {
	query := `SELECT ` + subjectColumns + ` FROM study_cycle_subjects WHERE id = $1 AND user_id = $2`
	var subject models.StudySubject
	if err := r.db.GetContext(ctx, &subject, query, id, userID); err != nil {
		return nil, err
	}
	return &subject, nil
}

// CreateWithAllocation inserts subject and stores the recomputed allocation of its siblings.
func (r *StudyCycleRepository) CreateWithAllocation(ctx context.Context, subject *models.StudySubject, siblings []models.StudySubject) error {
	if subject.ID == "" {
		subject.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if subject.CreatedAt.IsZero() {
		subject.CreatedAt = now
	}
	subject.UpdatedAt = now

	return r.withTx(ctx, "create study subject", func(tx *sqlx.Tx) error {
		const query = `INSERT INTO study_cycle_subjects (` + subjectColumns + `)
VALUES (:id, :user_id, :subject_name, :weight, :calculated_hours, :completed_hours, :created_at, :updated_at)`
		if _, err := tx.NamedExecContext(ctx, query, subject); err != nil {
			return err
		}
		return updateAllocation(ctx, tx, siblings, now)
	})
}

// DeleteWithAllocation removes a subject and stores the recomputed allocation of the rest.
// It returns sql.ErrNoRows when the subject does not belong to userID.
func (r *StudyCycleRepository) DeleteWithAllocation(ctx context.Context, userID, id string, remaining []models.StudySubject) error {
	return r.withTx(ctx, "delete study subject", func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM study_cycle_subjects WHERE id = $1 AND user_id = $2`, id, userID)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return sql.ErrNoRows
		}
		return updateAllocation(ctx, tx, remaining, time.Now().UTC())
	})
}

// SaveAllocation stores weights and derived hours for every subject.
func (r *StudyCycleRepository) SaveAllocation(ctx context.Context, subjects []models.StudySubject) error {
	if len(subjects) == 0 {
		return nil
	}
	return r.withTx(ctx, "save study allocation", func(tx *sqlx.Tx) error {
		return updateAllocation(ctx, tx, subjects, time.Now().UTC())
	})
}

// SaveBudget upserts the weekly budget and stores the allocation it produced.
func (r *StudyCycleRepository) SaveBudget(ctx context.Context, pref *models.StudyPreference, subjects []models.StudySubject) error {
	prepareStudyPreference(pref)
	return r.withTx(ctx, "save weekly budget", func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, upsertBudgetQuery, pref); err != nil {
			return err
		}
		return updateAllocation(ctx, tx, subjects, pref.UpdatedAt)
	})
}

// UpdateCompleted stores the progress of one subject.
func (r *StudyCycleRepository) UpdateCompleted(ctx context.Context, userID, id string, completed int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE study_cycle_subjects SET completed_hours = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		completed, time.Now().UTC(), id, userID)
	if err != nil {
		return fmt.Errorf("update completed hours: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ResetProgress zeroes completed hours of every subject owned by userID.
func (r *StudyCycleRepository) ResetProgress(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE study_cycle_subjects SET completed_hours = 0, updated_at = $1 WHERE user_id = $2`,
		time.Now().UTC(), userID)
	if err != nil {
		return 0, fmt.Errorf("reset study progress: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset study progress: %w", err)
	}
	return affected, nil
}

func (r *StudyCycleRepository) withTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s tx: %w", op, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		if err == sql.ErrNoRows {
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s tx: %w", op, err)
	}
	return nil
}

func updateAllocation(ctx context.Context, tx *sqlx.Tx, subjects []models.StudySubject, now time.Time) error {
	for i := range subjects {
		s := &subjects[i]
		s.UpdatedAt = now
		if _, err := tx.ExecContext(ctx, updateAllocationQuery, s.Weight, s.CalculatedHours, s.CompletedHours, now, s.ID, s.UserID); err != nil {
			return fmt.Errorf("update allocation of %s: %w", s.ID, err)
		}
	}
	return nil
}
