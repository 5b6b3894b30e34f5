package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vidro-absolut/study-api/internal/models"
)

const upsertBudgetQuery = `INSERT INTO user_study_preferences (id, user_id, study_mode, weekly_hours, target_university, created_at, updated_at)
VALUES (:id, :user_id, :study_mode, :weekly_hours, :target_university, :created_at, :updated_at)
ON CONFLICT (user_id) DO UPDATE
SET weekly_hours = EXCLUDED.weekly_hours,
    target_university = EXCLUDED.target_university,
    updated_at = EXCLUDED.updated_at`

const upsertModeQuery = `INSERT INTO user_study_preferences (id, user_id, study_mode, weekly_hours, target_university, created_at, updated_at)
VALUES (:id, :user_id, :study_mode, :weekly_hours, :target_university, :created_at, :updated_at)
ON CONFLICT (user_id) DO UPDATE
SET study_mode = EXCLUDED.study_mode,
    updated_at = EXCLUDED.updated_at`

// StudyPreferenceRepository persists per-user planner settings.
type StudyPreferenceRepository struct {
	db *sqlx.DB
}

// NewStudyPreferenceRepository constructs the repository.
func NewStudyPreferenceRepository(db *sqlx.DB) *StudyPreferenceRepository {
	return &StudyPreferenceRepository{db: db}
}

// GetByUser returns stored preferences for a user.
func (r *StudyPreferenceRepository) GetByUser(ctx context.Context, userID string) (*models.StudyPreference, error) {
	const query = `SELECT id, user_id, study_mode, weekly_hours, target_university, created_at, updated_at FROM user_study_preferences WHERE user_id = $1`
	var pref models.StudyPreference
	if err := r.db.GetContext(ctx, &pref, query, userID); err != nil {
		return nil, err
	}
	return &pref, nil
}

// UpsertMode stores the chosen study mode, creating the row when missing.
func (r *StudyPreferenceRepository) UpsertMode(ctx context.Context, pref *models.StudyPreference) error {
	prepareStudyPreference(pref)
	if _, err := r.db.NamedExecContext(ctx, upsertModeQuery, pref); err != nil {
		return fmt.Errorf("upsert study mode: %w", err)
	}
	return nil
}

func prepareStudyPreference(pref *models.StudyPreference) {
	if pref.ID == "" {
		pref.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if pref.CreatedAt.IsZero() {
		pref.CreatedAt = now
	}
	pref.UpdatedAt = now
}
