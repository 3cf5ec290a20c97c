package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"camp-portal/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Find returns the record for one item, or ErrNotFound.
func (r *ProgressRepository) Find(ctx context.Context, userID string, courseType models.CourseType, itemID string) (*models.ProgressRecord, error) {
	var rec models.ProgressRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_type = ? AND lesson_id = ?", userID, courseType, itemID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find progress: %w", err)
	}
	return &rec, nil
}

// ListByUserAndType returns every record of the user for a course type.
func (r *ProgressRepository) ListByUserAndType(ctx context.Context, userID string, courseType models.CourseType) ([]models.ProgressRecord, error) {
	var recs []models.ProgressRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_type = ?", userID, courseType).
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return recs, nil
}

// UpsertCompletion marks an item completed in a single statement.
// An existing record keeps its created_at; completed_at moves to completedAt.
func (r *ProgressRepository) UpsertCompletion(ctx context.Context, userID string, courseType models.CourseType, itemID string, completedAt time.Time) (*models.ProgressRecord, error) {
	rec := models.ProgressRecord{
		UserID:      userID,
		CourseType:  courseType,
		ItemID:      itemID,
		Completed:   true,
		CompletedAt: &completedAt,
		CreatedAt:   completedAt,
		UpdatedAt:   completedAt,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_type"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}

	// The conflict branch does not report the existing row back, so read it.
	return r.Find(ctx, userID, courseType, itemID)
}
