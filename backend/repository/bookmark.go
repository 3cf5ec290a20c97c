package repository

import (
	"context"
	"fmt"

	"camp-portal/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Add is idempotent: bookmarking twice leaves one row.
func (r *BookmarkRepository) Add(ctx context.Context, userID, sectionID string) error {
	b := models.Bookmark{UserID: userID, GuideSectionID: sectionID}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "guide_section"}},
		DoNothing: true,
	}).Create(&b).Error
	if err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	return nil
}

// Remove deletes the bookmark. Removing an absent bookmark is not an error.
func (r *BookmarkRepository) Remove(ctx context.Context, userID, sectionID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND guide_section = ?", userID, sectionID).
		Delete(&models.Bookmark{}).Error
	if err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID string) ([]models.Bookmark, error) {
	var list []models.Bookmark
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at, id").Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return list, nil
}

func (r *BookmarkRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Bookmark{}).Where("user_id = ?", userID).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return n, nil
}
