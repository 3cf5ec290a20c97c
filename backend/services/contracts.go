package services

import (
	"context"
	"time"

	"camp-portal/backend/models"
)

type ProgressRepository interface {
	ListByUserAndType(ctx context.Context, userID string, courseType models.CourseType) ([]models.ProgressRecord, error)
	UpsertCompletion(ctx context.Context, userID string, courseType models.CourseType, itemID string, completedAt time.Time) (*models.ProgressRecord, error)
}

type BookmarkRepository interface {
	Add(ctx context.Context, userID, sectionID string) error
	Remove(ctx context.Context, userID, sectionID string) error
	ListByUser(ctx context.Context, userID string) ([]models.Bookmark, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User, fullName string) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type ProfileRepository interface {
	Find(ctx context.Context, id string) (*models.Profile, error)
	UpdateFullName(ctx context.Context, id, fullName string) (*models.Profile, error)
	Count(ctx context.Context) (int64, error)
}

// TokenDenylist is satisfied by session.Denylist.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// EventCounter receives counts of successful writes. A nil counter is allowed.
type EventCounter interface {
	CompletionRecorded(courseType models.CourseType)
	BookmarkChanged(action string)
}
