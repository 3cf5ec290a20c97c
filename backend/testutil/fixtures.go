package testutil

import (
	"testing"
	"time"

	"camp-portal/backend/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedUser creates a user with a profile. The password is stored as a real bcrypt hash.
func SeedUser(tb testing.TB, db *gorm.DB, email, fullName, password string) *models.User {
	tb.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		tb.Fatalf("hash password: %v", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	if err := db.Create(&models.Profile{ID: u.ID, FullName: fullName}).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return u
}

func SeedCompletion(tb testing.TB, db *gorm.DB, userID string, courseType models.CourseType, itemID string) *models.ProgressRecord {
	tb.Helper()
	now := time.Now().UTC()
	rec := &models.ProgressRecord{
		UserID:      userID,
		CourseType:  courseType,
		ItemID:      itemID,
		Completed:   true,
		CompletedAt: &now,
	}
	if err := db.Create(rec).Error; err != nil {
		tb.Fatalf("seed completion: %v", err)
	}
	return rec
}

func SeedBookmark(tb testing.TB, db *gorm.DB, userID, sectionID string) *models.Bookmark {
	tb.Helper()
	b := &models.Bookmark{UserID: userID, GuideSectionID: sectionID}
	if err := db.Create(b).Error; err != nil {
		tb.Fatalf("seed bookmark: %v", err)
	}
	return b
}
