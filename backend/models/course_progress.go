package models

import "time"

type CourseType string

const (
	CourseTypeMiniCourse CourseType = "mini_course"
	CourseTypeWebinar    CourseType = "webinar"
)

func (t CourseType) Valid() bool {
	return t == CourseTypeMiniCourse || t == CourseTypeWebinar
}

// ProgressRecord is the completion fact of one item for one user.
// (UserID, CourseType, ItemID) is unique.
type ProgressRecord struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"size:36;not null;uniqueIndex:idx_course_progress_key,priority:1" json:"user_id"`
	CourseType  CourseType `gorm:"size:32;not null;uniqueIndex:idx_course_progress_key,priority:2" json:"course_type"`
	ItemID      string     `gorm:"column:lesson_id;size:64;not null;uniqueIndex:idx_course_progress_key,priority:3" json:"item_id"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"` // last completion time
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (ProgressRecord) TableName() string {
	return "course_progress"
}

// Bookmark marks a guide section; presence is the whole state.
type Bookmark struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"size:36;not null;uniqueIndex:idx_bookmarks_key,priority:1" json:"user_id"`
	GuideSectionID string    `gorm:"column:guide_section;size:64;not null;uniqueIndex:idx_bookmarks_key,priority:2" json:"guide_section"`
	CreatedAt      time.Time `json:"created_at"`
}
