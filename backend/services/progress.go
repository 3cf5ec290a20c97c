package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"camp-portal/backend/catalog"
	"camp-portal/backend/models"

	"go.uber.org/zap"
)

// CourseProgress is derived from stored records on every read.
type CourseProgress struct {
	CourseType     models.CourseType `json:"course_type"`
	CompletedCount int               `json:"completed"`
	TotalCount     int               `json:"total"`
	Percentage     int               `json:"percentage"`
	CompletedSet   map[string]bool   `json:"-"`
}

// ItemState is a catalog item as seen by one user.
type ItemState struct {
	models.Lesson
	Index       int        `json:"index"`
	Completed   bool       `json:"completed"`
	Unlocked    bool       `json:"unlocked"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type CourseView struct {
	Type        models.CourseType `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Sequential  bool              `json:"sequential"`
	Items       []ItemState       `json:"items"`
	Progress    CourseProgress    `json:"progress"`
}

type ItemView struct {
	CourseType models.CourseType `json:"course_type"`
	Item       ItemState         `json:"item"`
	PrevID     string            `json:"prev_id,omitempty"`
	NextID     string            `json:"next_id,omitempty"`
	Total      int               `json:"total"`
}

type ProgressService struct {
	repo    ProgressRepository
	catalog *catalog.Catalog
	events  EventCounter
	log     *zap.Logger
	now     func() time.Time
}

func NewProgressService(repo ProgressRepository, cat *catalog.Catalog, events EventCounter, log *zap.Logger) *ProgressService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProgressService{
		repo:    repo,
		catalog: cat,
		events:  events,
		log:     log.Named("progress"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// MarkComplete records that the user finished an item. Repeating the call
// keeps one record and moves its completion time forward.
func (s *ProgressService) MarkComplete(ctx context.Context, userID string, courseType models.CourseType, itemID string) (*models.ProgressRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}
	course, err := s.course(courseType)
	if err != nil {
		return nil, err
	}
	if course.IndexOf(itemID) < 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownItem, courseType, itemID)
	}

	rec, err := s.repo.UpsertCompletion(ctx, userID, courseType, itemID, s.now())
	if err != nil {
		return nil, fmt.Errorf("mark complete: %w", err)
	}

	if s.events != nil {
		s.events.CompletionRecorded(courseType)
	}
	s.log.Debug("item completed",
		zap.String("user_id", userID),
		zap.String("course_type", string(courseType)),
		zap.String("item_id", itemID),
	)
	return rec, nil
}

// Aggregate counts the user's completed items of a course against the catalog.
// Records for items no longer in the catalog are ignored.
func (s *ProgressService) Aggregate(ctx context.Context, userID string, courseType models.CourseType) (*CourseProgress, error) {
	course, err := s.course(courseType)
	if err != nil {
		return nil, err
	}
	agg, _, err := s.aggregate(ctx, userID, course)
	return agg, err
}

func (s *ProgressService) aggregate(ctx context.Context, userID string, course *models.Course) (*CourseProgress, map[string]*models.ProgressRecord, error) {
	recs, err := s.repo.ListByUserAndType(ctx, userID, course.Type)
	if err != nil {
		return nil, nil, fmt.Errorf("aggregate %s: %w", course.Type, err)
	}

	byItem := make(map[string]*models.ProgressRecord, len(recs))
	completed := make(map[string]bool, len(recs))
	for i := range recs {
		rec := &recs[i]
		if !rec.Completed || course.IndexOf(rec.ItemID) < 0 {
			continue
		}
		completed[rec.ItemID] = true
		byItem[rec.ItemID] = rec
	}

	total := s.catalog.TotalItems(course.Type)
	return &CourseProgress{
		CourseType:     course.Type,
		CompletedCount: len(completed),
		TotalCount:     total,
		Percentage:     Percentage(len(completed), total),
		CompletedSet:   completed,
	}, byItem, nil
}

// Course returns every item of the course with completion and unlock flags.
func (s *ProgressService) Course(ctx context.Context, userID string, courseType models.CourseType) (*CourseView, error) {
	course, err := s.course(courseType)
	if err != nil {
		return nil, err
	}
	agg, records, err := s.aggregate(ctx, userID, course)
	if err != nil {
		return nil, err
	}

	ids := course.ItemIDs()
	items := make([]ItemState, len(course.Items))
	for i := range course.Items {
		items[i] = s.itemState(course, ids, i, agg.CompletedSet, records)
	}

	return &CourseView{
		Type:        course.Type,
		Title:       course.Title,
		Description: course.Description,
		Sequential:  course.Sequential,
		Items:       items,
		Progress:    *agg,
	}, nil
}

// Item returns one item. Opening a locked item of a sequential course fails with ErrItemLocked.
func (s *ProgressService) Item(ctx context.Context, userID string, courseType models.CourseType, itemID string) (*ItemView, error) {
	course, err := s.course(courseType)
	if err != nil {
		return nil, err
	}
	idx := course.IndexOf(itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownItem, courseType, itemID)
	}

	agg, records, err := s.aggregate(ctx, userID, course)
	if err != nil {
		return nil, err
	}

	ids := course.ItemIDs()
	state := s.itemState(course, ids, idx, agg.CompletedSet, records)
	if !state.Unlocked {
		return nil, fmt.Errorf("%w: %s/%s", ErrItemLocked, courseType, itemID)
	}

	view := &ItemView{CourseType: course.Type, Item: state, Total: len(ids)}
	if idx > 0 {
		view.PrevID = ids[idx-1]
	}
	if idx+1 < len(ids) {
		view.NextID = ids[idx+1]
	}
	return view, nil
}

func (s *ProgressService) itemState(course *models.Course, ids []string, idx int, completed map[string]bool, records map[string]*models.ProgressRecord) ItemState {
	item := course.Items[idx]
	state := ItemState{
		Lesson:    item,
		Index:     idx,
		Completed: completed[item.ID],
		Unlocked:  !course.Sequential || IsUnlocked(ids, completed, idx),
	}
	if rec, ok := records[item.ID]; ok {
		state.CompletedAt = rec.CompletedAt
	}
	return state
}

func (s *ProgressService) course(courseType models.CourseType) (*models.Course, error) {
	course, ok := s.catalog.Course(courseType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCourse, courseType)
	}
	return course, nil
}
