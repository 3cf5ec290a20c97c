package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"camp-portal/backend/catalog"
	"camp-portal/backend/models"
	"camp-portal/backend/repository"

	"golang.org/x/sync/errgroup"
)

const defaultDisplayName = "Пользователь"

var achievements = []models.Achievement{
	{Key: "start", Title: "Начало пути", Threshold: 25},
	{Key: "halfway", Title: "На полпути", Threshold: 50},
	{Key: "almost", Title: "Почти готово", Threshold: 75},
	{Key: "expert", Title: "Эксперт", Threshold: 100},
}

type DashboardService struct {
	progress  *ProgressService
	bookmarks BookmarkRepository
	profiles  ProfileRepository
	catalog   *catalog.Catalog
}

func NewDashboardService(progress *ProgressService, bookmarks BookmarkRepository, profiles ProfileRepository, cat *catalog.Catalog) *DashboardService {
	return &DashboardService{progress: progress, bookmarks: bookmarks, profiles: profiles, catalog: cat}
}

// Dashboard builds the overview cards. Store reads run concurrently.
func (s *DashboardService) Dashboard(ctx context.Context, userID string) (*models.ProgressOverview, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}

	var (
		mini, web   *CourseProgress
		bookmarks   int64
		displayName = defaultDisplayName
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.Find(gctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return err
		}
		if name := strings.TrimSpace(p.FullName); name != "" {
			displayName = name
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mini, err = s.progress.Aggregate(gctx, userID, models.CourseTypeMiniCourse)
		return err
	})
	g.Go(func() error {
		var err error
		web, err = s.progress.Aggregate(gctx, userID, models.CourseTypeWebinar)
		return err
	})
	g.Go(func() error {
		var err error
		bookmarks, err = s.bookmarks.CountByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	overall := Overall(*mini, *web, bookmarks)

	guideProgress := 0
	if bookmarks > 0 {
		guideProgress = 100
	}

	tracks := []models.TrackProgress{
		s.courseTrack(models.CourseTypeMiniCourse, mini),
		s.courseTrack(models.CourseTypeWebinar, web),
		{
			Key:       "guide",
			Title:     s.catalog.Guide.Title,
			Completed: int(bookmarks),
			Total:     len(s.catalog.Guide.Sections),
			Progress:  guideProgress,
			Href:      s.catalog.Guide.Href,
			Label:     "разделов",
		},
	}

	return &models.ProgressOverview{
		DisplayName:     displayName,
		OverallProgress: overall,
		Tracks:          tracks,
		Achievements:    Achievements(overall),
	}, nil
}

func (s *DashboardService) courseTrack(courseType models.CourseType, agg *CourseProgress) models.TrackProgress {
	track := models.TrackProgress{
		Key:       string(courseType),
		Completed: agg.CompletedCount,
		Total:     agg.TotalCount,
		Progress:  agg.Percentage,
	}
	if course, ok := s.catalog.Course(courseType); ok {
		track.Title = course.Title
		track.Href = course.Href
	}
	return track
}

// Achievements lists every milestone with its unlocked flag for the given overall percentage.
func Achievements(overall int) []models.Achievement {
	out := make([]models.Achievement, len(achievements))
	for i, a := range achievements {
		a.Unlocked = overall >= a.Threshold
		out[i] = a
	}
	return out
}
