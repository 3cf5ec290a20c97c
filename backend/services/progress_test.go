package services

import (
	"context"
	"testing"
	"time"

	"camp-portal/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newProgressService(t *testing.T, repo *fakeProgressRepo, events EventCounter) *ProgressService {
	return NewProgressService(repo, defaultCatalog(t), events, zaptest.NewLogger(t))
}

func TestMarkComplete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProgressRepo()
	events := newCountingEvents()
	svc := newProgressService(t, repo, events)

	first := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }

	rec, err := svc.MarkComplete(ctx, "u1", models.CourseTypeMiniCourse, "lesson-1")
	require.NoError(t, err)
	assert.True(t, rec.Completed)
	assert.Equal(t, first, *rec.CompletedAt)

	second := first.Add(24 * time.Hour)
	svc.now = func() time.Time { return second }
	again, err := svc.MarkComplete(ctx, "u1", models.CourseTypeMiniCourse, "lesson-1")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, again.ID)
	assert.Equal(t, second, *again.CompletedAt)
	assert.Equal(t, first, again.CreatedAt)

	agg, err := svc.Aggregate(ctx, "u1", models.CourseTypeMiniCourse)
	require.NoError(t, err)
	assert.Equal(t, 1, agg.CompletedCount)
	assert.Equal(t, 2, events.completions[models.CourseTypeMiniCourse])
}

func TestMarkCompleteErrors(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProgressRepo()
	events := newCountingEvents()
	svc := newProgressService(t, repo, events)

	_, err := svc.MarkComplete(ctx, "", models.CourseTypeMiniCourse, "lesson-1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.MarkComplete(ctx, "u1", models.CourseType("podcast"), "lesson-1")
	assert.ErrorIs(t, err, ErrUnknownCourse)

	_, err = svc.MarkComplete(ctx, "u1", models.CourseTypeWebinar, "lesson-1")
	assert.ErrorIs(t, err, ErrUnknownItem)

	repo.err = errStoreDown
	_, err = svc.MarkComplete(ctx, "u1", models.CourseTypeMiniCourse, "lesson-1")
	assert.ErrorIs(t, err, errStoreDown)

	assert.Empty(t, repo.records)
	assert.Zero(t, events.completions[models.CourseTypeMiniCourse])
}

func TestAggregate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProgressRepo()
	svc := newProgressService(t, repo, nil)

	repo.complete("u1", models.CourseTypeMiniCourse, "lesson-1", "lesson-2")
	// Unknown ids and other users do not count.
	repo.complete("u1", models.CourseTypeMiniCourse, "lesson-retired")
	repo.complete("u2", models.CourseTypeMiniCourse, "lesson-3")
	repo.records[progressKey{"u1", models.CourseTypeMiniCourse, "lesson-4"}] = &models.ProgressRecord{
		ID: 99, UserID: "u1", CourseType: models.CourseTypeMiniCourse, ItemID: "lesson-4", Completed: false,
	}

	agg, err := svc.Aggregate(ctx, "u1", models.CourseTypeMiniCourse)
	require.NoError(t, err)
	assert.Equal(t, 2, agg.CompletedCount)
	assert.Equal(t, 5, agg.TotalCount)
	assert.Equal(t, 40, agg.Percentage)
	assert.Equal(t, map[string]bool{"lesson-1": true, "lesson-2": true}, agg.CompletedSet)

	agg, err = svc.Aggregate(ctx, "nobody", models.CourseTypeWebinar)
	require.NoError(t, err)
	assert.Equal(t, 0, agg.CompletedCount)
	assert.Equal(t, 4, agg.TotalCount)
	assert.Equal(t, 0, agg.Percentage)

	_, err = svc.Aggregate(ctx, "u1", models.CourseType("podcast"))
	assert.ErrorIs(t, err, ErrUnknownCourse)

	repo.err = errStoreDown
	_, err = svc.Aggregate(ctx, "u1", models.CourseTypeMiniCourse)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestCourseSequentialUnlocking(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProgressRepo()
	svc := NewProgressService(repo, testCatalog(t), nil, nil)

	repo.complete("u1", models.CourseTypeMiniCourse, "a")

	view, err := svc.Course(ctx, "u1", models.CourseTypeMiniCourse)
	require.NoError(t, err)
	require.Len(t, view.Items, 3)

	assert.True(t, view.Items[0].Completed)
	assert.True(t, view.Items[0].Unlocked)
	assert.NotNil(t, view.Items[0].CompletedAt)
	assert.False(t, view.Items[1].Completed)
	assert.True(t, view.Items[1].Unlocked)
	assert.False(t, view.Items[2].Unlocked)
	assert.Equal(t, 33, view.Progress.Percentage)
}

func TestCourseWebinarsAllUnlocked(t *testing.T) {
	svc := NewProgressService(newFakeProgressRepo(), testCatalog(t), nil, nil)

	view, err := svc.Course(context.Background(), "u1", models.CourseTypeWebinar)
	require.NoError(t, err)
	for _, item := range view.Items {
		assert.True(t, item.Unlocked, item.ID)
	}
}

func TestItem(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProgressRepo()
	svc := NewProgressService(repo, testCatalog(t), nil, nil)

	first, err := svc.Item(ctx, "u1", models.CourseTypeMiniCourse, "a")
	require.NoError(t, err)
	assert.Empty(t, first.PrevID)
	assert.Equal(t, "b", first.NextID)
	assert.Equal(t, 3, first.Total)

	_, err = svc.Item(ctx, "u1", models.CourseTypeMiniCourse, "b")
	assert.ErrorIs(t, err, ErrItemLocked)

	repo.complete("u1", models.CourseTypeMiniCourse, "a")
	second, err := svc.Item(ctx, "u1", models.CourseTypeMiniCourse, "b")
	require.NoError(t, err)
	assert.Equal(t, "a", second.PrevID)
	assert.Equal(t, "c", second.NextID)

	_, err = svc.Item(ctx, "u1", models.CourseTypeMiniCourse, "zzz")
	assert.ErrorIs(t, err, ErrUnknownItem)

	last, err := svc.Item(ctx, "u1", models.CourseTypeWebinar, "w2")
	require.NoError(t, err)
	assert.Empty(t, last.NextID)
}
