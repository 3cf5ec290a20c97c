package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"camp-portal/backend/models"
	"camp-portal/backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepositoryUpsertCompletion(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewProgressRepository(db)

	first := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	rec, err := repo.UpsertCompletion(ctx, "u1", models.CourseTypeMiniCourse, "lesson-1", first)
	require.NoError(t, err)
	assert.True(t, rec.Completed)
	require.NotNil(t, rec.CompletedAt)
	assert.True(t, rec.CompletedAt.Equal(first))

	// Re-marking keeps a single row and moves completed_at forward.
	second := first.Add(time.Hour)
	again, err := repo.UpsertCompletion(ctx, "u1", models.CourseTypeMiniCourse, "lesson-1", second)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, again.ID)
	assert.True(t, again.CompletedAt.Equal(second))
	assert.True(t, again.CreatedAt.Equal(first))

	var n int64
	require.NoError(t, db.Model(&models.ProgressRecord{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestProgressRepositoryFind(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewProgressRepository(db)

	_, err := repo.Find(ctx, "u1", models.CourseTypeWebinar, "webinar-1")
	assert.ErrorIs(t, err, ErrNotFound)

	testutil.SeedCompletion(t, db, "u1", models.CourseTypeWebinar, "webinar-1")
	rec, err := repo.Find(ctx, "u1", models.CourseTypeWebinar, "webinar-1")
	require.NoError(t, err)
	assert.Equal(t, "webinar-1", rec.ItemID)
}

func TestProgressRepositoryList(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewProgressRepository(db)

	testutil.SeedCompletion(t, db, "u1", models.CourseTypeMiniCourse, "lesson-1")
	testutil.SeedCompletion(t, db, "u1", models.CourseTypeMiniCourse, "lesson-2")
	testutil.SeedCompletion(t, db, "u1", models.CourseTypeWebinar, "webinar-1")
	testutil.SeedCompletion(t, db, "u2", models.CourseTypeMiniCourse, "lesson-1")
	require.NoError(t, db.Create(&models.ProgressRecord{
		UserID: "u1", CourseType: models.CourseTypeMiniCourse, ItemID: "lesson-3", Completed: false,
	}).Error)

	recs, err := repo.ListByUserAndType(ctx, "u1", models.CourseTypeMiniCourse)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	recs, err = repo.ListByUserAndType(ctx, "nobody", models.CourseTypeMiniCourse)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestProgressRepositoryConcurrentCompletion(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewProgressRepository(db)

	const workers = 20
	now := time.Now().UTC()
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.UpsertCompletion(ctx, "u1", models.CourseTypeMiniCourse, "lesson-1", now.Add(time.Duration(i)*time.Second))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	var n int64
	require.NoError(t, db.Model(&models.ProgressRecord{}).
		Where("user_id = ? AND course_type = ? AND lesson_id = ?", "u1", models.CourseTypeMiniCourse, "lesson-1").
		Count(&n).Error)
	assert.Equal(t, int64(1), n)

	rec, err := repo.Find(ctx, "u1", models.CourseTypeMiniCourse, "lesson-1")
	require.NoError(t, err)
	assert.True(t, rec.Completed)
	require.NotNil(t, rec.CompletedAt)
}
