package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"camp-portal/backend/catalog"
	"camp-portal/backend/models"
	"camp-portal/backend/repository"

	"github.com/stretchr/testify/require"
)

type progressKey struct {
	userID     string
	courseType models.CourseType
	itemID     string
}

type fakeProgressRepo struct {
	mu      sync.Mutex
	records map[progressKey]*models.ProgressRecord
	nextID  uint
	err     error
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[progressKey]*models.ProgressRecord)}
}

func (f *fakeProgressRepo) ListByUserAndType(_ context.Context, userID string, courseType models.CourseType) ([]models.ProgressRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ProgressRecord
	for k, rec := range f.records {
		if k.userID == userID && k.courseType == courseType {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProgressRepo) UpsertCompletion(_ context.Context, userID string, courseType models.CourseType, itemID string, completedAt time.Time) (*models.ProgressRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	key := progressKey{userID, courseType, itemID}
	rec, ok := f.records[key]
	if !ok {
		f.nextID++
		rec = &models.ProgressRecord{ID: f.nextID, UserID: userID, CourseType: courseType, ItemID: itemID, CreatedAt: completedAt}
		f.records[key] = rec
	}
	at := completedAt
	rec.Completed = true
	rec.CompletedAt = &at
	rec.UpdatedAt = completedAt
	cp := *rec
	return &cp, nil
}

// complete stores a completed record directly.
func (f *fakeProgressRepo) complete(userID string, courseType models.CourseType, ids ...string) {
	for _, id := range ids {
		_, _ = f.UpsertCompletion(context.Background(), userID, courseType, id, time.Now())
	}
}

type fakeBookmarkRepo struct {
	mu    sync.Mutex
	marks map[string]map[string]bool
	err   error
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{marks: make(map[string]map[string]bool)}
}

func (f *fakeBookmarkRepo) Add(_ context.Context, userID, sectionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.marks[userID] == nil {
		f.marks[userID] = make(map[string]bool)
	}
	f.marks[userID][sectionID] = true
	return nil
}

func (f *fakeBookmarkRepo) Remove(_ context.Context, userID, sectionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.marks[userID], sectionID)
	return nil
}

func (f *fakeBookmarkRepo) ListByUser(_ context.Context, userID string) ([]models.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Bookmark
	for id := range f.marks[userID] {
		out = append(out, models.Bookmark{UserID: userID, GuideSectionID: id})
	}
	return out, nil
}

func (f *fakeBookmarkRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.marks[userID])), nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (f *fakeProfileRepo) Find(_ context.Context, id string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) UpdateFullName(_ context.Context, id, fullName string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &models.Profile{ID: id, FullName: fullName}
	f.profiles[id] = p
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.profiles)), nil
}

type fakeUserRepo struct {
	mu       sync.Mutex
	byID     map[string]*models.User
	profiles *fakeProfileRepo
}

func newFakeUserRepo(profiles *fakeProfileRepo) *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*models.User), profiles: profiles}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User, fullName string) error {
	f.mu.Lock()
	for _, u := range f.byID {
		if u.Email == user.Email {
			f.mu.Unlock()
			return repository.ErrDuplicate
		}
	}
	cp := *user
	f.byID[user.ID] = &cp
	f.mu.Unlock()
	_, err := f.profiles.UpdateFullName(ctx, user.ID, fullName)
	return err
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeDenylist struct {
	revoked map[string]time.Time
}

func (f *fakeDenylist) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	if f.revoked == nil {
		f.revoked = make(map[string]time.Time)
	}
	f.revoked[tokenID] = expiresAt
	return nil
}

type countingEvents struct {
	completions map[models.CourseType]int
	bookmarks   map[string]int
}

func newCountingEvents() *countingEvents {
	return &countingEvents{completions: map[models.CourseType]int{}, bookmarks: map[string]int{}}
}

func (c *countingEvents) CompletionRecorded(courseType models.CourseType) { c.completions[courseType]++ }
func (c *countingEvents) BookmarkChanged(action string)                   { c.bookmarks[action]++ }

var errStoreDown = errors.New("store unavailable")

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return c
}

const testCatalogYAML = `
courses:
  - type: mini_course
    title: Mini course
    href: /mini-course
    sequential: true
    items:
      - {id: a, order: 1, title: Lesson A}
      - {id: b, order: 2, title: Lesson B}
      - {id: c, order: 3, title: Lesson C}
  - type: webinar
    title: Webinars
    href: /webinars
    sequential: false
    items:
      - {id: w1, order: 1, title: Webinar 1}
      - {id: w2, order: 2, title: Webinar 2}
guide:
  title: Camp guide
  description: Everything about camps
  href: /guide
  sections:
    - id: safety
      title: Safety first
      intro: Keep children safe.
      subsections:
        - {title: Guards, content: Territory is fenced and guarded.}
        - {title: Counselors, content: Every counselor passes a background check.}
    - id: food
      title: Food
      intro: Five meals a day.
      subsections:
        - {title: Menu, content: Fresh fruit and safe water every day.}
`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalogYAML))
	require.NoError(t, err)
	return c
}
