package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"camp-portal/backend/catalog"
	"camp-portal/backend/models"
)

// MinSearchQuery is the shortest query, in characters, that produces results.
const MinSearchQuery = 3

const wholeSection = "Весь раздел"

type GuideSectionView struct {
	models.GuideSection
	Bookmarked bool `json:"bookmarked"`
}

type GuideView struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Sections    []GuideSectionView `json:"sections"`
	Bookmarked  int                `json:"bookmarked"`
}

type SearchResult struct {
	SectionID       string `json:"section_id"`
	SectionTitle    string `json:"section_title"`
	SubsectionTitle string `json:"subsection_title"`
}

type GuideService struct {
	bookmarks BookmarkRepository
	catalog   *catalog.Catalog
	events    EventCounter
}

func NewGuideService(bookmarks BookmarkRepository, cat *catalog.Catalog, events EventCounter) *GuideService {
	return &GuideService{bookmarks: bookmarks, catalog: cat, events: events}
}

// Guide returns all sections in catalog order with the user's bookmarks marked.
func (s *GuideService) Guide(ctx context.Context, userID string) (*GuideView, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}
	list, err := s.bookmarks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("guide: %w", err)
	}
	marked := make(map[string]bool, len(list))
	for _, b := range list {
		marked[b.GuideSectionID] = true
	}

	view := &GuideView{
		Title:       s.catalog.Guide.Title,
		Description: s.catalog.Guide.Description,
		Sections:    make([]GuideSectionView, len(s.catalog.Guide.Sections)),
	}
	for i, section := range s.catalog.Guide.Sections {
		view.Sections[i] = GuideSectionView{GuideSection: section, Bookmarked: marked[section.ID]}
		if marked[section.ID] {
			view.Bookmarked++
		}
	}
	return view, nil
}

// Search matches the query case-insensitively against section titles and
// subsection titles and content. Short queries return nothing.
func (s *GuideService) Search(query string) []SearchResult {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchQuery {
		return []SearchResult{}
	}
	needle := strings.ToLower(query)

	results := []SearchResult{}
	for _, section := range s.catalog.Guide.Sections {
		if strings.Contains(strings.ToLower(section.Title), needle) {
			results = append(results, SearchResult{
				SectionID:       section.ID,
				SectionTitle:    section.Title,
				SubsectionTitle: wholeSection,
			})
		}
		for _, sub := range section.Subsections {
			if strings.Contains(strings.ToLower(sub.Title), needle) ||
				strings.Contains(strings.ToLower(sub.Content), needle) {
				results = append(results, SearchResult{
					SectionID:       section.ID,
					SectionTitle:    section.Title,
					SubsectionTitle: sub.Title,
				})
			}
		}
	}
	return results
}

func (s *GuideService) AddBookmark(ctx context.Context, userID, sectionID string) error {
	if err := s.checkBookmark(userID, sectionID); err != nil {
		return err
	}
	if err := s.bookmarks.Add(ctx, userID, sectionID); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	if s.events != nil {
		s.events.BookmarkChanged("add")
	}
	return nil
}

func (s *GuideService) RemoveBookmark(ctx context.Context, userID, sectionID string) error {
	if err := s.checkBookmark(userID, sectionID); err != nil {
		return err
	}
	if err := s.bookmarks.Remove(ctx, userID, sectionID); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	if s.events != nil {
		s.events.BookmarkChanged("remove")
	}
	return nil
}

func (s *GuideService) checkBookmark(userID, sectionID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrUnauthenticated
	}
	if _, ok := s.catalog.Section(sectionID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, sectionID)
	}
	return nil
}
