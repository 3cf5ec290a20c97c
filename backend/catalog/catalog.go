// Package catalog loads the static course and guide definitions.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"camp-portal/backend/models"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is read-only after Load.
type Catalog struct {
	Courses []models.Course `yaml:"courses"`
	Guide   models.Guide    `yaml:"guide"`

	byType   map[models.CourseType]*models.Course
	sections map[string]*models.GuideSection
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded catalog. It panics on a broken build.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

// index validates the catalog and builds the lookup maps.
// Unlocking uses array position, so each item's order must equal its position + 1.
func (c *Catalog) index() error {
	c.byType = make(map[models.CourseType]*models.Course, len(c.Courses))
	for i := range c.Courses {
		course := &c.Courses[i]
		if !course.Type.Valid() {
			return fmt.Errorf("%w: unknown course type %q", ErrInvalidCatalog, course.Type)
		}
		if _, dup := c.byType[course.Type]; dup {
			return fmt.Errorf("%w: duplicate course type %q", ErrInvalidCatalog, course.Type)
		}

		seen := make(map[string]struct{}, len(course.Items))
		for pos, item := range course.Items {
			if item.ID == "" {
				return fmt.Errorf("%w: %s item #%d has no id", ErrInvalidCatalog, course.Type, pos+1)
			}
			if _, dup := seen[item.ID]; dup {
				return fmt.Errorf("%w: %s has duplicate item %q", ErrInvalidCatalog, course.Type, item.ID)
			}
			if item.SequenceOrder != pos+1 {
				return fmt.Errorf("%w: %s item %q has order %d at position %d",
					ErrInvalidCatalog, course.Type, item.ID, item.SequenceOrder, pos+1)
			}
			seen[item.ID] = struct{}{}
		}
		c.byType[course.Type] = course
	}

	c.sections = make(map[string]*models.GuideSection, len(c.Guide.Sections))
	for i := range c.Guide.Sections {
		section := &c.Guide.Sections[i]
		if section.ID == "" {
			return fmt.Errorf("%w: guide section #%d has no id", ErrInvalidCatalog, i+1)
		}
		if _, dup := c.sections[section.ID]; dup {
			return fmt.Errorf("%w: duplicate guide section %q", ErrInvalidCatalog, section.ID)
		}
		c.sections[section.ID] = section
	}

	return nil
}

func (c *Catalog) Course(t models.CourseType) (*models.Course, bool) {
	course, ok := c.byType[t]
	return course, ok
}

func (c *Catalog) Section(id string) (*models.GuideSection, bool) {
	section, ok := c.sections[id]
	return section, ok
}

// TotalItems is the catalog length of a course, 0 for unknown types.
func (c *Catalog) TotalItems(t models.CourseType) int {
	if course, ok := c.byType[t]; ok {
		return len(course.Items)
	}
	return 0
}
