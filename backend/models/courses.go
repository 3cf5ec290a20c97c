package models

// Course is a static catalog entry. Items are ordered; position drives unlocking.
type Course struct {
	Type        CourseType `yaml:"type" json:"type"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Sequential  bool       `yaml:"sequential" json:"sequential"`
	Href        string     `yaml:"href" json:"href"`
	Items       []Lesson   `yaml:"items" json:"items"`
}

// Lesson is a single trackable item: a mini-course lesson or a webinar.
type Lesson struct {
	ID            string   `yaml:"id" json:"id"`
	SequenceOrder int      `yaml:"order" json:"order"`
	Title         string   `yaml:"title" json:"title"`
	Description   string   `yaml:"description" json:"description"`
	Duration      string   `yaml:"duration" json:"duration"`
	VideoID       string   `yaml:"video_id,omitempty" json:"video_id,omitempty"`
	Topics        []string `yaml:"topics,omitempty" json:"topics,omitempty"`
}

// ItemIDs returns item ids in catalog order.
func (c *Course) ItemIDs() []string {
	ids := make([]string, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.ID
	}
	return ids
}

// IndexOf returns the position of the item or -1.
func (c *Course) IndexOf(itemID string) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

type Guide struct {
	Title       string         `yaml:"title" json:"title"`
	Description string         `yaml:"description" json:"description"`
	Href        string         `yaml:"href" json:"href"`
	Sections    []GuideSection `yaml:"sections" json:"sections"`
}

type GuideSection struct {
	ID          string            `yaml:"id" json:"id"`
	Title       string            `yaml:"title" json:"title"`
	Intro       string            `yaml:"intro" json:"intro"`
	Subsections []GuideSubsection `yaml:"subsections" json:"subsections"`
}

type GuideSubsection struct {
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content" json:"content"`
}
