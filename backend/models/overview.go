package models

// TrackProgress is one card of the dashboard.
type TrackProgress struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Progress  int    `json:"progress"`
	Href      string `json:"href"`
	Label     string `json:"label,omitempty"`
}

type Achievement struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Threshold int    `json:"threshold"`
	Unlocked  bool   `json:"unlocked"`
}

type ProgressOverview struct {
	DisplayName     string          `json:"display_name"`
	OverallProgress int             `json:"overall_progress"`
	Tracks          []TrackProgress `json:"tracks"`
	Achievements    []Achievement   `json:"achievements"`
}
