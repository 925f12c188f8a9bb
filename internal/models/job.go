package models

import "time"

// Job is a posting managed by the organization surface.
type Job struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Type        string     `json:"type,omitempty"`
	Openings    int        `json:"openings,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// JobQuery carries the listing filters. Zero values are omitted from the
// query string.
type JobQuery struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// JobPage is one page of a job listing.
type JobPage struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
