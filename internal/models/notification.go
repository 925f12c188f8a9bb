package models

import "time"

// Notification is a single in-app notification record. Read state is mutated
// locally by the stores; everything else is server-owned.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Message   string    `json:"message"`
	Type      string    `json:"type,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Recipient identifies the staff member a broadcast notification targets.
type Recipient struct {
	ID   string  `json:"id"`
	Name string  `json:"name,omitempty"`
	Role OrgRole `json:"role"`
}

// BroadcastNotification is the org-admin variant: a notification addressed to
// a staff recipient, optionally embargoed until VisibleAt.
type BroadcastNotification struct {
	Notification
	Recipient Recipient  `json:"recipient"`
	VisibleAt *time.Time `json:"visible_at,omitempty"`
}
