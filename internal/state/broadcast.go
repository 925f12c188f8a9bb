package state

import (
	"sync"

	"github.com/avolkov/hirelink/internal/models"
)

// RoleFilter selects which recipient partition the admin surface displays.
// It never alters the underlying data.
type RoleFilter string

const (
	FilterAll         RoleFilter = "ALL"
	FilterHR          RoleFilter = RoleFilter(models.RoleHR)
	FilterManager     RoleFilter = RoleFilter(models.RoleManager)
	FilterInvigilator RoleFilter = RoleFilter(models.RoleInvigilator)
)

// RoleStats is the per-role breakdown entry.
type RoleStats struct {
	Total  int
	Unread int
}

// BroadcastStore is the org-admin notification variant: records are
// partitioned by recipient role into parallel lists (display order preserved
// within each partition and overall), with a maintained per-role
// {total, unread} breakdown and a display-only role filter. The global unread
// count invariant is the same as NotificationStore's.
type BroadcastStore struct {
	mu       sync.Mutex
	all      []*models.BroadcastNotification
	byRole   map[models.OrgRole][]*models.BroadcastNotification
	unread   int
	selected RoleFilter
	loading  bool
	errMsg   string
}

func NewBroadcastStore() *BroadcastStore {
	return &BroadcastStore{
		byRole:   make(map[models.OrgRole][]*models.BroadcastNotification),
		selected: FilterAll,
	}
}

// ReplaceAll overwrites every partition from a fresh server sync.
func (s *BroadcastStore) ReplaceAll(records []models.BroadcastNotification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.all = make([]*models.BroadcastNotification, 0, len(records))
	s.byRole = make(map[models.OrgRole][]*models.BroadcastNotification)
	s.unread = 0
	for i := range records {
		rec := records[i]
		s.insertLocked(&rec, false)
	}
}

// Prepend inserts one record at the head of its partitions.
func (s *BroadcastStore) Prepend(rec models.BroadcastNotification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(&rec, true)
}

// insertLocked shares one backing record between the flat list and the role
// partition, so a mark-read updates both views at once.
func (s *BroadcastStore) insertLocked(rec *models.BroadcastNotification, front bool) {
	role := rec.Recipient.Role
	if front {
		s.all = append([]*models.BroadcastNotification{rec}, s.all...)
		s.byRole[role] = append([]*models.BroadcastNotification{rec}, s.byRole[role]...)
	} else {
		s.all = append(s.all, rec)
		s.byRole[role] = append(s.byRole[role], rec)
	}
	if !rec.Read {
		s.unread++
	}
}

// MarkRead marks one record read; idempotent, floor at zero.
func (s *BroadcastStore) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.all {
		if rec.ID != id {
			continue
		}
		if !rec.Read {
			rec.Read = true
			if s.unread > 0 {
				s.unread--
			}
		}
		return
	}
}

// MarkAllRead marks every record in every partition read.
func (s *BroadcastStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.all {
		rec.Read = true
	}
	s.unread = 0
}

// SelectRole sets the display filter. Unknown values are ignored, keeping the
// previous filter.
func (s *BroadcastStore) SelectRole(f RoleFilter) {
	switch f {
	case FilterAll, FilterHR, FilterManager, FilterInvigilator:
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = f
}

func (s *BroadcastStore) SelectedRole() RoleFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Visible returns a copy of the records the current filter displays.
func (s *BroadcastStore) Visible() []models.BroadcastNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.all
	if s.selected != FilterAll {
		src = s.byRole[models.OrgRole(s.selected)]
	}
	out := make([]models.BroadcastNotification, 0, len(src))
	for _, rec := range src {
		out = append(out, *rec)
	}
	return out
}

// Breakdown returns the per-role {total, unread} map.
func (s *BroadcastStore) Breakdown() map[models.OrgRole]RoleStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[models.OrgRole]RoleStats, len(s.byRole))
	for role, recs := range s.byRole {
		stats := RoleStats{Total: len(recs)}
		for _, rec := range recs {
			if !rec.Read {
				stats.Unread++
			}
		}
		out[role] = stats
	}
	return out
}

func (s *BroadcastStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

func (s *BroadcastStore) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *BroadcastStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *BroadcastStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

func (s *BroadcastStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
