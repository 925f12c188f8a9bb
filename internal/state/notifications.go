package state

import (
	"sync"

	"github.com/avolkov/hirelink/internal/models"
)

// NotificationStore holds one audience's ordered notification list (newest
// first; callers supply records in display order) and its derived unread
// count. The count always equals the number of records with Read == false;
// every mutation re-establishes that inside its own critical section.
type NotificationStore struct {
	mu      sync.Mutex
	records []models.Notification
	unread  int
	loading bool
	errMsg  string
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{}
}

// ReplaceAll overwrites the full list, e.g. after a server sync. Last writer
// wins when racing a local mark-read.
func (s *NotificationStore) ReplaceAll(records []models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]models.Notification(nil), records...)
	s.unread = 0
	for _, n := range s.records {
		if !n.Read {
			s.unread++
		}
	}
}

// Prepend inserts a record at the head of the list.
func (s *NotificationStore) Prepend(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]models.Notification{n}, s.records...)
	if !n.Read {
		s.unread++
	}
}

// MarkRead marks one record read. Unknown ids and already-read records are
// no-ops, so the operation is idempotent.
func (s *NotificationStore) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if !s.records[i].Read {
			s.records[i].Read = true
			if s.unread > 0 {
				s.unread--
			}
		}
		return
	}
}

// MarkAllRead marks every record read and zeroes the count unconditionally.
func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		s.records[i].Read = true
	}
	s.unread = 0
}

// SetLoading flips the sync-in-flight flag. Orthogonal to the count invariant.
func (s *NotificationStore) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// SetError records the last sync error message; empty clears it.
func (s *NotificationStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

// Records returns a copy of the list in display order.
func (s *NotificationStore) Records() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.records...)
}

func (s *NotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

func (s *NotificationStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *NotificationStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
