package portal

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryStore is a thread-safe in-memory implementation of the Store
// interface, seeded with the same demo data the portal UI expects.
type InMemoryStore struct {
	mu            sync.RWMutex
	residents     []Resident
	visitors      []Visitor
	accessLogs    []AccessLog
	announcements []Announcement
}

func NewSeededStore() *InMemoryStore {
	now := time.Now()
	return &InMemoryStore{
		residents: []Resident{
			{ID: "r1", Name: "John Doe", Unit: "A-101", Phone: "+1 555-1111"},
			{ID: "r2", Name: "Jane Smith", Unit: "B-203", Phone: "+1 555-2222"},
			{ID: "r3", Name: "Ravi Kumar", Unit: "C-307"},
		},
		visitors: []Visitor{
			{ID: "v1", Name: "Courier", Code: "GATE-4821", ValidTill: now.Add(2 * time.Hour), Status: VisitorActive},
		},
		accessLogs: []AccessLog{
			{ID: "l1", Gate: "Main Gate", Person: "John Doe", Direction: "in", At: now.Add(-30 * time.Minute)},
			{ID: "l2", Gate: "Main Gate", Person: "Courier", Direction: "out", At: now.Add(-10 * time.Minute)},
		},
		announcements: []Announcement{
			{ID: "a1", Title: "Water maintenance", Body: "Supply interrupted Saturday 10:00-12:00.", PostedAt: now.Add(-24 * time.Hour)},
		},
	}
}

func (s *InMemoryStore) ListResidents() []Resident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Resident, len(s.residents))
	copy(out, s.residents)
	return out
}

func (s *InMemoryStore) ListVisitors() []Visitor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Visitor, len(s.visitors))
	copy(out, s.visitors)
	return out
}

func (s *InMemoryStore) AddVisitor(v Visitor) (Visitor, error) {
	if v.Name == "" {
		return Visitor{}, errors.New("visitor name is required")
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = VisitorActive
	}
	if v.ValidTill.IsZero() {
		v.ValidTill = time.Now().Add(2 * time.Hour)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.visitors = append(s.visitors, v)
	return v, nil
}

func (s *InMemoryStore) ListAccessLogs() []AccessLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]AccessLog, len(s.accessLogs))
	copy(out, s.accessLogs)
	return out
}

func (s *InMemoryStore) ListAnnouncements() []Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Announcement, len(s.announcements))
	copy(out, s.announcements)
	return out
}
