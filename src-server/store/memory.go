package store

import (
	"context"
	"sync"
	"time"

	"huddle/src-server/model"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps everything in process. All reads and writes go through mu,
// ids come from per-kind counters starting at 1.
type MemoryStore struct {
	mu sync.RWMutex

	attendees     map[int64]model.Attendee
	attendeeOrder []int64
	groups        map[int64]model.Group
	groupOrder    []int64

	nextAttendeeID int64
	nextGroupID    int64

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attendees:      make(map[int64]model.Attendee),
		groups:         make(map[int64]model.Group),
		nextAttendeeID: 1,
		nextGroupID:    1,
		now:            func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (s *MemoryStore) CreateAttendee(ctx context.Context, in model.AttendeeInput) (model.Attendee, error) {
	if err := model.ValidateAttendeeInput(in); err != nil {
		return model.Attendee{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := in.NewAttendee()
	a.ID = s.nextAttendeeID
	a.CreatedAt = s.now()
	s.nextAttendeeID++
	s.attendees[a.ID] = a
	s.attendeeOrder = append(s.attendeeOrder, a.ID)
	return copyAttendee(a), nil
}

func (s *MemoryStore) ListAttendees(ctx context.Context) ([]model.Attendee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Attendee, 0, len(s.attendeeOrder))
	for _, id := range s.attendeeOrder {
		out = append(out, copyAttendee(s.attendees[id]))
	}
	return out, nil
}

func (s *MemoryStore) GetAttendee(ctx context.Context, id int64) (model.Attendee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.attendees[id]
	if !ok {
		return model.Attendee{}, &model.NotFoundError{Kind: "attendee", ID: id}
	}
	return copyAttendee(a), nil
}

func (s *MemoryStore) CreateGroup(ctx context.Context, in model.GroupInput) (model.Group, error) {
	if err := model.ValidateGroupInput(in); err != nil {
		return model.Group{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g := in.NewGroup()
	g.ID = s.nextGroupID
	s.nextGroupID++
	s.groups[g.ID] = g
	s.groupOrder = append(s.groupOrder, g.ID)
	return g, nil
}

func (s *MemoryStore) ListGroups(ctx context.Context) ([]model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Group, 0, len(s.groupOrder))
	for _, id := range s.groupOrder {
		out = append(out, s.groups[id])
	}
	return out, nil
}

func (s *MemoryStore) GetGroup(ctx context.Context, id int64) (model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[id]
	if !ok {
		return model.Group{}, &model.NotFoundError{Kind: "group", ID: id}
	}
	return g, nil
}

func (s *MemoryStore) LockGroup(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[id]
	if !ok {
		return &model.NotFoundError{Kind: "group", ID: id}
	}
	g.Locked = true
	s.groups[id] = g
	return nil
}

func (s *MemoryStore) AssignAttendee(ctx context.Context, attendeeID, groupID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attendees[attendeeID]
	if !ok {
		return &model.NotFoundError{Kind: "attendee", ID: attendeeID}
	}
	if _, ok := s.groups[groupID]; !ok {
		return &model.NotFoundError{Kind: "group", ID: groupID}
	}
	gid := groupID
	a.GroupID = &gid
	s.attendees[attendeeID] = a
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// callers must not be able to reach the stored GroupID pointer
func copyAttendee(a model.Attendee) model.Attendee {
	if a.GroupID != nil {
		gid := *a.GroupID
		a.GroupID = &gid
	}
	return a
}
