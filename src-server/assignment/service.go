// Package assignment applies suggested groups to the store and guards group
// membership: once a group is locked nobody moves in or out of it.
package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"huddle/src-server/grouping"
	"huddle/src-server/model"
	"huddle/src-server/store"
)

// Notifier is told about a group the first time it gets locked.
type Notifier interface {
	GroupLocked(ctx context.Context, group model.Group, members []model.Attendee) error
}

// Service serializes its own check-then-write sequences through mu, so a lock
// can't slip between an assignment's locked check and its write. Writes that
// bypass the Service (straight to the store) are not covered.
type Service struct {
	mu       sync.Mutex
	store    store.Store
	notifier Notifier
}

// notifier may be nil
func NewService(s store.Store, notifier Notifier) *Service {
	return &Service{
		store:    s,
		notifier: notifier,
	}
}

// Suggestion is a candidate group plus the attendees of the chunk it came from.
// Nothing here is persisted.
type Suggestion struct {
	Name        string            `json:"name"`
	Format      model.EventFormat `json:"format"`
	Locked      bool              `json:"locked"`
	AttendeeIDs []int64           `json:"attendeeIds"`
}

func (s *Service) Preview(ctx context.Context) ([]Suggestion, error) {
	attendees, err := s.store.ListAttendees(ctx)
	if err != nil {
		return nil, fmt.Errorf("(*Service).Preview: %w", err)
	}
	chunks := grouping.Partition(attendees)
	out := make([]Suggestion, len(chunks))
	for i, c := range chunks {
		g := c.Group()
		out[i] = Suggestion{
			Name:        g.Name,
			Format:      g.Format,
			Locked:      g.Locked,
			AttendeeIDs: c.AttendeeIDs(),
		}
	}
	return out, nil
}

// Apply creates one group per suggested chunk, in suggestion order. With
// assign set, each chunk's attendees are moved into the group made from it,
// except attendees sitting in a locked group.
func (s *Service) Apply(ctx context.Context, assign bool) ([]model.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attendees, err := s.store.ListAttendees(ctx)
	if err != nil {
		return nil, fmt.Errorf("(*Service).Apply: %w", err)
	}
	existing, err := s.store.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("(*Service).Apply: %w", err)
	}
	locked := make(map[int64]bool, len(existing))
	for _, g := range existing {
		locked[g.ID] = g.Locked
	}

	chunks := grouping.Partition(attendees)
	created := make([]model.Group, 0, len(chunks))
	for _, c := range chunks {
		candidate := c.Group()
		g, err := s.store.CreateGroup(ctx, model.GroupInput{
			Name:   candidate.Name,
			Format: candidate.Format,
		})
		if err != nil {
			return created, fmt.Errorf("(*Service).Apply: %w", err)
		}
		created = append(created, g)

		if !assign {
			continue
		}
		for _, a := range c.Attendees {
			if a.GroupID != nil && locked[*a.GroupID] {
				slog.Debug("attendee is in a locked group, skip", "attendee_id", a.ID, "group_id", *a.GroupID)
				continue
			}
			if err := s.store.AssignAttendee(ctx, a.ID, g.ID); err != nil {
				return created, fmt.Errorf("(*Service).Apply: %w", err)
			}
		}
	}

	slog.Info("applied group suggestions", "groups", len(created), "assign", assign)
	return created, nil
}

// Assign moves an attendee into a group. Unknown ids give *model.NotFoundError,
// a locked target or a locked current group gives *model.GroupLockedError.
func (s *Service) Assign(ctx context.Context, groupID, attendeeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.store.GetAttendee(ctx, attendeeID)
	if err != nil {
		return err
	}
	g, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if g.Locked {
		return &model.GroupLockedError{GroupID: g.ID}
	}
	if a.GroupID != nil && *a.GroupID != groupID {
		current, err := s.store.GetGroup(ctx, *a.GroupID)
		switch {
		case err == nil && current.Locked:
			return &model.GroupLockedError{GroupID: current.ID}
		case err != nil:
			// dangling reference, nothing to protect
			slog.Warn("attendee points at a missing group", "attendee_id", a.ID, "group_id", *a.GroupID, "error", err)
		}
	}
	return s.store.AssignAttendee(ctx, attendeeID, groupID)
}

// Lock freezes a group. Locking twice is fine; only the first lock notifies,
// even when several lock requests race.
func (s *Service) Lock(ctx context.Context, groupID int64) (model.Group, error) {
	g, first, err := s.lock(ctx, groupID)
	if err != nil || !first || s.notifier == nil {
		return g, err
	}

	members, err := s.Members(ctx, groupID)
	if err != nil {
		slog.Warn("can't load members for lock notification", "group_id", groupID, "error", err)
		return g, nil
	}
	if err := s.notifier.GroupLocked(ctx, g, members); err != nil {
		slog.Warn("can't send lock notification", "group_id", groupID, "error", err)
	}
	return g, nil
}

// lock reports whether this call is the one that flipped the flag.
func (s *Service) lock(ctx context.Context, groupID int64) (model.Group, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return model.Group{}, false, err
	}
	if g.Locked {
		return g, false, nil
	}
	if err := s.store.LockGroup(ctx, groupID); err != nil {
		return model.Group{}, false, err
	}
	g.Locked = true
	return g, true, nil
}

// Members are derived at query time from Attendee.GroupID.
func (s *Service) Members(ctx context.Context, groupID int64) ([]model.Attendee, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	attendees, err := s.store.ListAttendees(ctx)
	if err != nil {
		return nil, fmt.Errorf("(*Service).Members: %w", err)
	}
	members := make([]model.Attendee, 0)
	for _, a := range attendees {
		if a.InGroup(groupID) {
			members = append(members, a)
		}
	}
	return members, nil
}
