package store

import (
	"context"

	"huddle/src-server/model"
)

// Store persists attendees and groups. Inputs are validated by the store,
// failures come back as *model.ValidationError or *model.NotFoundError,
// anything else is a storage failure.
type Store interface {
	// CreateAttendee assigns the next id, leaves GroupID nil and stamps CreatedAt.
	CreateAttendee(ctx context.Context, in model.AttendeeInput) (model.Attendee, error)
	// ListAttendees returns attendees in insertion order.
	ListAttendees(ctx context.Context) ([]model.Attendee, error)
	GetAttendee(ctx context.Context, id int64) (model.Attendee, error)

	CreateGroup(ctx context.Context, in model.GroupInput) (model.Group, error)
	ListGroups(ctx context.Context) ([]model.Group, error)
	GetGroup(ctx context.Context, id int64) (model.Group, error)
	// LockGroup is idempotent.
	LockGroup(ctx context.Context, id int64) error
	// AssignAttendee doesn't look at the group's locked flag.
	AssignAttendee(ctx context.Context, attendeeID, groupID int64) error

	Ping(ctx context.Context) error
	Close() error
}
