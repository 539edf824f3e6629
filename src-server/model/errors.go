package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrGroupLocked = errors.New("group is locked")
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError is returned when an input violates its schema.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		if d.Field == "" {
			msgs = append(msgs, d.Message)
			continue
		}
		msgs = append(msgs, d.Field+" "+d.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Kind is "attendee" or "group".
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d %s", e.Kind, e.ID, ErrNotFound)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type GroupLockedError struct {
	GroupID int64
}

func (e *GroupLockedError) Error() string {
	return fmt.Sprintf("group %d is locked", e.GroupID)
}

func (e *GroupLockedError) Is(target error) bool {
	return target == ErrGroupLocked
}
