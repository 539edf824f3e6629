package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Responses is the quiz answer set. It's stored as a JSON string in a TEXT
// column, so it implements driver.Valuer and sql.Scanner.
type Responses struct {
	Industry        Industry     `json:"industry" validate:"required,enum"`
	PreferredFormat EventFormat  `json:"preferredFormat" validate:"required,enum"`
	StartupStage    StartupStage `json:"startupStage,omitempty" validate:"omitempty,enum"`
	Challenge       Challenge    `json:"challenge,omitempty" validate:"omitempty,enum"`
}

func (r Responses) Value() (driver.Value, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("(Responses).Value: %w", err)
	}
	return string(b), nil
}

func (r *Responses) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	case nil:
		return fmt.Errorf("(*Responses).Scan: responses is null")
	default:
		return fmt.Errorf("(*Responses).Scan: unsupported type %T", src)
	}
	if err := json.Unmarshal(raw, r); err != nil {
		return fmt.Errorf("(*Responses).Scan: %w", err)
	}
	return nil
}

type Attendee struct {
	bun.BaseModel `bun:"table:attendees,alias:a"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UserType  UserType  `bun:"user_type,notnull,type:varchar" json:"userType"` // required
	Name      string    `bun:"name,notnull" json:"name"`                       // required
	Email     string    `bun:"email,notnull" json:"email"`                     // required
	Responses Responses `bun:"responses,notnull,type:text" json:"responses"`   // required
	// nil until the attendee is assigned to a group
	GroupID   *int64    `bun:"group_id" json:"groupId"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
}

// InGroup reports whether the attendee is assigned to groupID.
func (a *Attendee) InGroup(groupID int64) bool {
	return a.GroupID != nil && *a.GroupID == groupID
}

// AttendeeInput is the submission body for a new attendee.
type AttendeeInput struct {
	UserType  UserType  `json:"userType" validate:"required,enum"`
	Name      string    `json:"name" validate:"required,notblank"`
	Email     string    `json:"email" validate:"required,email"`
	Responses Responses `json:"responses"`
}

// NewAttendee builds an unsaved record. ID and CreatedAt are set by the store.
func (in AttendeeInput) NewAttendee() Attendee {
	return Attendee{
		UserType:  in.UserType,
		Name:      in.Name,
		Email:     in.Email,
		Responses: in.Responses,
	}
}
