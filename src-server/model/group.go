package model

import "github.com/uptrace/bun"

// Group membership isn't stored here: members are the attendees whose
// GroupID points at the group.
type Group struct {
	bun.BaseModel `bun:"table:groups,alias:g"`

	ID     int64       `bun:"id,pk,autoincrement" json:"id"`
	Name   string      `bun:"name,notnull" json:"name"`                     // required
	Format EventFormat `bun:"format,notnull,type:varchar" json:"format"`    // required
	Locked bool        `bun:"locked,notnull,default:false" json:"locked"`
}

type GroupInput struct {
	Name   string      `json:"name" validate:"required,notblank"`
	Format EventFormat `json:"format" validate:"required,enum"`
}

func (in GroupInput) NewGroup() Group {
	return Group{
		Name:   in.Name,
		Format: in.Format,
	}
}
