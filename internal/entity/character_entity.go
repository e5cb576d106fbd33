// FILE: internal/entity/character_entity.go
// Domain entity for AI characters. The character registry is owned by the
// character platform; the entitlement core only reads it to validate
// references, never mutates it.
package entity

import "time"

type Character struct {
	Id        string // Slug identifier, e.g. "char-aria"
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
