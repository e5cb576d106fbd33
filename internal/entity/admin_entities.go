// FILE: internal/entity/admin_entities.go
// Admin identity used only by the login endpoint. Full operator
// management lives in the identity subsystem, not here.
package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminUser struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
