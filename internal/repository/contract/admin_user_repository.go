// FILE: internal/repository/contract/admin_user_repository.go
// Repository interface for admin login identities
package contract

import (
	"context"

	"ai-character-admin-be/internal/entity"
)

type AdminUserRepository interface {
	Create(ctx context.Context, user *entity.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}
