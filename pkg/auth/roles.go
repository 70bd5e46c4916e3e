package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/craftshop/pkg/models"
	"gorm.io/gorm"
)

// RoleStore reads the user_roles table. A readable "admin" row is trusted as
// authoritative here; the remote store's policy rules are the real gate.
type RoleStore struct {
	db *gorm.DB
}

func NewRoleStore(db *gorm.DB) *RoleStore {
	return &RoleStore{db: db}
}

func (r *RoleStore) RoleFor(ctx context.Context, userID string) (string, error) {
	var row models.UserRole
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load role: %w", err)
	}
	return row.Role, nil
}

func (r *RoleStore) IsAdmin(ctx context.Context, userID string) (bool, error) {
	role, err := r.RoleFor(ctx, userID)
	if err != nil {
		return false, err
	}
	return role == "admin", nil
}
