package repository

import (
	"context"

	"contracting-cms/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	ListWithPermissions(ctx context.Context) ([]model.Role, error)
	FindByIDWithPermissions(ctx context.Context, id string) (*model.Role, error)
	ListPermissions(ctx context.Context) ([]model.Permission, error)
	ReplacePermissions(ctx context.Context, role *model.Role, permissionIDs []string) error
	PermissionKeysForAccount(ctx context.Context, accountID string) ([]string, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) ListWithPermissions(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := GetDB(ctx, r.db).Preload("Permissions").Order("created_at asc").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) FindByIDWithPermissions(ctx context.Context, id string) (*model.Role, error) {
	var role model.Role
	if err := GetDB(ctx, r.db).Preload("Permissions").First(&role, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	var perms []model.Permission
	if err := GetDB(ctx, r.db).Order(`"key" asc`).Find(&perms).Error; err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *roleRepository) ReplacePermissions(ctx context.Context, role *model.Role, permissionIDs []string) error {
	return ReplaceRelated[model.Permission](ctx, r.db, role, "Permissions", permissionIDs)
}

// PermissionKeysForAccount returns the union of permission keys across every
// role the account holds, read straight from the store on each call.
func (r *roleRepository) PermissionKeysForAccount(ctx context.Context, accountID string) ([]string, error) {
	keys := []string{}
	err := GetDB(ctx, r.db).Raw(`
		SELECT DISTINCT p."key" FROM permissions p
		INNER JOIN role_permissions rp ON rp.permission_id = p.id
		INNER JOIN account_roles ar ON ar.role_id = rp.role_id
		WHERE ar.account_id = ?
		ORDER BY p."key"
	`, accountID).Scan(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
