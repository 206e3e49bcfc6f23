package service

import (
	"context"
	"fmt"

	"contracting-cms/internal/model"
	"contracting-cms/internal/repository"
	"contracting-cms/internal/websocket"

	"go.uber.org/zap"
)

type UpdateRolePermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids"`
}

// RoleService covers the permission catalog and role grants. Plain role CRUD
// goes through the catalog's content service.
type RoleService interface {
	ListPermissions(ctx context.Context) ([]model.Permission, error)
	SetPermissions(ctx context.Context, roleID string, permissionIDs []string) ActionResult
}

type roleService struct {
	repo     repository.RoleRepository
	tx       repository.TransactionManager
	audit    AuditRecorder
	notifier Notifier
	log      *zap.Logger
}

func NewRoleService(deps Deps) RoleService {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &roleService{
		repo:     repository.NewRoleRepository(deps.DB),
		tx:       deps.Tx,
		audit:    deps.Audit,
		notifier: deps.Notifier,
		log:      log.With(zap.String("entity", "roles")),
	}
}

func (s *roleService) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		s.log.Error("failed to list permissions", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch permissions: %w", err)
	}
	return perms, nil
}

// SetPermissions makes permissionIDs the role's complete grant set.
func (s *roleService) SetPermissions(ctx context.Context, roleID string, permissionIDs []string) ActionResult {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		role, err := s.repo.FindByIDWithPermissions(txCtx, roleID)
		if err != nil {
			return err
		}
		if err := s.repo.ReplacePermissions(txCtx, role, permissionIDs); err != nil {
			return err
		}
		if s.audit == nil {
			return nil
		}
		return s.audit.Record(txCtx, model.ActionReplacePerms, "roles", roleID, map[string]any{"permission_ids": permissionIDs})
	})
	if err != nil {
		return failure(s.log, "Role", "update permissions of", roleID, err)
	}
	if s.notifier != nil {
		s.notifier.Publish(ctx, websocket.Changed("roles", "update", roleID))
	}
	return succeeded("Role permissions updated", roleID)
}
