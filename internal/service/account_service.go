package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contracting-cms/internal/model"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/repository"
	"contracting-cms/internal/websocket"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UpdateAccountRequest struct {
	DisplayNameEn string  `json:"display_name_en" binding:"required"`
	DisplayNameAr string  `json:"display_name_ar"`
	AvatarURL     *string `json:"avatar_url"`
}

type UpdateAccountRolesRequest struct {
	RoleIDs []string `json:"role_ids"`
}

type AccountService interface {
	List(ctx context.Context) ([]model.Account, error)
	Get(ctx context.Context, id string) (*model.Account, error)
	// Provision returns the account bound to the session's auth user,
	// creating it on first login.
	Provision(ctx context.Context, s permission.Session) (*model.Account, error)
	UpdateProfile(ctx context.Context, id string, req UpdateAccountRequest) ActionResult
	SetRoles(ctx context.Context, id string, roleIDs []string) ActionResult
	Delete(ctx context.Context, id string) ActionResult
}

type accountService struct {
	repo     repository.AccountRepository
	tx       repository.TransactionManager
	audit    AuditRecorder
	notifier Notifier
	log      *zap.Logger
}

func NewAccountService(deps Deps) AccountService {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &accountService{
		repo:     repository.NewAccountRepository(deps.DB),
		tx:       deps.Tx,
		audit:    deps.Audit,
		notifier: deps.Notifier,
		log:      log.With(zap.String("entity", "accounts")),
	}
}

func (s *accountService) List(ctx context.Context) ([]model.Account, error) {
	accounts, err := s.repo.ListWithRoles(ctx)
	if err != nil {
		s.log.Error("failed to list accounts", zap.Error(err))
		return nil, translate(err)
	}
	return accounts, nil
}

func (s *accountService) Get(ctx context.Context, id string) (*model.Account, error) {
	account, err := s.repo.FindByIDWithRoles(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return account, nil
}

func (s *accountService) Provision(ctx context.Context, sess permission.Session) (*model.Account, error) {
	if !sess.Authenticated() {
		return nil, fmt.Errorf("%w: no authenticated user", ErrInvalidInput)
	}
	existing, err := s.repo.FindByAuthUserID(ctx, sess.AuthUserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Error("failed to look up account", zap.String("auth_user_id", sess.AuthUserID), zap.Error(err))
		return nil, err
	}

	name := DisplayName(sess.Profile)
	draft := &model.Account{
		AuthUserID:    sess.AuthUserID,
		DisplayNameEn: name,
		DisplayNameAr: name,
	}
	if sess.Profile.AvatarURL != "" {
		avatar := sess.Profile.AvatarURL
		draft.AvatarURL = &avatar
	}

	var account *model.Account
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if account, err = s.repo.Ensure(txCtx, draft); err != nil {
			return err
		}
		if s.audit == nil || account.ID != draft.ID {
			return nil
		}
		return s.audit.Record(txCtx, model.ActionProvisionAccount, "accounts", account.ID, map[string]string{"auth_user_id": sess.AuthUserID})
	})
	if err != nil {
		s.log.Error("failed to provision account", zap.String("auth_user_id", sess.AuthUserID), zap.Error(err))
		return nil, err
	}
	s.log.Info("account provisioned", zap.String("account_id", account.ID))
	return account, nil
}

// DisplayName picks the best human name the identity provider gave us.
func DisplayName(p permission.Profile) string {
	switch {
	case strings.TrimSpace(p.FullName) != "":
		return strings.TrimSpace(p.FullName)
	case strings.TrimSpace(p.Name) != "":
		return strings.TrimSpace(p.Name)
	}
	if local, _, ok := strings.Cut(p.Email, "@"); ok && local != "" {
		return local
	}
	return "User"
}

func (s *accountService) UpdateProfile(ctx context.Context, id string, req UpdateAccountRequest) ActionResult {
	if err := validateEntity(&req); err != nil {
		return failure(s.log, "Account", "update", id, err)
	}
	account := &model.Account{
		DisplayNameEn: req.DisplayNameEn,
		DisplayNameAr: req.DisplayNameAr,
		AvatarURL:     req.AvatarURL,
	}
	account.ID = id
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.UpdateProfile(txCtx, account); err != nil {
			return err
		}
		return s.record(txCtx, model.ActionUpdate, id, req)
	})
	if err != nil {
		return failure(s.log, "Account", "update", id, err)
	}
	s.publish(ctx, "update", id)
	return succeeded("Account updated", id)
}

// SetRoles makes roleIDs the account's complete role set.
func (s *accountService) SetRoles(ctx context.Context, id string, roleIDs []string) ActionResult {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		account, err := s.repo.FindByIDWithRoles(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.repo.ReplaceRoles(txCtx, account, roleIDs); err != nil {
			return err
		}
		return s.record(txCtx, model.ActionReplaceRoles, id, map[string]any{"role_ids": roleIDs})
	})
	if err != nil {
		return failure(s.log, "Account", "update roles of", id, err)
	}
	s.publish(ctx, "update", id)
	return succeeded("Account roles updated", id)
}

// Delete removes an account. Callers cannot delete their own account: the
// audit entry for the delete is attributed to them.
func (s *accountService) Delete(ctx context.Context, id string) ActionResult {
	if id != "" && permission.SessionFrom(ctx).AccountID == id {
		return failed("You cannot delete your own account", fmt.Errorf("%w: account %s is the caller", ErrInvalidInput, id))
	}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Delete(txCtx, id); err != nil {
			return err
		}
		return s.record(txCtx, model.ActionDelete, id, nil)
	})
	if err != nil {
		return failure(s.log, "Account", "delete", id, err)
	}
	s.publish(ctx, "delete", id)
	return succeeded("Account deleted", "")
}

func (s *accountService) record(ctx context.Context, action, id string, details any) error {
	if s.audit == nil {
		return nil
	}
	return s.audit.Record(ctx, action, "accounts", id, details)
}

func (s *accountService) publish(ctx context.Context, action, id string) {
	if s.notifier != nil {
		s.notifier.Publish(ctx, websocket.Changed("accounts", action, id))
	}
}
