package service

import (
	"context"
	"testing"

	"contracting-cms/internal/model"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/repository"
	"contracting-cms/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		profile permission.Profile
		want    string
	}{
		{"full name wins", permission.Profile{FullName: " Sara Ali ", Name: "sara", Email: "s@x.io"}, "Sara Ali"},
		{"name next", permission.Profile{Name: "sara", Email: "s@x.io"}, "sara"},
		{"email local part", permission.Profile{Email: "eng.omar@company.sa"}, "eng.omar"},
		{"fallback", permission.Profile{}, "User"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.profile))
		})
	}
}

func TestAccountService_ProvisionIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewAccountService(f.deps)

	sess := permission.Session{AuthUserID: "auth-1", Profile: permission.Profile{Email: "omar@company.sa", AvatarURL: "https://cdn/a.png"}}
	first, err := svc.Provision(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "omar", first.DisplayNameEn)
	require.NotNil(t, first.AvatarURL)

	second, err := svc.Provision(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), f.count(t, "accounts", ""))
	assert.Equal(t, int64(1), f.count(t, "audit_logs", "action = ?", model.ActionProvisionAccount))

	_, err = svc.Provision(ctx, permission.Session{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAccountService_RolesGrantPermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	accounts := NewAccountService(f.deps)
	roles := NewRoleService(f.deps)
	gate := permission.NewGate(repository.NewRoleRepository(f.db))

	view := &model.Permission{Key: "projects.view", NameEn: "View projects", NameAr: "عرض المشاريع"}
	edit := &model.Permission{Key: "projects.edit", NameEn: "Edit projects", NameAr: "تعديل المشاريع"}
	create(t, f.db, view, edit)
	role := &model.Role{NameEn: "Editor", NameAr: "محرر"}
	create(t, f.db, role)

	res := roles.SetPermissions(ctx, role.ID, []string{view.ID, edit.ID})
	require.True(t, res.Success, res.Message)

	acct, err := accounts.Provision(ctx, permission.Session{AuthUserID: "auth-2", Profile: permission.Profile{FullName: "Lina"}})
	require.NoError(t, err)

	sess := permission.Session{AuthUserID: "auth-2", AccountID: acct.ID}
	ok, err := gate.HasPermission(ctx, sess, "projects.edit")
	require.NoError(t, err)
	assert.False(t, ok, "no roles yet")

	require.True(t, accounts.SetRoles(ctx, acct.ID, []string{role.ID}).Success)
	ok, err = gate.HasPermission(ctx, sess, "projects.edit")
	require.NoError(t, err)
	assert.True(t, ok)

	res = accounts.SetRoles(ctx, acct.ID, []string{"ghost"})
	assert.ErrorIs(t, res.Err(), ErrInvalidInput)
	got, err := accounts.Get(ctx, acct.ID)
	require.NoError(t, err)
	assert.Len(t, got.Roles, 1, "a failed replacement keeps the old roles")

	res = roles.SetPermissions(ctx, "missing", nil)
	assert.ErrorIs(t, res.Err(), ErrNotFound)
	assert.Equal(t, "Role not found", res.Message)

	require.True(t, accounts.Delete(ctx, acct.ID).Success)
	assert.Equal(t, int64(0), f.count(t, "account_roles", ""))
}

func TestAccountService_UpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewAccountService(f.deps)

	acct, err := svc.Provision(ctx, permission.Session{AuthUserID: "auth-3", Profile: permission.Profile{Name: "khalid"}})
	require.NoError(t, err)

	res := svc.UpdateProfile(ctx, acct.ID, UpdateAccountRequest{DisplayNameEn: "Khalid", DisplayNameAr: "خالد"})
	require.True(t, res.Success, res.Message)

	got, err := svc.Get(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, "خالد", got.DisplayNameAr)

	res = svc.UpdateProfile(ctx, acct.ID, UpdateAccountRequest{})
	assert.ErrorIs(t, res.Err(), ErrInvalidInput)

	res = svc.UpdateProfile(ctx, "missing", UpdateAccountRequest{DisplayNameEn: "x"})
	assert.ErrorIs(t, res.Err(), ErrNotFound)
}

func TestAccountService_DeleteUnderForeignKeys(t *testing.T) {
	f := fixtureFor(t, testutil.NewDBWithForeignKeys(t))
	ctx := context.Background()
	svc := NewAccountService(f.deps)

	admin, err := svc.Provision(ctx, permission.Session{AuthUserID: "auth-admin", Profile: permission.Profile{Email: "admin@company.sa"}})
	require.NoError(t, err)
	other, err := svc.Provision(ctx, permission.Session{AuthUserID: "auth-other", Profile: permission.Profile{Email: "other@company.sa"}})
	require.NoError(t, err)
	adminCtx := permission.WithSession(ctx, permission.Session{AuthUserID: "auth-admin", AccountID: admin.ID})

	res := svc.Delete(adminCtx, admin.ID)
	assert.False(t, res.Success)
	assert.Equal(t, "You cannot delete your own account", res.Message)
	assert.ErrorIs(t, res.Err(), ErrInvalidInput)
	assert.Equal(t, int64(2), f.count(t, "accounts", ""))

	res = svc.Delete(adminCtx, other.ID)
	require.True(t, res.Success, res.Message)
	assert.Equal(t, int64(1), f.count(t, "accounts", ""))
	assert.Equal(t, int64(1), f.count(t, "audit_logs", "action = ? AND account_id = ?", model.ActionDelete, admin.ID))
}
