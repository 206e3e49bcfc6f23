package repository

import (
	"context"
	"testing"

	"contracting-cms/internal/model"
	"contracting-cms/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRepository_PermissionKeysForAccount(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	roles := NewRoleRepository(db)
	accounts := NewAccountRepository(db)

	perms := []*model.Permission{
		{Base: model.Base{ID: "p1"}, Key: "projects.view", NameEn: "View", NameAr: "عرض"},
		{Base: model.Base{ID: "p2"}, Key: "projects.edit", NameEn: "Edit", NameAr: "تعديل"},
		{Base: model.Base{ID: "p3"}, Key: "faqs.view", NameEn: "View", NameAr: "عرض"},
	}
	for _, p := range perms {
		require.NoError(t, db.Create(p).Error)
	}
	viewer := &model.Role{Base: model.Base{ID: "r1"}, NameEn: "Viewer", NameAr: "مشاهد"}
	editor := &model.Role{Base: model.Base{ID: "r2"}, NameEn: "Editor", NameAr: "محرر"}
	require.NoError(t, db.Omit("Permissions").Create(viewer).Error)
	require.NoError(t, db.Omit("Permissions").Create(editor).Error)
	require.NoError(t, roles.ReplacePermissions(ctx, viewer, []string{"p1", "p3"}))
	require.NoError(t, roles.ReplacePermissions(ctx, editor, []string{"p1", "p2"}))

	acc, err := accounts.Ensure(ctx, &model.Account{AuthUserID: "auth-1"})
	require.NoError(t, err)

	keys, err := roles.PermissionKeysForAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, accounts.ReplaceRoles(ctx, acc, []string{"r1", "r2"}))
	keys, err = roles.PermissionKeysForAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"faqs.view", "projects.edit", "projects.view"}, keys)

	require.NoError(t, accounts.ReplaceRoles(ctx, acc, []string{"r1"}))
	keys, err = roles.PermissionKeysForAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"faqs.view", "projects.view"}, keys)

	role, err := roles.FindByIDWithPermissions(ctx, "r2")
	require.NoError(t, err)
	assert.Len(t, role.Permissions, 2)
}

func TestAccountRepository_EnsureIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	accounts := NewAccountRepository(db)

	first, err := accounts.Ensure(ctx, &model.Account{AuthUserID: "auth-7", DisplayNameEn: "Sara"})
	require.NoError(t, err)
	second, err := accounts.Ensure(ctx, &model.Account{AuthUserID: "auth-7", DisplayNameEn: "Other"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Sara", second.DisplayNameEn)
	assert.EqualValues(t, 1, countRows(t, db, "accounts", "auth_user_id = ?", "auth-7"))
}
