package seed

import (
	"context"
	"strings"
	"testing"

	"contracting-cms/internal/model"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/repository"
	"contracting-cms/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func count(t *testing.T, db *gorm.DB, table string, where ...any) int64 {
	t.Helper()
	var n int64
	q := db.Table(table)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestPermissions_KeysAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Permissions() {
		assert.False(t, seen[p.Key], "duplicate key %s", p.Key)
		seen[p.Key] = true
	}
	assert.Len(t, seen, 40)
}

func TestGrants(t *testing.T) {
	grants := Grants(Permissions())

	assert.Len(t, grants[RoleAdmin], 40)
	assert.Len(t, grants[RoleEditor], 26)
	assert.Len(t, grants[RoleAuthor], 24)
	assert.Len(t, grants[RoleViewer], 11)

	assert.Contains(t, grants[RoleEditor], "perm_accounts_view")
	assert.NotContains(t, grants[RoleEditor], "perm_projects_delete")
	assert.NotContains(t, grants[RoleAuthor], "perm_settings_view")
	assert.Contains(t, grants[RoleViewer], "perm_settings_view")
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	s := New(db, zap.NewNop())

	require.NoError(t, s.Run(ctx))
	require.NoError(t, s.Run(ctx))

	assert.Equal(t, int64(40), count(t, db, "permissions"))
	assert.Equal(t, int64(4), count(t, db, "roles"))
	assert.Equal(t, int64(40+26+24+11), count(t, db, "role_permissions"))
	assert.Equal(t, int64(5), count(t, db, "projects"))
	assert.Equal(t, int64(2), count(t, db, "main_services"))
	assert.Equal(t, int64(5), count(t, db, "contact_info"))
	assert.Equal(t, int64(5), count(t, db, "social_media_accounts"))
	assert.Equal(t, int64(4), count(t, db, "company_values"))
	assert.Equal(t, int64(1), count(t, db, "visions"))

	var project model.Project
	require.NoError(t, db.First(&project, "slug_en = ?", "al-faisaliah-tower-renovation").Error)
	require.NotNil(t, project.ProjectStatusID)
	assert.Equal(t, "status_completed", *project.ProjectStatusID)
}

func TestSeeder_GrantsThroughGate(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	require.NoError(t, New(db, zap.NewNop()).Run(ctx))

	accounts := repository.NewAccountRepository(db)
	admin, err := accounts.Ensure(ctx, &model.Account{AuthUserID: "auth-admin"})
	require.NoError(t, err)
	require.NoError(t, accounts.ReplaceRoles(ctx, admin, []string{RoleAdmin}))
	viewer, err := accounts.Ensure(ctx, &model.Account{AuthUserID: "auth-viewer"})
	require.NoError(t, err)
	require.NoError(t, accounts.ReplaceRoles(ctx, viewer, []string{RoleViewer}))

	gate := permission.NewGate(repository.NewRoleRepository(db))
	adminSession := permission.Session{AuthUserID: "auth-admin", AccountID: admin.ID}
	for _, p := range Permissions() {
		ok, err := gate.HasPermission(ctx, adminSession, p.Key)
		require.NoError(t, err)
		assert.True(t, ok, p.Key)
	}

	viewerSession := permission.Session{AuthUserID: "auth-viewer", AccountID: viewer.ID}
	for _, p := range Permissions() {
		ok, err := gate.HasPermission(ctx, viewerSession, p.Key)
		require.NoError(t, err)
		assert.Equal(t, strings.HasSuffix(p.Key, ".view"), ok, p.Key)
	}
}
