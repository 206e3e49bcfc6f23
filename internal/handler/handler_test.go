package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	_ "contracting-cms/api/swagger"
	"contracting-cms/internal/middleware"
	"contracting-cms/internal/model"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/repository"
	"contracting-cms/internal/service"
	"contracting-cms/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testSecret = []byte("handler-test-secret")

type apiFixture struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)

	deps := service.Deps{
		DB:    db,
		Tx:    repository.NewTransactionManager(db),
		Audit: service.NewAuditService(repository.NewAuditRepository(db)),
		Log:   zap.NewNop(),
	}
	gate := permission.NewGate(repository.NewRoleRepository(db))

	r := gin.New()
	r.Use(middleware.Authenticate(testSecret, repository.NewAccountRepository(db), zap.NewNop()))
	Register(r.Group(""), Services{
		Catalog:  service.NewCatalog(deps),
		Roles:    service.NewRoleService(deps),
		Accounts: service.NewAccountService(deps),
		Search:   service.NewSearchService(repository.NewSearchRepository(db), nil),
		Audit:    service.NewAuditService(repository.NewAuditRepository(db)),
		Stats:    service.NewStatisticsService(repository.NewStatisticsRepository(db)),
	}, gate)

	return &apiFixture{t: t, db: db, router: r}
}

// user creates an account holding exactly keys and returns a token for it.
func (f *apiFixture) user(sub string, keys ...string) string {
	f.t.Helper()
	role := &model.Role{NameEn: sub + " role", NameAr: "دور"}
	require.NoError(f.t, f.db.Create(role).Error)
	for _, k := range keys {
		p := model.Permission{Key: k, NameEn: k, NameAr: k}
		require.NoError(f.t, f.db.Where(model.Permission{Key: k}).FirstOrCreate(&p).Error)
		require.NoError(f.t, f.db.Model(role).Association("Permissions").Append(&p))
	}
	acct := &model.Account{AuthUserID: sub, DisplayNameEn: sub}
	require.NoError(f.t, f.db.Create(acct).Error)
	require.NoError(f.t, f.db.Model(acct).Association("Roles").Append(role))
	return f.token(sub)
}

func (f *apiFixture) token(sub string) string {
	f.t.Helper()
	claims := middleware.IdentityClaims{
		Email: sub + "@company.sa",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(f.t, err)
	return tok
}

func (f *apiFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	f.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestProjects_PermissionGate(t *testing.T) {
	api := newAPI(t)
	viewer := api.user("viewer", "projects.view")
	editor := api.user("editor", "projects.view", "projects.create", "projects.edit")
	body := `{"title_en":"Harbor Tower","title_ar":"برج الميناء"}`

	w := api.do(http.MethodPost, "/api/projects", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/projects", viewer, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "projects.create")

	w = api.do(http.MethodPost, "/api/projects", editor, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[service.ActionResult](t, w)
	assert.True(t, created.Success)
	assert.Equal(t, "Project created", created.Message)

	w = api.do(http.MethodPost, "/api/projects", editor, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodDelete, "/api/projects/"+created.ID, editor, "")
	assert.Equal(t, http.StatusForbidden, w.Code, "editors cannot delete")

	w = api.do(http.MethodGet, "/api/projects/"+created.ID, viewer, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug_en":"harbor-tower"`)
}

func TestProjects_Errors(t *testing.T) {
	api := newAPI(t)
	admin := api.user("admin", "projects.view", "projects.create", "projects.edit", "projects.delete")

	w := api.do(http.MethodPost, "/api/projects", admin, `{"title_ar":"برج"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decode[service.ActionResult](t, w)
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid Project: title_en is required", res.Message)

	w = api.do(http.MethodPost, "/api/projects", admin, `{"title_en":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request payload")

	w = api.do(http.MethodPut, "/api/projects/missing", admin, `{"title_en":"x","title_ar":"س"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/projects/missing", admin, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)

	w = api.do(http.MethodDelete, "/api/projects/missing", admin, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicRoutes(t *testing.T) {
	api := newAPI(t)
	editor := api.user("editor", "articles.create")

	w := api.do(http.MethodPost, "/api/articles", editor,
		`{"title_en":"Pouring Concrete in Summer","title_ar":"صب الخرسانة في الصيف","rich_content":{"content_en":"<p>x</p>","content_ar":"<p>س</p>"}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/public/articles/pouring-concrete-in-summer", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"content_en"`)

	w = api.do(http.MethodGet, "/api/public/articles/"+url.PathEscape("صب-الخرسانة-في-الصيف")+"?locale=ar", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/api/public/articles/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/articles", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "admin listing stays gated")

	w = api.do(http.MethodGet, "/api/search?q=concrete&locale=en", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[service.SearchResponse](t, w)
	require.Len(t, found.Results, 1)
	assert.Equal(t, "/en/blog/pouring-concrete-in-summer", found.Results[0].Href)
}

func TestMe_ProvisionsAccount(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodGet, "/api/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodGet, "/api/me", api.token("first-login"), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"display_name_en":"first-login"`)
	assert.Contains(t, w.Body.String(), `"permissions":[]`)

	viewer := api.user("viewer", "projects.view")
	w = api.do(http.MethodGet, "/api/me", viewer, "")
	assert.Contains(t, w.Body.String(), `"permissions":["projects.view"]`)
}

func TestRolesAndAccounts(t *testing.T) {
	api := newAPI(t)
	admin := api.user("admin", "roles.view", "roles.manage", "accounts.view", "settings.view")
	api.user("target")

	w := api.do(http.MethodGet, "/api/permissions", admin, "")
	require.Equal(t, http.StatusOK, w.Code)

	var perm model.Permission
	require.NoError(t, api.db.Where(&model.Permission{Key: "roles.view"}).First(&perm).Error)

	w = api.do(http.MethodPost, "/api/roles", admin, `{"name_en":"Auditor","name_ar":"مدقق","permission_ids":["`+perm.ID+`"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	role := decode[service.ActionResult](t, w)

	var target model.Account
	require.NoError(t, api.db.Where("auth_user_id = ?", "target").First(&target).Error)

	w = api.do(http.MethodPut, "/api/accounts/"+target.ID+"/roles", admin, `{"role_ids":["`+role.ID+`"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/permissions", api.token("target"), "")
	assert.Equal(t, http.StatusOK, w.Code, "the new grant applies on the next request")

	w = api.do(http.MethodPut, "/api/roles/"+role.ID+"/permissions", admin, `{"permission_ids":["ghost"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/audit-logs?limit=1", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_pages":2`)
}

func TestStatistics(t *testing.T) {
	api := newAPI(t)
	editor := api.user("stats-editor", "projects.create")
	admin := api.user("stats-admin", "settings.view")

	w := api.do(http.MethodPost, "/api/projects", editor, `{"title_en":"Harbor Tower","title_ar":"برج الميناء"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(http.MethodGet, "/api/statistics", editor, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodGet, "/api/statistics?start_date=yesterday", admin, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	start := url.QueryEscape(time.Now().Add(-time.Hour).Format(time.RFC3339))
	end := url.QueryEscape(time.Now().Add(time.Hour).Format(time.RFC3339))
	w = api.do(http.MethodGet, "/api/statistics?start_date="+start+"&end_date="+end, admin, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Data model.StatisticsResponse `json:"data"`
	}](t, w)
	assert.Contains(t, body.Data.ContentTotals, model.ContentTotal{Entity: "projects", Total: 1})
	assert.Contains(t, body.Data.MostEdited, model.EntityActivity{Entity: "projects", Total: 1})
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	api := newAPI(t)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	swaggerJSON, err := swag.ReadDoc()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(swaggerJSON), &doc))

	param := regexp.MustCompile(`:(\w+)`)
	for _, r := range api.router.Routes() {
		if !strings.HasPrefix(r.Path, "/api/") {
			continue
		}
		path := param.ReplaceAllString(r.Path, "{$1}")
		_, ok := doc.Paths[path][strings.ToLower(r.Method)]
		assert.True(t, ok, "%s %s is not documented", r.Method, path)
	}
}
