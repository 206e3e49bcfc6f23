package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contracting-cms/internal/model"
	"contracting-cms/internal/permission"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

type fakeAccounts map[string]string

func (f fakeAccounts) FindByAuthUserID(_ context.Context, authUserID string) (*model.Account, error) {
	id, ok := f[authUserID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a := &model.Account{AuthUserID: authUserID}
	a.ID = id
	return a, nil
}

type fakeChecker struct {
	keys map[string][]string
	err  error
}

func (f fakeChecker) HasPermission(_ context.Context, s permission.Session, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, k := range f.keys[s.AccountID] {
		if k == key {
			return true, nil
		}
	}
	return false, nil
}

func signToken(t *testing.T, secret []byte, sub string, method jwt.SigningMethod) string {
	t.Helper()
	claims := IdentityClaims{
		Email:        "omar@company.sa",
		UserMetadata: UserMetadata{FullName: "Omar Saleh"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return signed
}

func newEngine(checker PermissionChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(testSecret, fakeAccounts{"auth-1": "acct-1", "auth-2": "acct-2"}, zap.NewNop()))
	r.GET("/whoami", func(c *gin.Context) {
		s := CurrentSession(c)
		c.JSON(http.StatusOK, gin.H{"auth": s.AuthUserID, "account": s.AccountID, "name": s.Profile.FullName})
	})
	r.GET("/me", RequireSession(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.POST("/projects", RequirePermission(checker, "projects.create"), func(c *gin.Context) {
		c.String(http.StatusCreated, permission.SessionFrom(c.Request.Context()).AccountID)
	})
	return r
}

func TestAuthenticate_TokenSources(t *testing.T) {
	r := newEngine(fakeChecker{})
	tok := signToken(t, testSecret, "auth-1", jwt.SigningMethodHS256)

	tests := []struct {
		name    string
		prepare func(*http.Request)
		account string
	}{
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: tok}) }, "acct-1"},
		{"bearer", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+tok) }, "acct-1"},
		{"query", func(req *http.Request) { req.URL.RawQuery = "token=" + tok }, "acct-1"},
		{"none", func(*http.Request) {}, ""},
		{"garbage", func(req *http.Request) { req.Header.Set("Authorization", "Bearer nope") }, ""},
		{"wrong secret", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+signToken(t, []byte("other"), "auth-1", jwt.SigningMethodHS256))
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"account":"`+tt.account+`"`)
		})
	}
}

func TestAuthenticate_UnknownAccountKeepsIdentity(t *testing.T) {
	r := newEngine(fakeChecker{})
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "auth-new", jwt.SigningMethodHS256))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.JSONEq(t, `{"auth":"auth-new","account":"","name":"Omar Saleh"}`, w.Body.String())
}

func TestRequireSession(t *testing.T) {
	r := newEngine(fakeChecker{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "auth-new", jwt.SigningMethodHS256))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequirePermission(t *testing.T) {
	checker := fakeChecker{keys: map[string][]string{"acct-1": {"projects.view", "projects.create"}, "acct-2": {"projects.view"}}}

	tests := []struct {
		name    string
		checker PermissionChecker
		sub     string
		want    int
		body    string
	}{
		{"anonymous", checker, "", http.StatusUnauthorized, "Authentication required"},
		{"granted", checker, "auth-1", http.StatusCreated, "acct-1"},
		{"denied", checker, "auth-2", http.StatusForbidden, "Access denied: missing permission 'projects.create'"},
		{"no account", checker, "auth-new", http.StatusForbidden, "missing permission"},
		{"store failure", fakeChecker{err: errors.New("db down")}, "auth-1", http.StatusInternalServerError, "Failed to verify permissions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(tt.checker)
			req := httptest.NewRequest(http.MethodPost, "/projects", nil)
			if tt.sub != "" {
				req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, tt.sub, jwt.SigningMethodHS256))
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}
