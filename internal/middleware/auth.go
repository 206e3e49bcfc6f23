package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"contracting-cms/internal/model"
	"contracting-cms/internal/permission"
	"contracting-cms/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	AccessTokenCookie = "access_token"
	sessionContextKey = "session"
)

// AccountResolver maps an identity-provider subject to its dashboard account.
type AccountResolver interface {
	FindByAuthUserID(ctx context.Context, authUserID string) (*model.Account, error)
}

// PermissionChecker answers whether a session holds a permission key.
type PermissionChecker interface {
	HasPermission(ctx context.Context, s permission.Session, key string) (bool, error)
}

// IdentityClaims are the claims the external identity service signs into
// its access tokens.
type IdentityClaims struct {
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

type UserMetadata struct {
	FullName  string `json:"full_name"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Authenticate verifies the caller's access token and attaches the resulting
// session to the request. It never aborts: a missing or invalid token leaves
// the session anonymous and the permission checks downstream deny it.
func Authenticate(secret []byte, accounts AccountResolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := parseToken(tokenString, secret)
		if err != nil {
			log.Debug("rejected access token", zap.Error(err))
			c.Next()
			return
		}

		sess := permission.Session{
			AuthUserID: claims.Subject,
			Profile: permission.Profile{
				Email:     claims.Email,
				FullName:  claims.UserMetadata.FullName,
				Name:      claims.UserMetadata.Name,
				AvatarURL: claims.UserMetadata.AvatarURL,
			},
		}

		account, err := accounts.FindByAuthUserID(c.Request.Context(), sess.AuthUserID)
		switch {
		case err == nil:
			sess.AccountID = account.ID
		case !errors.Is(err, gorm.ErrRecordNotFound):
			log.Warn("failed to resolve account", zap.String("auth_user_id", sess.AuthUserID), zap.Error(err))
		}

		setSession(c, sess)
		c.Next()
	}
}

// extractToken looks in the cookie, then the Authorization header, then the
// token query parameter used by websocket clients.
func extractToken(c *gin.Context) string {
	if tok, err := c.Cookie(AccessTokenCookie); err == nil && tok != "" {
		return tok
	}
	if scheme, tok, ok := strings.Cut(c.GetHeader("Authorization"), " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(tok)
	}
	return c.Query("token")
}

func parseToken(tokenString string, secret []byte) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func setSession(c *gin.Context, s permission.Session) {
	c.Set(sessionContextKey, s)
	c.Request = c.Request.WithContext(permission.WithSession(c.Request.Context(), s))
}

// CurrentSession returns the session Authenticate attached, or an anonymous one.
func CurrentSession(c *gin.Context) permission.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if s, ok := v.(permission.Session); ok {
			return s
		}
	}
	return permission.SessionFrom(c.Request.Context())
}

// RequireSession rejects anonymous callers.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authentication required"))
			return
		}
		c.Next()
	}
}

// RequirePermission lets the request through only when the caller's roles
// grant key. Permissions are read fresh on every request.
func RequirePermission(gate PermissionChecker, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if !sess.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authentication required"))
			return
		}

		ok, err := gate.HasPermission(c.Request.Context(), sess, key)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to verify permissions"))
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: missing permission '"+key+"'"))
			return
		}
		c.Next()
	}
}
