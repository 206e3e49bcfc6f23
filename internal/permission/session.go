package permission

import "context"

// Profile is what the identity provider tells us about the signed-in user.
type Profile struct {
	Email     string
	FullName  string
	Name      string
	AvatarURL string
}

// Session identifies the caller of a request. AuthUserID comes from a
// verified token; AccountID is set once the dashboard account is resolved.
type Session struct {
	AuthUserID string
	AccountID  string
	Profile    Profile
}

func (s Session) Authenticated() bool { return s.AuthUserID != "" }

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored in ctx, or the zero (anonymous) session.
func SessionFrom(ctx context.Context) Session {
	s, _ := ctx.Value(sessionKey{}).(Session)
	return s
}
