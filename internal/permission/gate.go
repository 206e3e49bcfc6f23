// Package permission decides whether the caller may perform a dashboard action.
package permission

import (
	"context"
	"fmt"
	"slices"
)

// KeySource resolves the permission keys an account holds through its roles.
type KeySource interface {
	PermissionKeysForAccount(ctx context.Context, accountID string) ([]string, error)
}

// Gate answers permission checks against the store. Nothing is cached:
// role or grant changes apply to the very next request.
type Gate struct {
	keys KeySource
}

func NewGate(keys KeySource) *Gate {
	return &Gate{keys: keys}
}

// Permissions returns the union of keys granted to the session's account.
// An anonymous session or one without an account holds nothing.
func (g *Gate) Permissions(ctx context.Context, s Session) ([]string, error) {
	if !s.Authenticated() || s.AccountID == "" {
		return []string{}, nil
	}
	keys, err := g.keys.PermissionKeysForAccount(ctx, s.AccountID)
	if err != nil {
		return nil, fmt.Errorf("load permissions for account %s: %w", s.AccountID, err)
	}
	return keys, nil
}

// HasPermission reports whether the session holds key. Unknown keys are
// simply not held.
func (g *Gate) HasPermission(ctx context.Context, s Session, key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	keys, err := g.Permissions(ctx, s)
	if err != nil {
		return false, err
	}
	return slices.Contains(keys, key), nil
}
