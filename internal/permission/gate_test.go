package permission

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type keySourceMock struct{ mock.Mock }

func (m *keySourceMock) PermissionKeysForAccount(ctx context.Context, accountID string) ([]string, error) {
	args := m.Called(ctx, accountID)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

func TestGate_AnonymousHoldsNothing(t *testing.T) {
	src := &keySourceMock{}
	gate := NewGate(src)

	ok, err := gate.HasPermission(context.Background(), Session{}, "projects.view")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = gate.HasPermission(context.Background(), Session{AuthUserID: "auth-1"}, "projects.view")
	require.NoError(t, err)
	assert.False(t, ok, "a token without a provisioned account grants nothing")

	src.AssertNotCalled(t, "PermissionKeysForAccount", mock.Anything, mock.Anything)
}

func TestGate_ChecksMembership(t *testing.T) {
	src := &keySourceMock{}
	src.On("PermissionKeysForAccount", mock.Anything, "acc-1").Return([]string{"faqs.view", "projects.edit"}, nil)
	gate := NewGate(src)
	sess := Session{AuthUserID: "auth-1", AccountID: "acc-1"}

	ok, err := gate.HasPermission(context.Background(), sess, "projects.edit")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gate.HasPermission(context.Background(), sess, "projects.delete")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = gate.HasPermission(context.Background(), sess, "no.such.key")
	require.NoError(t, err)
	assert.False(t, ok, "unknown keys are denied, not errors")

	src.AssertNumberOfCalls(t, "PermissionKeysForAccount", 3)
}

func TestGate_StoreFailure(t *testing.T) {
	src := &keySourceMock{}
	src.On("PermissionKeysForAccount", mock.Anything, "acc-1").Return(nil, errors.New("connection reset"))
	gate := NewGate(src)

	ok, err := gate.HasPermission(context.Background(), Session{AuthUserID: "a", AccountID: "acc-1"}, "faqs.view")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestKeySets(t *testing.T) {
	assert.Equal(t, KeySet{View: "faqs.view", Create: "faqs.create", Edit: "faqs.edit", Delete: "faqs.delete"}, CrudKeys(Faqs))
	assert.Equal(t, KeySet{View: "settings.view", Create: "settings.manage", Edit: "settings.manage", Delete: "settings.manage"}, ManageKeys(Settings))
}

func TestSessionContext(t *testing.T) {
	ctx := context.Background()
	assert.False(t, SessionFrom(ctx).Authenticated())

	ctx = WithSession(ctx, Session{AuthUserID: "auth-9", AccountID: "acc-9"})
	assert.Equal(t, "acc-9", SessionFrom(ctx).AccountID)
}
