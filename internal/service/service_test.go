package service

import (
	"context"
	"sync"
	"testing"

	"contracting-cms/internal/repository"
	"contracting-cms/internal/testutil"
	"contracting-cms/internal/websocket"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []websocket.Event
}

func (n *recordingNotifier) Publish(_ context.Context, ev websocket.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) Events() []websocket.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]websocket.Event(nil), n.events...)
}

type fixture struct {
	db       *gorm.DB
	deps     Deps
	notifier *recordingNotifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	return fixtureFor(t, testutil.NewDB(t))
}

func fixtureFor(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	notifier := &recordingNotifier{}
	return fixture{
		db:       db,
		notifier: notifier,
		deps: Deps{
			DB:       db,
			Tx:       repository.NewTransactionManager(db),
			Audit:    NewAuditService(repository.NewAuditRepository(db)),
			Notifier: notifier,
			Log:      zaptest.NewLogger(t),
		},
	}
}

func (f fixture) count(t *testing.T, table, where string, args ...any) int64 {
	t.Helper()
	var n int64
	q := f.db.Table(table)
	if where != "" {
		q = q.Where(where, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func create[T any](t *testing.T, db *gorm.DB, rows ...*T) {
	t.Helper()
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}
}
