package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contracting-cms/internal/permission"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, hub *Hub, authenticated bool) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		if authenticated {
			sess := permission.Session{AuthUserID: "auth-1", AccountID: "acc-1"}
			c.Request = c.Request.WithContext(permission.WithSession(c.Request.Context(), sess))
		}
		ServeWs(hub, c)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHub_PublishReachesDashboard(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := newTestServer(t, hub, true)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(ctx, Changed("faqs", "create", "faq-1"))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, Event{Type: "entity_changed", Entity: "faqs", Action: "create", ID: "faq-1"}, ev)
}

func TestServeWs_RejectsAnonymous(t *testing.T) {
	hub := NewHub(zap.NewNop())
	srv := newTestServer(t, hub, false)

	resp, err := http.Get(srv.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRelay_SkipsOwnMessages(t *testing.T) {
	hub := NewHub(zap.NewNop())
	relay := NewRelay(nil, "", hub, zap.NewNop())
	event, err := json.Marshal(Changed("projects", "delete", "p-1"))
	require.NoError(t, err)

	own, err := json.Marshal(envelope{Origin: relay.origin, Event: event})
	require.NoError(t, err)
	relay.handle(string(own))
	assert.Len(t, hub.broadcast, 0)

	peer, err := json.Marshal(envelope{Origin: "other-instance", Event: event})
	require.NoError(t, err)
	relay.handle(string(peer))
	require.Len(t, hub.broadcast, 1)
	assert.JSONEq(t, string(event), string(<-hub.broadcast))

	relay.handle("not json")
	assert.Len(t, hub.broadcast, 0)
}

func TestHub_ShutdownReleasesConnections(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := newTestServer(t, hub, true)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-hub.done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	var closeErr *websocket.CloseError
	assert.ErrorAs(t, err, &closeErr, "open dashboards receive a close frame")
	assert.Equal(t, 0, hub.ClientCount())

	late, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer late.Close()
	require.NoError(t, late.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = late.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestHub_PublishDoesNotWaitForRelay(t *testing.T) {
	hub := NewHub(zap.NewNop())
	// 10.255.255.1 is unroutable, so dialing it hangs until the timeout.
	rdb := redis.NewClient(&redis.Options{Addr: "10.255.255.1:6379", DialTimeout: 3 * time.Second, MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	hub.UseRelay(NewRelay(rdb, "", hub, zap.NewNop()))

	start := time.Now()
	hub.Publish(context.Background(), Changed("faqs", "update", "faq-1"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	require.Len(t, hub.broadcast, 1, "local delivery still happens")
}
