package websockets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHubServer upgrades every request, registers it with hub and hands back the server side.
func newHubServer(t *testing.T, hub *Hub) (*httptest.Server, <-chan *websocket.Conn) {
	t.Helper()
	conns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if err := hub.AddConnection(context.Background(), "conn-1", conn); err != nil {
			conn.Close()
			return
		}
		conns <- conn
	}))
	t.Cleanup(srv.Close)
	return srv, conns
}

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub(t *testing.T) {
	t.Run("Publish Without Connections", func(t *testing.T) {
		hub := NewHub(nil)

		err := hub.Publish(context.Background(), Message{Type: MessageTypeReserveUpdate})

		assert.NoError(t, err)
	})

	t.Run("Nil Connection Rejected", func(t *testing.T) {
		hub := NewHub(nil)

		err := hub.AddConnection(context.Background(), "abc", nil)

		require.Error(t, err)
		assert.Equal(t, 0, hub.Count())
	})

	t.Run("Remove Unknown Connection", func(t *testing.T) {
		hub := NewHub(nil)

		assert.NoError(t, hub.RemoveConnection(context.Background(), "missing"))
	})

	t.Run("Unmarshalable Payload", func(t *testing.T) {
		hub := NewHub(nil)

		err := hub.Publish(context.Background(), Message{Type: MessageTypeReserveUpdate, Payload: make(chan int)})

		assert.ErrorContains(t, err, "failed to marshal message")
	})

	t.Run("Delivers To Client", func(t *testing.T) {
		hub := NewHub(nil)
		srv, _ := newHubServer(t, hub)
		client := dialHub(t, srv)
		require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

		require.NoError(t, hub.Publish(context.Background(), Message{Type: MessageTypeReserveUpdate, Payload: "hello"}))

		var got Message
		client.SetReadDeadline(time.Now().Add(time.Second))
		require.NoError(t, client.ReadJSON(&got))
		assert.Equal(t, MessageTypeReserveUpdate, got.Type)
		assert.Equal(t, "hello", got.Payload)
	})

	t.Run("Closed Server Connection Is Dropped", func(t *testing.T) {
		hub := NewHub(nil)
		srv, conns := newHubServer(t, hub)
		dialHub(t, srv)

		serverConn := <-conns
		require.Equal(t, 1, hub.Count())
		// The writer's next write fails on the closed connection.
		serverConn.Close()

		err := hub.Publish(context.Background(), Message{Type: MessageTypeReserveUpdate})

		assert.NoError(t, err)
		assert.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
	})

	t.Run("Disconnected Client Is Dropped", func(t *testing.T) {
		hub := NewHub(nil)
		srv, _ := newHubServer(t, hub)
		client := dialHub(t, srv)
		require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

		client.Close()

		assert.Eventually(t, func() bool {
			assert.NoError(t, hub.Publish(context.Background(), Message{Type: MessageTypeReserveUpdate}))
			return hub.Count() == 0
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("Stalled Client Does Not Block Publish", func(t *testing.T) {
		hub := NewHub(nil)
		srv, _ := newHubServer(t, hub)
		dialHub(t, srv) // never reads
		require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

		big := strings.Repeat("x", 256<<10)
		var worst time.Duration
		for i := 0; i < 200; i++ {
			start := time.Now()
			require.NoError(t, hub.Publish(context.Background(), Message{Type: MessageTypeReserveUpdate, Payload: big}))
			if elapsed := time.Since(start); elapsed > worst {
				worst = elapsed
			}
		}

		assert.Less(t, worst, 500*time.Millisecond)
		assert.Equal(t, 0, hub.Count())
	})

	t.Run("Close Sends Close Frame", func(t *testing.T) {
		hub := NewHub(nil)
		srv, _ := newHubServer(t, hub)
		client := dialHub(t, srv)
		require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

		hub.Close()

		client.SetReadDeadline(time.Now().Add(time.Second))
		_, _, err := client.ReadMessage()
		assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
		assert.Equal(t, 0, hub.Count())
		assert.ErrorIs(t, hub.AddConnection(context.Background(), "late", &websocket.Conn{}), ErrHubClosed)
	})
}
