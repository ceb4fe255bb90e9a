package stream

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

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

func fakeClient(hub *Hub, buffer int) *Client {
	return &Client{id: clientIDCounter.Add(1), hub: hub, send: make(chan Message, buffer)}
}

func TestHub_BroadcastReachesRegisteredClients(t *testing.T) {
	hub := startHub(t)
	a, b := fakeClient(hub, 4), fakeClient(hub, 4)
	hub.Register <- a
	hub.Register <- b
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(MessageTypeSnapshot, []string{"1", "2"})

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			assert.Equal(t, MessageTypeSnapshot, msg.Type)
			assert.Equal(t, []string{"1", "2"}, msg.Data)
		case <-time.After(time.Second):
			t.Fatal("message not delivered")
		}
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := startHub(t)
	slow := fakeClient(hub, 1)
	hub.Register <- slow
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(MessageTypeSnapshot, 1)
	hub.Broadcast(MessageTypeSnapshot, 2)

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	first, ok := <-slow.send
	assert.True(t, ok)
	assert.Equal(t, 1, first.Data)
	_, ok = <-slow.send
	assert.False(t, ok, "send channel is closed after the drop")
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := startHub(t)
	c := fakeClient(hub, 1)
	hub.Register <- c
	hub.Unregister <- c

	_, ok := <-c.send
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	c := fakeClient(hub, 1)
	hub.Register <- c
	cancel()

	<-hub.done
	_, ok := <-c.send
	assert.False(t, ok)
}

func TestClient_ReceivesBroadcastOverWebsocket(t *testing.T) {
	hub := startHub(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := (&websocket.Upgrader{}).Upgrade(w, r, nil)
		if err != nil {
			return
		}
		NewClient(hub, conn).Start()
	}))
	defer server.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	hub.Broadcast(MessageTypeAlert, map[string]string{"id": "a1"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MessageTypeAlert, msg.Type)
	assert.Equal(t, map[string]interface{}{"id": "a1"}, msg.Data)

	require.NoError(t, conn.WriteJSON(Message{Type: MessageTypePing}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MessageTypePong, msg.Type)
}

func TestClient_PingAfterSlowDropIsAnsweredWithoutPanic(t *testing.T) {
	hub := startHub(t)
	clients := make(chan *Client, 1)
	recovered := make(chan interface{}, 1)

	// The server side never starts writePump, so the send buffer fills up.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := (&websocket.Upgrader{}).Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := NewClient(hub, conn)
		hub.Register <- c
		clients <- c
		go func() {
			defer func() { recovered <- recover() }()
			c.readPump()
		}()
	}))
	defer server.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	c := <-clients
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	for i := 0; i <= sendBufferSize; i++ {
		hub.Broadcast(MessageTypeSnapshot, i)
	}
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteJSON(Message{Type: MessageTypePing}))
	require.Eventually(t, func() bool { return len(c.pong) == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	select {
	case r := <-recovered:
		assert.Nil(t, r)
	case <-time.After(2 * time.Second):
		t.Fatal("readPump did not exit")
	}
}
