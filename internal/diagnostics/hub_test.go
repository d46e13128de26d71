package diagnostics

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"hako/internal/analog"
	"hako/internal/command"
)

func testHub() *Hub {
	base := logrus.New()
	base.SetOutput(nopWriter{})
	return NewHub(logrus.NewEntry(base))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestBroadcastDeliversToRegisteredClient(t *testing.T) {
	h := testHub()
	c := &client{send: make(chan []byte, 1)}
	h.register(c)

	h.broadcast([]byte(`{"kind":"press"}`))

	select {
	case got := <-c.send:
		require.JSONEq(t, `{"kind":"press"}`, string(got))
	default:
		t.Fatal("expected a queued message")
	}
}

func TestBroadcastDropsWhenClientBufferFull(t *testing.T) {
	h := testHub()
	c := &client{send: make(chan []byte, 1)}
	h.register(c)

	h.broadcast([]byte("first"))
	h.broadcast([]byte("second")) // buffer already full, must be dropped, not block

	got := <-c.send
	require.Equal(t, "first", string(got))
	require.Empty(t, c.send)
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	h := testHub()
	c := &client{send: make(chan []byte, 1)}
	h.register(c)
	h.unregister(c)

	_, ok := <-c.send
	require.False(t, ok)

	// unregistering an already-unregistered client must not panic by
	// double-closing the channel.
	require.NotPanics(t, func() { h.unregister(c) })
}

func TestPublishPressAndRelease(t *testing.T) {
	h := testHub()
	c := &client{send: make(chan []byte, 4)}
	h.register(c)

	h.Publish(command.Press(command.A))
	var msg Message
	require.NoError(t, json.Unmarshal(<-c.send, &msg))
	require.Equal(t, "press", msg.Kind)
	require.Equal(t, "A", msg.Button)

	h.Publish(command.Release(command.B))
	require.NoError(t, json.Unmarshal(<-c.send, &msg))
	require.Equal(t, "release", msg.Kind)
	require.Equal(t, "B", msg.Button)
}

func TestPublishSetStick(t *testing.T) {
	h := testHub()
	c := &client{send: make(chan []byte, 4)}
	h.register(c)

	h.Publish(command.SetStick(command.C, analog.Coord2{X: -10, Y: 20}))
	var msg Message
	require.NoError(t, json.Unmarshal(<-c.send, &msg))
	require.Equal(t, "set_stick", msg.Kind)
	require.Equal(t, "c", msg.Stick)
	require.Equal(t, -10, msg.X)
	require.Equal(t, 20, msg.Y)
}

func TestPublishSetTrigger(t *testing.T) {
	h := testHub()
	c := &client{send: make(chan []byte, 4)}
	h.register(c)

	h.Publish(command.SetTrigger(analog.MS))
	var msg Message
	require.NoError(t, json.Unmarshal(<-c.send, &msg))
	require.Equal(t, "set_trigger", msg.Kind)
	require.Equal(t, 94, msg.Trigger)
}
