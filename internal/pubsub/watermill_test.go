package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridge_PublishSubscribe(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	err := bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(ctx, Message{
		Topic:     "test.topic",
		SessionID: "session-1",
		Payload:   []byte("hello"),
		Metadata:  map[string]string{"source": "test", "topic": "spoofed"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "session-1", msg.SessionID)
		assert.Equal(t, []byte("hello"), msg.Payload)
		assert.Equal(t, map[string]string{"source": "test"}, msg.Metadata)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

type greeting struct {
	Text string `json:"text"`
}

func TestTypedEvents(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := NewEvent[greeting]("test.greeting")
	assert.Equal(t, "test.greeting", event.Name())

	got := make(chan greeting, 1)
	err := Subscribe(ctx, bridge, event, func(ctx context.Context, sessionID string, g greeting) error {
		assert.Equal(t, "session-2", sessionID)
		got <- g
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, Publish(ctx, bridge, event, "session-2", greeting{Text: "hi"}))

	select {
	case g := <-got:
		assert.Equal(t, "hi", g.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for typed event")
	}
}

func TestEvent_Decode(t *testing.T) {
	event := NewEvent[greeting]("test.greeting")

	_, err := event.Decode(Message{Payload: []byte("not json")})
	assert.Error(t, err)

	g, err := event.Decode(Message{Payload: []byte(`{"text":"ok"}`)})
	require.NoError(t, err)
	assert.Equal(t, "ok", g.Text)
}
