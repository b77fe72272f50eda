package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerohexer/cspnet/internal/pubsub"
)

func TestCatalogExamplesDecode(t *testing.T) {
	topic, ok := Catalog.Get(Navigated.Name())
	require.True(t, ok)

	ev, err := Navigated.Decode(pubsub.Message{Topic: topic.Name, Payload: []byte(topic.Example)})
	require.NoError(t, err)
	assert.Equal(t, "credits", ev.Route)
	assert.False(t, ev.At.IsZero())
}
