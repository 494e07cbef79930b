package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribedHandlers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventAccountWritePartialFailure, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	event := Event{ID: "e1", Type: EventAccountWritePartialFailure, Timestamp: time.Now()}
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, received, 1)
	assert.Equal(t, "e1", received[0].ID)
}

func TestHandlerErrorDoesNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventAccountWritePartialFailure, func(context.Context, Event) error {
		return errors.New("handler failed")
	})
	var called bool
	dispatcher.Subscribe(EventAccountWritePartialFailure, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventAccountWritePartialFailure}))
	assert.True(t, called)
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	assert.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventAccountWritePartialFailure}))
}
