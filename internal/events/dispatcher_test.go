package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []EventType
	dispatcher.Subscribe(EventUserLoggedIn, func(_ context.Context, event Event) error {
		seen = append(seen, event.Type)
		return nil
	})
	dispatcher.Subscribe(EventUserLoggedIn, func(_ context.Context, _ Event) error {
		return errors.New("handler failure")
	})
	dispatcher.Subscribe(EventUserLoggedIn, func(_ context.Context, event Event) error {
		seen = append(seen, event.Type)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{ID: "1", Type: EventUserLoggedIn, UserID: 7})
	require.NoError(t, err)
	// a failing handler does not stop delivery to the rest
	assert.Len(t, seen, 2)
}

func TestDispatcherIgnoresUnrelatedEvents(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventAdminPatched, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{ID: "1", Type: EventUserRegistered}))
	assert.False(t, called)
}
