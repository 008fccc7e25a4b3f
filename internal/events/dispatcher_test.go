package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherPublishSubscribe(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []string
	d.Subscribe(EventStaffProvisioned, func(ctx context.Context, e Event) error {
		seen = append(seen, "first:"+e.AccountID)
		return nil
	})
	d.Subscribe(EventStaffProvisioned, func(ctx context.Context, e Event) error {
		seen = append(seen, "second:"+e.AccountID)
		return nil
	})
	d.Subscribe(EventStaffDisabled, func(ctx context.Context, e Event) error {
		seen = append(seen, "disabled:"+e.AccountID)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventStaffProvisioned, AccountID: "acc-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:acc-1", "second:acc-1"}, seen)
}

func TestDispatcherHandlerErrorSwallowed(t *testing.T) {
	d := NewInMemoryDispatcher()

	var ran bool
	d.Subscribe(EventManagerAssigned, func(ctx context.Context, e Event) error {
		return errors.New("handler failed")
	})
	d.Subscribe(EventManagerAssigned, func(ctx context.Context, e Event) error {
		ran = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventManagerAssigned, AccountID: "acc-1"})
	require.NoError(t, err)
	assert.True(t, ran, "a failing handler must not stop the rest")
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventStaffDeprovisioned}))
}
