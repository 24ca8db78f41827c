package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventClassCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "first")
		return errors.New("handler failure")
	})
	d.Subscribe(EventClassCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(EventBookingCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "other-type")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventClassCreated}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("expected both class handlers despite the first failing, got %v", calls)
	}
}
