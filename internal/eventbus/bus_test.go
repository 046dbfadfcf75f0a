package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusPublishReachesSubscribers(t *testing.T) {
	bus := NewSubmissionEventBus()
	var got []SubmissionEvent

	bus.Subscribe(SubmissionEventSaved, func(ctx context.Context, e SubmissionEvent) error {
		got = append(got, e)
		return nil
	})

	err := bus.Publish(context.Background(), SubmissionEventSaved, SubmissionEvent{
		Type: SubmissionEventSaved, SubmissionID: 7, Ref: "ref-7",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(7), got[0].SubmissionID)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewSubmissionEventBus()
	count := 0

	cancel := bus.Subscribe(SubmissionEventExported, func(ctx context.Context, e SubmissionEvent) error {
		count++
		return nil
	})
	require.NoError(t, bus.Publish(context.Background(), SubmissionEventExported, SubmissionEvent{}))
	cancel()
	require.NoError(t, bus.Publish(context.Background(), SubmissionEventExported, SubmissionEvent{}))

	assert.Equal(t, 1, count)
}

func TestBusCollectsHandlerErrors(t *testing.T) {
	bus := NewSubmissionEventBus()
	boom := errors.New("boom")

	bus.Subscribe(SubmissionEventSaved, func(ctx context.Context, e SubmissionEvent) error { return boom })
	bus.Subscribe(SubmissionEventSaved, func(ctx context.Context, e SubmissionEvent) error { return nil })

	err := bus.Publish(context.Background(), SubmissionEventSaved, SubmissionEvent{})
	assert.ErrorIs(t, err, boom)
}

func TestBusIgnoresNilHandler(t *testing.T) {
	bus := NewSubmissionEventBus()
	cancel := bus.Subscribe(SubmissionEventSaved, nil)
	cancel()
	assert.NoError(t, bus.Publish(context.Background(), SubmissionEventSaved, SubmissionEvent{}))
}
