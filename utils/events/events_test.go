package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel(t *testing.T) {
	assert.Equal(t, "closet:events:7", Channel(7))
}

func TestRedisBus_Publish(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	bus := NewRedisBus(rdb)

	ev := Event{
		Type:            ItemDeleted,
		UserID:          7,
		ResourceID:      3,
		UploadCount:     Count(0),
		AffectedOutfits: []uint{4},
		At:              time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"uploadCount":0`)

	mock.ExpectPublish("closet:events:7", payload).SetVal(1)

	require.NoError(t, bus.Publish(context.Background(), ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisBus_PublishError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	bus := NewRedisBus(rdb)

	ev := Event{Type: OutfitCreated, UserID: 1, ResourceID: 2, At: time.Unix(0, 0).UTC()}
	payload, _ := json.Marshal(ev)
	mock.ExpectPublish("closet:events:1", payload).SetErr(errors.New("down"))

	err := bus.Publish(context.Background(), ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outfit.created")
}

func TestNewRedisBus_NilIsNop(t *testing.T) {
	bus := NewRedisBus(nil)
	_, ok := bus.(Nop)
	require.True(t, ok)
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: ItemCreated}))

	ctx, cancel := context.WithCancel(context.Background())
	ch, stop, err := bus.Subscribe(ctx, 1)
	require.NoError(t, err)
	defer stop()
	cancel()

	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("nop subscription did not close")
	}
}

func TestRedisBus_SubscribeUnreachable(t *testing.T) {
	// nothing listens on port 1; the confirmation round trip must fail fast
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ch, stop, err := NewRedisBus(rdb).Subscribe(ctx, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subscribe")
	assert.Nil(t, ch)
	assert.Nil(t, stop)
}

func TestForward_DecodesAndSkipsMalformed(t *testing.T) {
	msgs := make(chan *redis.Message, 3)
	out := make(chan Event, 3)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	good := Event{Type: CalendarPlanned, UserID: 3, ResourceID: 9, Date: "2024-06-01", At: time.Unix(0, 0).UTC()}
	msgs <- &redis.Message{Channel: Channel(3), Payload: string(mustMarshal(t, good))}
	msgs <- &redis.Message{Channel: Channel(3), Payload: "{not json"}
	msgs <- &redis.Message{Channel: Channel(3), Payload: `{"type":"item.deleted","userId":3,"uploadCount":0}`}
	close(msgs)

	forward(ctx, msgs, out)

	var got []Event
	for ev := range out { // forward closed out after msgs closed
		got = append(got, ev)
	}
	require.Len(t, got, 2)
	assert.Equal(t, CalendarPlanned, got[0].Type)
	assert.Equal(t, uint(9), got[0].ResourceID)
	assert.Equal(t, "2024-06-01", got[0].Date)
	assert.True(t, good.At.Equal(got[0].At))
	assert.Equal(t, ItemDeleted, got[1].Type)
	require.NotNil(t, got[1].UploadCount)
	assert.Equal(t, 0, *got[1].UploadCount)
}

func TestForward_ClosesOutWhenContextEnds(t *testing.T) {
	msgs := make(chan *redis.Message) // never delivers
	out := make(chan Event)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		forward(ctx, msgs, out)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forward did not return after cancel")
	}
	_, open := <-out
	assert.False(t, open)
}

func TestForward_StopsWhileBlockedOnSlowReader(t *testing.T) {
	msgs := make(chan *redis.Message, 1)
	out := make(chan Event) // nobody reads
	ctx, cancel := context.WithCancel(context.Background())

	msgs <- &redis.Message{Payload: `{"type":"outfit.created","userId":1}`}
	done := make(chan struct{})
	go func() {
		forward(ctx, msgs, out)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forward stayed blocked on a full out channel")
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
