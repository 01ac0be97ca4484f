// Package events carries wardrobe state-update notifications from services to
// connected clients over Redis pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Event types.
const (
	ItemCreated       = "item.created"
	ItemDeleted       = "item.deleted"
	OutfitCreated     = "outfit.created"
	OutfitDeleted     = "outfit.deleted"
	CalendarPlanned   = "calendar.planned"
	CalendarUnplanned = "calendar.unplanned"
)

// Event is one committed mutation of a user's wardrobe.
type Event struct {
	Type            string    `json:"type"`
	UserID          uint      `json:"userId"`
	ResourceID      uint      `json:"resourceId,omitempty"`
	Date            string    `json:"date,omitempty"`
	UploadCount     *int      `json:"uploadCount,omitempty"`
	AffectedOutfits []uint    `json:"affectedOutfits,omitempty"`
	At              time.Time `json:"at"`
}

// Publisher announces committed mutations. Implementations must not block for long.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Subscriber streams one user's events until ctx ends or stop is called.
type Subscriber interface {
	Subscribe(ctx context.Context, userID uint) (evs <-chan Event, stop func(), err error)
}

// Bus is both sides of the stream.
type Bus interface {
	Publisher
	Subscriber
}

// Channel is the Redis channel carrying userID's events.
func Channel(userID uint) string {
	return fmt.Sprintf("closet:events:%d", userID)
}

// Count returns a pointer for Event.UploadCount so that zero is still emitted.
func Count(n int) *int { return &n }

type redisBus struct {
	rdb *redis.Client
}

// NewRedisBus returns a Bus over rdb, or a no-op bus when rdb is nil.
func NewRedisBus(rdb *redis.Client) Bus {
	if rdb == nil {
		return Nop{}
	}
	return &redisBus{rdb: rdb}
}

func (b *redisBus) Publish(ctx context.Context, ev Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := b.rdb.Publish(ctx, Channel(ev.UserID), payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	return nil
}

func (b *redisBus) Subscribe(ctx context.Context, userID uint) (<-chan Event, func(), error) {
	ps := b.rdb.Subscribe(ctx, Channel(userID))
	// Receive blocks until the subscription is confirmed, surfacing connection errors early.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("subscribe: %w", err)
	}

	out := make(chan Event, 16)
	go forward(ctx, ps.Channel(), out)
	return out, func() { _ = ps.Close() }, nil
}

// forward decodes pub/sub messages into out until msgs closes or ctx ends,
// then closes out. Malformed payloads are logged and skipped.
func forward(ctx context.Context, msgs <-chan *redis.Message, out chan<- Event) {
	defer close(out)
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-msgs:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(m.Payload), &ev); err != nil {
				logrus.WithError(err).WithField("channel", m.Channel).Warn("drop malformed event")
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Nop drops every event; used when Redis is disabled.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Subscribe returns a channel that closes when ctx ends.
func (Nop) Subscribe(ctx context.Context, _ uint) (<-chan Event, func(), error) {
	out := make(chan Event)
	go func() {
		<-ctx.Done()
		close(out)
	}()
	return out, func() {}, nil
}
