package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Entry is a structured log object saved into Redis as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Hook mirrors logrus entries into a Redis LIST (e.g. "logs:closet") trimmed to
// the last max entries, so recent activity is visible without shipping files.
type Hook struct {
	rdb       *redis.Client
	key       string        // list key
	max       int64         // keep last N entries
	retention time.Duration // optional expire for the list key
	levels    []logrus.Level
	timeout   time.Duration
}

// New creates a hook for levels at or above minLevel. A nil client gives a no-op hook.
func New(rdb *redis.Client, key string, max int64, retention time.Duration, minLevel logrus.Level) *Hook {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		if l <= minLevel { // logrus orders levels from panic (0) to trace
			levels = append(levels, l)
		}
	}
	return &Hook{rdb: rdb, key: key, max: max, retention: retention, levels: levels, timeout: 500 * time.Millisecond}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level { return h.levels }

// Fire implements logrus.Hook: LPUSH the entry, then LTRIM, then EXPIRE.
// Redis failures are swallowed; logging must never break a request.
func (h *Hook) Fire(e *logrus.Entry) error {
	if h == nil || h.rdb == nil {
		return nil
	}
	b, err := json.Marshal(toEntry(e))
	if err != nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	_ = h.rdb.LPush(ctx, h.key, b).Err()
	_ = h.rdb.LTrim(ctx, h.key, 0, h.max-1).Err()
	if h.retention > 0 {
		_ = h.rdb.Expire(ctx, h.key, h.retention).Err()
	}
	return nil
}

func toEntry(e *logrus.Entry) Entry {
	en := Entry{
		Level: e.Level.String(),
		Msg:   e.Message,
		Time:  e.Time.UTC().Format(time.RFC3339),
	}
	if len(e.Data) > 0 {
		en.Meta = make(map[string]string, len(e.Data))
		for k, v := range e.Data {
			if err, ok := v.(error); ok {
				en.Meta[k] = err.Error()
				continue
			}
			en.Meta[k] = fmt.Sprint(v)
		}
	}
	return en
}
