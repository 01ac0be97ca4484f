package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/JabirC/Closet/global"
	"github.com/JabirC/Closet/models"
)

const (
	// profileCacheTTL is how long a cached profile stays in Redis before expiring.
	profileCacheTTL = 10 * time.Minute
	// genTTL outlives any entry stamped with an older generation.
	genTTL = 24 * time.Hour
)

// ProfileCache keeps models.Profile JSON under "user:<id>".
// Every entry is stamped with the generation read before the DB lookup that
// produced it; Invalidate bumps "user:<id>:gen", so an entry written by a
// reader that raced a mutation no longer matches and reads as a miss.
// A nil *ProfileCache or a nil client turns every call into a no-op/miss.
type ProfileCache struct {
	rdb *redis.Client
}

type cachedProfile struct {
	Gen     int64          `json:"gen"`
	Profile models.Profile `json:"profile"`
}

func NewProfileCache(rdb *redis.Client) *ProfileCache {
	return &ProfileCache{rdb: rdb}
}

func (c *ProfileCache) enabled() bool { return c != nil && c.rdb != nil }

func profileKey(userID uint) string {
	return fmt.Sprintf(global.ProfileCacheKey, userID) // e.g. "user:42"
}

func genKey(userID uint) string {
	return fmt.Sprintf(global.ProfileGenKey, userID)
}

// Get returns the cached profile when its generation is current. gen is the
// current generation either way; pass it to Set after loading from the DB.
func (c *ProfileCache) Get(ctx context.Context, userID uint) (p *models.Profile, gen int64, ok bool) {
	if !c.enabled() {
		return nil, 0, false
	}
	key := profileKey(userID)
	vals, err := c.rdb.MGet(ctx, key, genKey(userID)).Result()
	if err != nil || len(vals) != 2 {
		logrus.WithError(err).WithField("key", key).Warn("cache GET error")
		return nil, 0, false
	}
	if s, isStr := vals[1].(string); isStr {
		if gen, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, 0, false
		}
	}

	raw, isStr := vals[0].(string)
	if !isStr {
		logrus.WithField("key", key).Debug("cache MISS")
		return nil, gen, false
	}
	var entry cachedProfile
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache unmarshal failed")
		return nil, gen, false
	}
	if entry.Gen != gen {
		logrus.WithField("key", key).Debug("cache STALE")
		return nil, gen, false
	}
	logrus.WithField("key", key).Debug("cache HIT")
	return &entry.Profile, gen, true
}

// Set stores p stamped with gen; failures are logged and ignored.
func (c *ProfileCache) Set(ctx context.Context, p *models.Profile, gen int64) {
	if !c.enabled() {
		return
	}
	b, err := json.Marshal(cachedProfile{Gen: gen, Profile: *p})
	if err != nil {
		return
	}
	key := profileKey(p.User.ID)
	if err := c.rdb.Set(ctx, key, b, profileCacheTTL).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache SET error")
	}
}

// Invalidate retires the cached profile after anything that changes uploadCount.
// The generation bump comes first: once it lands, no older entry can be served.
func (c *ProfileCache) Invalidate(ctx context.Context, userID uint) {
	if !c.enabled() {
		return
	}
	log := logrus.WithField("user_id", userID)
	gk := genKey(userID)
	if err := c.rdb.Incr(ctx, gk).Err(); err != nil {
		log.WithError(err).Warn("cache INCR error")
	}
	if err := c.rdb.Expire(ctx, gk, genTTL).Err(); err != nil {
		log.WithError(err).Warn("cache EXPIRE error")
	}
	if err := c.rdb.Del(ctx, profileKey(userID)).Err(); err != nil {
		log.WithError(err).Warn("cache DEL error")
	}
}
