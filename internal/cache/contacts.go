package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContactsCache caches each user's contact-partner id list as a Redis list.
// The list is an index only; row data stays in the primary store. Writers
// invalidate on accept/remove and the next reader rebuilds it.
type ContactsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewContactsCache(rdb *redis.Client, ttl time.Duration) *ContactsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ContactsCache{rdb: rdb, ttl: ttl}
}

func (c *ContactsCache) key(userID string) string {
	return fmt.Sprintf("contacts:index:%s", userID)
}

// GetPartners returns (ids, true) on hit. An empty contact list is cached as
// a placeholder-free missing key, so empty results always fall through to the DB.
func (c *ContactsCache) GetPartners(ctx context.Context, userID string) ([]string, bool, error) {
	if c == nil || c.rdb == nil {
		return nil, false, nil
	}
	key := c.key(userID)
	exists, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return nil, false, err
	}
	if exists == 0 {
		return nil, false, nil
	}
	ids, err := c.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, false, err
	}
	return ids, true, nil
}

func (c *ContactsCache) SetPartners(ctx context.Context, userID string, ids []string) error {
	if c == nil || c.rdb == nil || len(ids) == 0 {
		return nil
	}
	key := c.key(userID)
	vals := make([]interface{}, len(ids))
	for i, id := range ids {
		vals[i] = id
	}
	pipe := c.rdb.Pipeline()
	pipe.Del(ctx, key)
	pipe.RPush(ctx, key, vals...)
	pipe.Expire(ctx, key, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Invalidate drops the cached index for every affected user.
func (c *ContactsCache) Invalidate(ctx context.Context, userIDs ...string) error {
	if c == nil || c.rdb == nil || len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = c.key(id)
	}
	return c.rdb.Del(ctx, keys...).Err()
}
