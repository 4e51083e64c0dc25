package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// AvailabilityCache keeps computed slot lists hot in Redis. Each day has a
// version counter; any booking mutation bumps it, which invalidates every
// service's cached availability for that day at once (a new booking
// changes availability for all durations, not just the booked service).
//
// A nil cache is valid and turns every call into a no-op, so the API runs
// unchanged without Redis.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string) *AvailabilityCache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable (%v), availability cache disabled", err)
		return nil
	}

	return &AvailabilityCache{
		rdb: rdb,
		ttl: 5 * time.Minute,
	}
}

func (c *AvailabilityCache) dayVersion(ctx context.Context, date string) int64 {
	v, err := c.rdb.Get(ctx, "avail:ver:"+date).Int64()
	if err != nil {
		return 0
	}
	return v
}

// The service duration is part of the key, so editing a service's length
// orphans the old entry instead of serving it until the TTL runs out.
func (c *AvailabilityCache) slotKey(ctx context.Context, date string, serviceID uint, durationMin int) string {
	return fmt.Sprintf("avail:%s:v%d:svc:%d:d%d", date, c.dayVersion(ctx, date), serviceID, durationMin)
}

func (c *AvailabilityCache) GetSlots(ctx context.Context, date string, serviceID uint, durationMin int) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.slotKey(ctx, date, serviceID, durationMin)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) SetSlots(ctx context.Context, date string, serviceID uint, durationMin int, slots []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, c.slotKey(ctx, date, serviceID, durationMin), raw, c.ttl).Err(); err != nil {
		log.Println("availability cache set error:", err)
	}
}

// InvalidateDay bumps the day's version so stale entries simply expire.
func (c *AvailabilityCache) InvalidateDay(ctx context.Context, date string) {
	if c == nil {
		return
	}

	key := "avail:ver:" + date
	if err := c.rdb.Incr(ctx, key).Err(); err != nil {
		log.Println("availability cache invalidate error:", err)
		return
	}
	c.rdb.Expire(ctx, key, 48*time.Hour)
}
