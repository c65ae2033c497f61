package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Availability responses are cached briefly; every booking write for a date
// drops that date's keys, so the TTL only bounds staleness across processes.
const slotsTTL = 30 * time.Second

func slotsKey(date string, serviceID uint) string {
	return fmt.Sprintf("slots:%s:%d", date, serviceID)
}

// CachedSlots returns the cached slot list for a date and service, if any.
func CachedSlots(date string, serviceID uint) ([]string, bool) {
	data, err := Client.Get(Ctx, slotsKey(date, serviceID)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// CacheSlots stores a slot list. Failures are logged, never propagated; the
// cache is an optimization, not a source of truth.
func CacheSlots(date string, serviceID uint, slots []string) {
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := Client.Set(Ctx, slotsKey(date, serviceID), data, slotsTTL).Err(); err != nil {
		log.Printf("Failed to cache slots for %s: %v", date, err)
	}
}

// InvalidateSlots drops every cached slot list for a date, across services.
func InvalidateSlots(date string) {
	keys, err := Client.Keys(Ctx, fmt.Sprintf("slots:%s:*", date)).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := Client.Del(Ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate slot cache for %s: %v", date, err)
	}
}
