package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	eventChannelPrefix = "dash:events:company:" // Pub/Sub channel: dash:events:company:{company_id}
	recentKeyPrefix    = "dash:notifications:"  // Capped list of recent notifications: dash:notifications:{company_id}
	recentTTL          = 7 * 24 * time.Hour
)

// RedisNotifier publishes notifications on a per-company channel and keeps
// the newest RecentLimit of them in a list.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func (n *RedisNotifier) Notify(ctx context.Context, msg Notification) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := RecentKey(msg.CompanyID)

	pipe := n.client.Pipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, RecentLimit-1)
	pipe.Expire(ctx, key, recentTTL)
	pipe.Publish(ctx, Channel(msg.CompanyID), data)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

// Recent returns the newest notifications first.
func (n *RedisNotifier) Recent(ctx context.Context, companyID int) ([]Notification, error) {
	items, err := n.client.LRange(ctx, RecentKey(companyID), 0, RecentLimit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]Notification, 0, len(items))
	for _, raw := range items {
		var msg Notification
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
		}
		out = append(out, msg)
	}
	return out, nil
}

// Channel is the Pub/Sub channel carrying a company's notifications.
func Channel(companyID int) string {
	return fmt.Sprintf("%s%d", eventChannelPrefix, companyID)
}

func RecentKey(companyID int) string {
	return fmt.Sprintf("%s%d", recentKeyPrefix, companyID)
}
