package messaging

import (
	"context"
	"encoding/json"
	"errors"

	"portal_servicos/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const NotificationsChannel = "notifications"

// NotificationPayload is the message the notification service consumes.
type NotificationPayload struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type RedisNotifier struct {
	rdb     redis.UniversalClient
	channel string
}

var _ interfaces.INotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(rdb redis.UniversalClient) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, channel: NotificationsChannel}
}

// Notify publishes one message per recipient. Every recipient is attempted;
// the returned error joins the failures.
func (n *RedisNotifier) Notify(ctx context.Context, userIDs []string, title, message string) error {
	var errs []error
	for _, id := range userIDs {
		data, err := json.Marshal(NotificationPayload{UserID: id, Title: title, Message: message})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := n.rdb.Publish(ctx, n.channel, data).Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
