package messaging

import (
	"context"
	"log"

	"portal_servicos/internal/usecase/interfaces"
)

// LogNotifier stands in for the notification service when Redis is not
// configured.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Notify(_ context.Context, userIDs []string, title, message string) error {
	for _, id := range userIDs {
		log.Printf("[notification][log] user_id=%s title=%q message=%q", id, title, message)
	}
	return nil
}
