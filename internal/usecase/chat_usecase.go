package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=chat_usecase.go -destination=../adapter/http/handlers/mocks/mock_chat_usecase.go -package=mocks
type IChatUseCase interface {
	Post(ctx context.Context, actor entities.Actor, requestID, text string) (entities.ServiceRequest, entities.ChatMessage, error)
}

// ChatUseCase appends messages to the request thread. Messages are never
// edited or removed.
type ChatUseCase struct {
	store    requestStore
	audience audience
	nowFn    func() time.Time
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(repo interfaces.IServiceRequestRepository, directory interfaces.IDirectory, notifier interfaces.INotifier) *ChatUseCase {
	return &ChatUseCase{
		store:    requestStore{repo: repo},
		audience: audience{notifier: notifier, directory: directory},
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *ChatUseCase) Post(ctx context.Context, actor entities.Actor, requestID, text string) (entities.ServiceRequest, entities.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.ServiceRequest{}, entities.ChatMessage{}, validationError("message text is required")
	}
	if actor.Role != entities.RoleClient && actor.Role != entities.RoleStaff {
		return entities.ServiceRequest{}, entities.ChatMessage{}, permissionError("role %q cannot post messages", actor.Role)
	}
	r, err := u.store.loadForWrite(ctx, actor, requestID)
	if err != nil {
		return entities.ServiceRequest{}, entities.ChatMessage{}, err
	}

	readVersion := r.Version
	now := u.nowFn()
	msg := entities.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    actor.DisplayName(),
		Role:      actor.Role,
		Text:      text,
		Timestamp: now,
	}
	r.Chat = append(r.Chat, msg)
	r.AppendAudit(newAuditEntry(entities.AuditMessagePosted+msg.Sender, actor, msg.ID, now))

	saved, err := u.store.save(ctx, r, readVersion)
	if err != nil {
		return entities.ServiceRequest{}, entities.ChatMessage{}, err
	}
	log.Printf("[chat][usecase] post success request_id=%s message_id=%s role=%s", saved.ID, msg.ID, msg.Role)

	if actor.Role == entities.RoleClient {
		u.audience.toStaff(ctx, saved, "New message on "+saved.Protocol, text)
	} else {
		u.audience.toClient(ctx, saved, "New message on "+saved.Protocol, text)
	}
	return saved, msg, nil
}
