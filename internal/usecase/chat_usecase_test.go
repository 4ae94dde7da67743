package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portal_servicos/internal/domain/entities"
	mock_interfaces "portal_servicos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChatUseCase_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("client message notifies staff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		r := env.create(t, freeType.ID)
		dir := mock_interfaces.NewMockIDirectory(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewChatUseCase(env.repo, dir, notifier)
		uc.nowFn = func() time.Time { return testNow }

		dir.EXPECT().ListStaff(gomock.Any(), "company-1").Return([]string{"staff-1", "staff-2"}, nil)
		notifier.EXPECT().Notify(gomock.Any(), []string{"staff-1", "staff-2"}, "New message on "+r.Protocol, "Bom dia").Return(nil)

		saved, msg, err := uc.Post(ctx, testClient, r.ID, "  Bom dia ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg.Text != "Bom dia" || msg.Sender != "Ana" || msg.Role != entities.RoleClient {
			t.Fatalf("unexpected message %+v", msg)
		}
		if len(saved.Chat) != 1 || lastAudit(saved).Action != entities.AuditMessagePosted+"Ana" {
			t.Fatalf("unexpected request %+v", saved)
		}
	})

	t.Run("staff message notifies the client and survives notifier failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		r := env.create(t, freeType.ID)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewChatUseCase(env.repo, nil, notifier)

		notifier.EXPECT().Notify(gomock.Any(), []string{testClient.ID}, gomock.Any(), "Documento recebido").Return(errors.New("redis down"))

		saved, _, err := uc.Post(ctx, testStaff, r.ID, "Documento recebido")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved.Chat) != 1 || saved.Chat[0].Role != entities.RoleStaff {
			t.Fatalf("unexpected chat %+v", saved.Chat)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		env := newTestEnv(t)
		r := env.create(t, freeType.ID)
		uc := NewChatUseCase(env.repo, nil, nil)

		if _, _, err := uc.Post(ctx, testClient, r.ID, "   "); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if _, _, err := uc.Post(ctx, otherClient, r.ID, "oi"); !errors.Is(err, ErrPermission) {
			t.Fatalf("expected ErrPermission, got %v", err)
		}
		if _, _, err := uc.Post(ctx, entities.SystemActor, r.ID, "oi"); !errors.Is(err, ErrPermission) {
			t.Fatalf("expected ErrPermission, got %v", err)
		}
		if _, err := env.uc.SoftDelete(ctx, testStaff, r.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, _, err := uc.Post(ctx, testClient, r.ID, "oi"); !errors.Is(err, ErrRequestDeleted) {
			t.Fatalf("expected ErrRequestDeleted, got %v", err)
		}
	})
}
