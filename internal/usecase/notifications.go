package usecase

import (
	"context"
	"log"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"
)

// audience sends best-effort notifications about a request to its client or to
// the staff of its company. Failures are logged and swallowed.
type audience struct {
	notifier  interfaces.INotifier
	directory interfaces.IDirectory
}

func (a audience) toClient(ctx context.Context, r entities.ServiceRequest, title, message string) {
	if a.notifier == nil || r.ClientID == "" {
		return
	}
	if err := a.notifier.Notify(ctx, []string{r.ClientID}, title, message); err != nil {
		log.Printf("[request][notify] client notification failed request_id=%s err=%v", r.ID, err)
	}
}

func (a audience) toStaff(ctx context.Context, r entities.ServiceRequest, title, message string) {
	if a.notifier == nil || a.directory == nil {
		return
	}
	staff, err := a.directory.ListStaff(ctx, r.CompanyID)
	if err != nil {
		log.Printf("[request][notify] staff lookup failed request_id=%s company_id=%s err=%v", r.ID, r.CompanyID, err)
		return
	}
	if len(staff) == 0 {
		return
	}
	if err := a.notifier.Notify(ctx, staff, title, message); err != nil {
		log.Printf("[request][notify] staff notification failed request_id=%s err=%v", r.ID, err)
	}
}

// afterTransition tells the other side of the conversation about a move.
func (a audience) afterTransition(ctx context.Context, actor entities.Actor, r entities.ServiceRequest) {
	title := "Request " + r.Protocol + " updated"
	message := "Status changed to " + string(r.Status)
	if actor.Role == entities.RoleClient {
		a.toStaff(ctx, r, title, message)
		return
	}
	a.toClient(ctx, r, title, message)
}
