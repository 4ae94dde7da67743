// Package workflow holds the service request state machine as a pure lookup
// table. Use cases ask it whether (from, to, role) is allowed and which audit
// action the move records; nothing else in the code base branches on roles.
package workflow

import (
	"portal_servicos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type Transition struct {
	From   entities.RequestStatus
	To     entities.RequestStatus
	Role   entities.Role
	Action string
}

type key struct {
	from entities.RequestStatus
	to   entities.RequestStatus
	role entities.Role
}

var transitions = []Transition{
	{entities.RequestStatusPendingPayment, entities.RequestStatusRequested, entities.RoleSystem, entities.AuditPaymentConfirmed},
	{entities.RequestStatusPendingPayment, entities.RequestStatusPaymentUnderReview, entities.RoleSystem, entities.AuditPaymentUnderReview},
	{entities.RequestStatusPaymentUnderReview, entities.RequestStatusRequested, entities.RoleSystem, entities.AuditPaymentConfirmed},
	{entities.RequestStatusRequested, entities.RequestStatusViewed, entities.RoleStaff, entities.AuditViewed},
	{entities.RequestStatusRequested, entities.RequestStatusInProgress, entities.RoleStaff, entities.AuditResolutionStarted},
	{entities.RequestStatusViewed, entities.RequestStatusInProgress, entities.RoleStaff, entities.AuditResolutionStarted},
	{entities.RequestStatusInProgress, entities.RequestStatusInValidation, entities.RoleStaff, entities.AuditSentForValidation},
	{entities.RequestStatusInValidation, entities.RequestStatusResolved, entities.RoleClient, entities.AuditApprovedAndClosed},
	{entities.RequestStatusResolved, entities.RequestStatusRequested, entities.RoleClient, entities.AuditReopened},
}

var index = func() map[key]Transition {
	m := make(map[key]Transition, len(transitions))
	for _, t := range transitions {
		m[key{t.From, t.To, t.Role}] = t
	}
	return m
}()

// Lookup returns the transition registered for the triple.
func Lookup(from, to entities.RequestStatus, role entities.Role) (Transition, bool) {
	t, ok := index[key{from, to, role}]
	return t, ok
}

func Allowed(from, to entities.RequestStatus, role entities.Role) bool {
	_, ok := Lookup(from, to, role)
	return ok
}

// Targets lists the states role may move a request to from the given state.
// Clients use it to render the available actions.
func Targets(from entities.RequestStatus, role entities.Role) []entities.RequestStatus {
	if !from.Valid() || !role.Valid() {
		return nil
	}
	var out []entities.RequestStatus
	for _, t := range transitions {
		if t.From == from && t.Role == role {
			out = append(out, t.To)
		}
	}
	return out
}

// Table returns a copy of every registered transition.
func Table() []Transition {
	return append([]Transition(nil), transitions...)
}

// InitialState derives the creation state from the request type price.
func InitialState(price decimal.Decimal) (entities.RequestStatus, entities.PaymentStatus) {
	if price.IsPositive() {
		return entities.RequestStatusPendingPayment, entities.PaymentStatusPending
	}
	return entities.RequestStatusRequested, entities.PaymentStatusNotApplicable
}
