package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRequestTypeInput struct {
	Name  string
	Price decimal.Decimal
}

//go:generate mockgen -source=request_type_usecase.go -destination=../adapter/http/handlers/mocks/mock_request_type_usecase.go -package=mocks
type IRequestTypeUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateRequestTypeInput) (entities.RequestType, error)
	GetByID(ctx context.Context, id string) (entities.RequestType, error)
	List(ctx context.Context) ([]entities.RequestType, error)
}

// RequestTypeUseCase manages the catalog of request types and their prices.
type RequestTypeUseCase struct {
	repo  interfaces.IRequestTypeRepository
	nowFn func() time.Time
}

var _ IRequestTypeUseCase = (*RequestTypeUseCase)(nil)

func NewRequestTypeUseCase(repo interfaces.IRequestTypeRepository) *RequestTypeUseCase {
	return &RequestTypeUseCase{
		repo:  repo,
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

func (u *RequestTypeUseCase) Create(ctx context.Context, actor entities.Actor, in CreateRequestTypeInput) (entities.RequestType, error) {
	if actor.Role != entities.RoleStaff {
		return entities.RequestType{}, permissionError("only staff manage request types")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.RequestType{}, validationError("name is required")
	}
	if in.Price.IsNegative() {
		return entities.RequestType{}, validationError("price must be >= 0")
	}
	if u.repo == nil {
		return entities.RequestType{}, errors.New("request type repository not configured")
	}

	rt := entities.RequestType{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     in.Price.Round(2),
		CreatedAt: u.nowFn(),
	}
	created, err := u.repo.Create(ctx, rt)
	if err != nil {
		log.Printf("[request-type][usecase] create failed name=%q err=%v", name, err)
		return entities.RequestType{}, err
	}
	log.Printf("[request-type][usecase] create success type_id=%s price=%s", created.ID, created.Price.StringFixed(2))
	return created, nil
}

func (u *RequestTypeUseCase) GetByID(ctx context.Context, id string) (entities.RequestType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RequestType{}, validationError("type id is required")
	}
	if u.repo == nil {
		return entities.RequestType{}, errors.New("request type repository not configured")
	}
	rt, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RequestType{}, err
	}
	if rt.ID == "" {
		return entities.RequestType{}, ErrRequestTypeNotFound
	}
	return rt, nil
}

func (u *RequestTypeUseCase) List(ctx context.Context) ([]entities.RequestType, error) {
	if u.repo == nil {
		return nil, errors.New("request type repository not configured")
	}
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
