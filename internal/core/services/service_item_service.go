package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// serviceItemService implements the ServiceItemSvcFacade interface.
type serviceItemService struct {
	BaseService
	serviceItemRepo portsrepo.ServiceItemRepositoryFacade
}

// NewServiceItemService creates the catalog service.
func NewServiceItemService(serviceItemRepo portsrepo.ServiceItemRepositoryFacade) portssvc.ServiceItemSvcFacade {
	return &serviceItemService{serviceItemRepo: serviceItemRepo}
}

var _ portssvc.ServiceItemSvcFacade = (*serviceItemService)(nil)

func (s *serviceItemService) ListServiceItems(ctx context.Context, caller domain.Caller, activeOnly bool) ([]domain.ServiceItem, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	items, err := s.serviceItemRepo.ListServiceItems(ctx, orgID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list catalog items", slog.String("organization_id", orgID))
		return nil, err
	}
	if items == nil {
		items = []domain.ServiceItem{}
	}
	return items, nil
}

func (s *serviceItemService) GetServiceItemByID(ctx context.Context, caller domain.Caller, serviceItemID string) (*domain.ServiceItem, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	return s.serviceItemRepo.FindServiceItemByID(ctx, orgID, serviceItemID)
}

func (s *serviceItemService) CreateServiceItem(ctx context.Context, caller domain.Caller, req dto.CreateServiceItemRequest) (*domain.ServiceItem, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	if req.DefaultPrice.IsNegative() {
		return nil, fmt.Errorf("%w: default price cannot be negative", apperrors.ErrValidation)
	}

	item := domain.ServiceItem{
		ServiceItemID:  uuid.NewString(),
		OrganizationID: orgID,
		Name:           req.Name,
		Description:    req.Description,
		DefaultPrice:   req.DefaultPrice,
		Active:         true,
		AuditFields:    domain.NewAuditFields(caller.UserID, time.Now()),
	}
	if err := s.serviceItemRepo.SaveServiceItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save catalog item", slog.String("organization_id", orgID))
		return nil, err
	}
	s.LogInfo(ctx, "Catalog item created", slog.String("service_item_id", item.ServiceItemID))
	return &item, nil
}

func (s *serviceItemService) UpdateServiceItem(ctx context.Context, caller domain.Caller, serviceItemID string, req dto.UpdateServiceItemRequest) (*domain.ServiceItem, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	item, err := s.serviceItemRepo.FindServiceItemByID(ctx, orgID, serviceItemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.DefaultPrice != nil {
		if req.DefaultPrice.IsNegative() {
			return nil, fmt.Errorf("%w: default price cannot be negative", apperrors.ErrValidation)
		}
		item.DefaultPrice = *req.DefaultPrice
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	item.Touch(caller.UserID, time.Now())

	if err := s.serviceItemRepo.UpdateServiceItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update catalog item", slog.String("service_item_id", serviceItemID))
		return nil, err
	}
	return item, nil
}

func (s *serviceItemService) DeleteServiceItem(ctx context.Context, caller domain.Caller, serviceItemID string) error {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return err
	}
	if err := s.serviceItemRepo.DeleteServiceItem(ctx, orgID, serviceItemID, caller.UserID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Catalog item deleted", slog.String("service_item_id", serviceItemID))
	return nil
}
