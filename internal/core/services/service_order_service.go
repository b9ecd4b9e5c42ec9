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

// serviceOrderService implements the ServiceOrderSvcFacade interface.
type serviceOrderService struct {
	BaseService
	serviceOrderRepo portsrepo.ServiceOrderRepositoryFacade
	clientRepo       portsrepo.ClientReader
}

// NewServiceOrderService creates the service-order service.
func NewServiceOrderService(
	serviceOrderRepo portsrepo.ServiceOrderRepositoryFacade,
	clientRepo portsrepo.ClientReader,
) portssvc.ServiceOrderSvcFacade {
	return &serviceOrderService{serviceOrderRepo: serviceOrderRepo, clientRepo: clientRepo}
}

var _ portssvc.ServiceOrderSvcFacade = (*serviceOrderService)(nil)

func (s *serviceOrderService) ListServiceOrders(ctx context.Context, caller domain.Caller, status *domain.ServiceOrderStatus) ([]domain.ServiceOrder, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	orders, err := s.serviceOrderRepo.ListServiceOrders(ctx, orgID, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list service orders", slog.String("organization_id", orgID))
		return nil, err
	}
	if orders == nil {
		orders = []domain.ServiceOrder{}
	}
	return orders, nil
}

func (s *serviceOrderService) GetServiceOrderByID(ctx context.Context, caller domain.Caller, serviceOrderID string) (*domain.ServiceOrder, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	return s.serviceOrderRepo.FindServiceOrderByID(ctx, orgID, serviceOrderID)
}

func (s *serviceOrderService) CreateServiceOrder(ctx context.Context, caller domain.Caller, req dto.CreateServiceOrderRequest) (*domain.ServiceOrder, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}

	// The client must exist in this organization.
	if _, err := s.clientRepo.FindClientByID(ctx, orgID, req.ClientID); err != nil {
		return nil, err
	}

	now := time.Now()
	order := domain.ServiceOrder{
		ServiceOrderID:     uuid.NewString(),
		OrganizationID:     orgID,
		ClientID:           req.ClientID,
		ProblemDescription: req.ProblemDescription,
		EstimatedValue:     req.EstimatedValue,
		Status:             domain.ServiceOrderOpen,
		OpenedAt:           now,
		AuditFields:        domain.NewAuditFields(caller.UserID, now),
	}
	if err := s.serviceOrderRepo.SaveServiceOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save service order", slog.String("organization_id", orgID))
		return nil, err
	}
	s.LogInfo(ctx, "Service order opened",
		slog.String("service_order_id", order.ServiceOrderID),
		slog.String("client_id", order.ClientID))
	return &order, nil
}

func (s *serviceOrderService) UpdateServiceOrder(ctx context.Context, caller domain.Caller, serviceOrderID string, req dto.UpdateServiceOrderRequest) (*domain.ServiceOrder, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	order, err := s.serviceOrderRepo.FindServiceOrderByID(ctx, orgID, serviceOrderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Status != nil {
		next := domain.ServiceOrderStatus(*req.Status)
		if next != order.Status {
			if !order.Status.CanTransitionTo(next) {
				return nil, fmt.Errorf("%w: cannot move service order from %s to %s",
					apperrors.ErrBusinessRule, order.Status, next)
			}
			order.Status = next
			if order.Finished() {
				order.ClosedAt = &now
			}
		}
	}
	if req.ServicesPerformed != nil {
		order.ServicesPerformed = *req.ServicesPerformed
	}
	if req.PartsUsed != nil {
		order.PartsUsed = *req.PartsUsed
	}
	if req.EstimatedValue != nil {
		order.EstimatedValue = req.EstimatedValue
	}
	if req.FinalValue != nil {
		order.FinalValue = req.FinalValue
	}
	order.Touch(caller.UserID, now)

	if err := s.serviceOrderRepo.UpdateServiceOrder(ctx, *order); err != nil {
		s.LogError(ctx, err, "Failed to update service order", slog.String("service_order_id", serviceOrderID))
		return nil, err
	}
	s.LogInfo(ctx, "Service order updated",
		slog.String("service_order_id", serviceOrderID),
		slog.String("status", string(order.Status)))
	return order, nil
}
