package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// clientService implements the ClientSvcFacade interface.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates the client CRUD service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) ListClients(ctx context.Context, caller domain.Caller) ([]domain.Client, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.ListClients(ctx, orgID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients", slog.String("organization_id", orgID))
		return nil, err
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, caller domain.Caller, clientID string) (*domain.Client, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	return s.clientRepo.FindClientByID(ctx, orgID, clientID)
}

func (s *clientService) CreateClient(ctx context.Context, caller domain.Caller, req dto.CreateClientRequest) (*domain.Client, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}

	client := domain.Client{
		ClientID:       uuid.NewString(),
		OrganizationID: orgID,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Document:       req.Document,
		Notes:          req.Notes,
		AuditFields:    domain.NewAuditFields(caller.UserID, time.Now()),
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("organization_id", orgID))
		return nil, err
	}
	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, caller domain.Caller, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, orgID, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Document != nil {
		client.Document = req.Document
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}
	client.Touch(caller.UserID, time.Now())

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, caller domain.Caller, clientID string) error {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return err
	}
	if err := s.clientRepo.DeleteClient(ctx, orgID, clientID, caller.UserID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
