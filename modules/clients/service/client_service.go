package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	coreentity "github.com/darkr4m/actually-star-k9/core/entity"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/logger"
	"github.com/darkr4m/actually-star-k9/core/params"
	"github.com/darkr4m/actually-star-k9/modules/clients/dto"
	"github.com/darkr4m/actually-star-k9/modules/clients/entity"
	"github.com/darkr4m/actually-star-k9/modules/clients/repository"

	"github.com/google/uuid"
)

type ClientService interface {
	CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*entity.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	ListClients(ctx context.Context, qp *params.QueryParams) (*coreentity.Pagination[*entity.Client], error)
	UpdateClient(ctx context.Context, id uuid.UUID, req *dto.UpdateClientRequest) (*entity.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error

	AddAddress(ctx context.Context, clientID uuid.UUID, req *dto.AddressRequest) (*entity.Address, error)
	RemoveAddress(ctx context.Context, clientID, addressID uuid.UUID) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*entity.Client, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetClientByEmail(ctx, email)
	if err != nil {
		logger.Error("ClientService:CreateClient:Lookup", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing client", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "a client with this email already exists", nil)
	}

	client, err := s.repo.CreateClient(ctx, &entity.Client{
		FirstName:             strings.TrimSpace(req.FirstName),
		LastName:              strings.TrimSpace(req.LastName),
		Email:                 email,
		PhoneNumber:           strings.TrimSpace(req.PhoneNumber),
		EmergencyContactName:  strings.TrimSpace(req.EmergencyContactName),
		EmergencyContactPhone: strings.TrimSpace(req.EmergencyContactPhone),
	})
	if err != nil {
		logger.Error("ClientService:CreateClient:Create", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create client", err)
	}

	logger.Info("ClientService:CreateClient:Success", "clientId", client.ID)
	return client, nil
}

// GetClient loads a client with its addresses attached.
func (s *clientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.repo.GetClientByID(ctx, id)
	if err != nil {
		logger.Error("ClientService:GetClient:Lookup", "error", err, "clientId", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load client", err)
	}
	if client == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "client not found", nil)
	}

	addresses, err := s.repo.ListAddresses(ctx, id)
	if err != nil {
		logger.Error("ClientService:GetClient:Addresses", "error", err, "clientId", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load addresses", err)
	}
	client.Addresses = addresses
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, qp *params.QueryParams) (*coreentity.Pagination[*entity.Client], error) {
	clients, total, err := s.repo.ListClients(ctx, qp)
	if err != nil {
		logger.Error("ClientService:ListClients:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list clients", err)
	}
	return &coreentity.Pagination[*entity.Client]{
		Items:      clients,
		TotalItems: total,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id uuid.UUID, req *dto.UpdateClientRequest) (*entity.Client, error) {
	client, err := s.repo.GetClientByID(ctx, id)
	if err != nil {
		logger.Error("ClientService:UpdateClient:Lookup", "error", err, "clientId", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load client", err)
	}
	if client == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "client not found", nil)
	}

	if req.FirstName != nil {
		client.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		client.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.PhoneNumber != nil {
		client.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.EmergencyContactName != nil {
		client.EmergencyContactName = strings.TrimSpace(*req.EmergencyContactName)
	}
	if req.EmergencyContactPhone != nil {
		client.EmergencyContactPhone = strings.TrimSpace(*req.EmergencyContactPhone)
	}

	updated, err := s.repo.UpdateClient(ctx, client)
	if err != nil {
		logger.Error("ClientService:UpdateClient:Update", "error", err, "clientId", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update client", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "client not found", nil)
	}

	logger.Info("ClientService:UpdateClient:Success", "clientId", id)
	return updated, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteClient(ctx, id); err != nil {
		if isNoRows(err) {
			return errors.NewAppError(errors.ErrNotFound, "client not found", nil)
		}
		logger.Error("ClientService:DeleteClient:Error", "error", err, "clientId", id)
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete client", err)
	}
	logger.Info("ClientService:DeleteClient:Success", "clientId", id)
	return nil
}

func (s *clientService) AddAddress(ctx context.Context, clientID uuid.UUID, req *dto.AddressRequest) (*entity.Address, error) {
	client, err := s.repo.GetClientByID(ctx, clientID)
	if err != nil {
		logger.Error("ClientService:AddAddress:Lookup", "error", err, "clientId", clientID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load client", err)
	}
	if client == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "client not found", nil)
	}

	addressType := entity.AddressType(req.AddressType)
	if req.AddressType == "" {
		addressType = entity.AddressTypePhysical
	}
	country := strings.ToUpper(strings.TrimSpace(req.Country))
	if country == "" {
		country = "US"
	}

	address, err := s.repo.CreateAddress(ctx, &entity.Address{
		ClientID:       clientID,
		AddressType:    addressType,
		StreetAddress1: strings.TrimSpace(req.StreetAddress1),
		StreetAddress2: strings.TrimSpace(req.StreetAddress2),
		City:           strings.TrimSpace(req.City),
		StateProvince:  strings.TrimSpace(req.StateProvince),
		PostalCode:     strings.TrimSpace(req.PostalCode),
		Country:        country,
	})
	if err != nil {
		logger.Error("ClientService:AddAddress:Create", "error", err, "clientId", clientID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create address", err)
	}

	logger.Info("ClientService:AddAddress:Success", "clientId", clientID, "addressId", address.ID)
	return address, nil
}

func isNoRows(err error) bool {
	return stderrors.Is(err, sql.ErrNoRows)
}

func (s *clientService) RemoveAddress(ctx context.Context, clientID, addressID uuid.UUID) error {
	if err := s.repo.DeleteAddress(ctx, clientID, addressID); err != nil {
		if isNoRows(err) {
			return errors.NewAppError(errors.ErrNotFound, "address not found", nil)
		}
		logger.Error("ClientService:RemoveAddress:Error", "error", err, "clientId", clientID)
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete address", err)
	}
	return nil
}
