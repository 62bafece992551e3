package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gym_backend/internal/models"
	"gym_backend/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// --- Client DTOs ---
type CreateClientRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateClientNotesRequest struct {
	Notes string `json:"notes"`
}

// ActiveMembershipChecker is the part of MembershipService the client service
// needs to gate deletion.
type ActiveMembershipChecker interface {
	HasActiveMembership(ctx context.Context, clientID int64) (bool, error)
}

// --- ClientService Interface ---
type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (*models.Client, error)
	GetClientByID(ctx context.Context, clientID int64) (*models.Client, error)
	GetClientByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Client, error)
	GetClients(ctx context.Context, searchTerm *string) ([]models.Client, error)
	UpdateClientNotes(ctx context.Context, clientID int64, notes string) (*models.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

// --- clientService Implementation ---
type clientService struct {
	clientRepo  repositories.ClientRepository
	memberships ActiveMembershipChecker
	val         *validator.Validate
	now         func() time.Time
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository, memberships ActiveMembershipChecker, now func() time.Time) ClientService {
	if now == nil {
		now = time.Now
	}
	return &clientService{
		clientRepo:  repo,
		memberships: memberships,
		val:         validator.New(),
		now:         now,
	}
}

// phoneNumberRule accepts local (10 digit) and international (12 digit) numbers.
const phoneNumberRule = "required,number,len=10|len=12"

func (s *clientService) validatePhoneNumber(phoneNumber string) error {
	if err := s.val.Var(phoneNumber, phoneNumberRule); err != nil {
		return validationError("phone number must be 10 or 12 digits")
	}
	return nil
}

func (s *clientService) CreateClient(ctx context.Context, req CreateClientRequest) (*models.Client, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, validationError("full name cannot be empty")
	}
	phoneNumber := strings.TrimSpace(req.PhoneNumber)
	if err := s.validatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}

	existing, err := s.clientRepo.GetClientByPhoneNumber(ctx, phoneNumber)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, persistenceError("checking phone number uniqueness", err)
	}
	if existing != nil {
		return nil, ErrPhoneNumberExists
	}

	client := &models.Client{
		FullName:     fullName,
		PhoneNumber:  phoneNumber,
		Notes:        req.Notes,
		RegisteredAt: s.now().UTC(),
	}
	if _, err := s.clientRepo.CreateClient(ctx, nil, client); err != nil {
		// a concurrent insert can still win after the lookup
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrPhoneNumberExists
		}
		return nil, persistenceError("creating client", err)
	}
	return client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID int64) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, persistenceError("getting client", err)
	}
	return client, nil
}

func (s *clientService) GetClientByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByPhoneNumber(ctx, strings.TrimSpace(phoneNumber))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, persistenceError("getting client by phone number", err)
	}
	return client, nil
}

// GetClients lists all clients, or those whose name contains searchTerm.
func (s *clientService) GetClients(ctx context.Context, searchTerm *string) ([]models.Client, error) {
	var clients []models.Client
	var err error
	if searchTerm != nil {
		clients, err = s.clientRepo.SearchClientsByName(ctx, *searchTerm)
	} else {
		clients, err = s.clientRepo.GetClients(ctx)
	}
	if err != nil {
		return nil, persistenceError("listing clients", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClientNotes(ctx context.Context, clientID int64, notes string) (*models.Client, error) {
	if err := s.clientRepo.UpdateClientNotes(ctx, nil, clientID, notes); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, persistenceError("updating client notes", err)
	}
	return s.GetClientByID(ctx, clientID)
}

// DeleteClient removes a client unless one of their memberships is still current.
func (s *clientService) DeleteClient(ctx context.Context, clientID int64) error {
	exists, err := s.clientRepo.ClientExists(ctx, clientID)
	if err != nil {
		return persistenceError("checking client", err)
	}
	if !exists {
		return ErrClientNotFound
	}

	active, err := s.memberships.HasActiveMembership(ctx, clientID)
	if err != nil {
		return err
	}
	if active {
		return ErrClientHasActiveMembership
	}

	if err := s.clientRepo.DeleteClient(ctx, nil, clientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return persistenceError("deleting client", err)
	}
	return nil
}
