package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	pinHashCost = 10
)

// ClientService implements client management: creation with a generated PIN,
// paged listing with search, updates, and suspension.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// Create stores a new client with a freshly generated 6-digit PIN. The plain
// PIN is returned once so the front desk can hand it to the member; only the
// bcrypt hash is persisted.
func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*ports.CreateClientResult, error) {
	pin, err := generatePin()
	if err != nil {
		return nil, fmt.Errorf("generate pin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), pinHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}

	status := input.Status
	if status == "" {
		status = domain.ClientStatusInvited
	}

	client := &domain.Client{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     strings.ToLower(input.Email),
		Phone:     input.Phone,
		PinHash:   string(hash),
		Status:    status,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("client_id", created.ID).Msg("client created")

	return &ports.CreateClientResult{Client: created, GeneratedPin: pin}, nil
}

// List returns a page of clients, optionally filtered by a free-text search.
func (s *ClientService) List(ctx context.Context, input ports.ListClientsInput) (*ports.ClientPage, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	items, total, err := s.repo.Find(ctx, ports.ClientFilter{
		Search: strings.TrimSpace(input.Search),
		Skip:   (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	return &ports.ClientPage{
		Items: items,
		Pagination: ports.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. A changed email is lowercased the same way
// it is on creation.
func (s *ClientService) Update(ctx context.Context, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	if input.Email != nil {
		lowered := strings.ToLower(*input.Email)
		input.Email = &lowered
	}

	return s.repo.Update(ctx, id, ports.ClientUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Status:    input.Status,
	})
}

// Suspend marks a client suspended. Deleting a client never removes the
// document; payment history must stay intact.
func (s *ClientService) Suspend(ctx context.Context, id string) (*domain.Client, error) {
	suspended := domain.ClientStatusSuspended
	client, err := s.repo.Update(ctx, id, ports.ClientUpdate{Status: &suspended})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("client_id", id).Msg("client suspended")
	return client, nil
}

// generatePin returns a uniformly random 6-digit PIN (100000-999999).
func generatePin() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
