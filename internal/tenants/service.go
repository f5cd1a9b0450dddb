package tenants

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	CreateTenant(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error)
	GetTenant(ctx context.Context, id uuid.UUID) (*TenantResponse, error)
	GetAllTenants(ctx context.Context) ([]TenantResponse, error)
	UpdateTenant(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error)
	DeleteTenant(ctx context.Context, id uuid.UUID) error
	VerifyAPIKey(ctx context.Context, id uuid.UUID, apiKey string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateTenant issues a random API key and stores only its bcrypt hash.
// The plaintext key is returned exactly once in the response.
func (s *service) CreateTenant(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	apiKey, err := generateAPIKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash api key: %w", err)
	}

	tenant := &Tenant{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		APIKeyHash:   string(hash),
		Active:       true,
	}
	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	resp := tenant.ToResponse(apiKey)
	return &resp, nil
}

func (s *service) GetTenant(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := tenant.ToResponse("")
	return &resp, nil
}

func (s *service) GetAllTenants(ctx context.Context) ([]TenantResponse, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]TenantResponse, 0, len(list))
	for i := range list {
		responses = append(responses, list[i].ToResponse(""))
	}
	return responses, nil
}

func (s *service) UpdateTenant(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.ContactEmail != nil {
		tenant.ContactEmail = *req.ContactEmail
	}
	if req.Active != nil {
		tenant.Active = *req.Active
	}
	if err := s.repo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	resp := tenant.ToResponse("")
	return &resp, nil
}

func (s *service) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) VerifyAPIKey(ctx context.Context, id uuid.UUID, apiKey string) (bool, error) {
	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !tenant.Active {
		return false, nil
	}
	err = bcrypt.CompareHashAndPassword([]byte(tenant.APIKeyHash), []byte(apiKey))
	return err == nil, nil
}

func generateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "sgk_" + hex.EncodeToString(buf), nil
}
