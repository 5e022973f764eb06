package service

import (
	"context"
	"errors"
	"fmt"

	"sellos/internal/repository"

	"gorm.io/gorm"
)

// --- DTOs ---

// PartyResponse is the read-only display data of a buyer or seller
type PartyResponse struct {
	CUIT    string `json:"cuit"`
	Name    string `json:"name"`
	Label   string `json:"label"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type RegistryResponse struct {
	CUIT               string `json:"cuit"`
	DistrictCode       string `json:"district_code"`
	NextStampNo        int64  `json:"next_stamp_no"`
	NextPresentationNo int64  `json:"next_presentation_no"`
}

// --- Interface ---

type PartyService interface {
	Resolve(ctx context.Context, cuit string) (PartyResponse, error)
	Registry(ctx context.Context, cuit string) (RegistryResponse, error)
	Search(ctx context.Context, search string, page, limit int) ([]PartyResponse, int64, error)
}

type partyService struct {
	clientRepo repository.ClientRepository
}

func NewPartyService(clientRepo repository.ClientRepository) PartyService {
	return &partyService{clientRepo: clientRepo}
}

// --- Implementation ---

func (s *partyService) Resolve(ctx context.Context, cuit string) (PartyResponse, error) {
	if !validCUIT(cuit) {
		return PartyResponse{}, ErrInvalidCUIT
	}

	client, err := s.clientRepo.FindByCUIT(ctx, cuit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PartyResponse{}, fmt.Errorf("%w: %s", ErrPartyNotFound, cuit)
		}
		return PartyResponse{}, fmt.Errorf("failed to fetch client: %w", err)
	}

	return PartyResponse{
		CUIT:    client.CUIT,
		Name:    client.BusinessName,
		Label:   client.Label(),
		Address: client.Address,
		City:    client.City,
		Phone:   client.Phone,
		Email:   client.Email,
	}, nil
}

func (s *partyService) Registry(ctx context.Context, cuit string) (RegistryResponse, error) {
	if !validCUIT(cuit) {
		return RegistryResponse{}, ErrInvalidCUIT
	}

	reg, err := s.clientRepo.FindRegistry(ctx, cuit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RegistryResponse{}, fmt.Errorf("%w: %s", ErrRegistryNotFound, cuit)
		}
		return RegistryResponse{}, fmt.Errorf("failed to fetch registry: %w", err)
	}

	return RegistryResponse{
		CUIT:               reg.CUIT,
		DistrictCode:       reg.DistrictCode,
		NextStampNo:        reg.NextStampNo,
		NextPresentationNo: reg.NextPresentationNo,
	}, nil
}

func (s *partyService) Search(ctx context.Context, search string, page, limit int) ([]PartyResponse, int64, error) {
	clients, total, err := s.clientRepo.Search(ctx, search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search clients: %w", err)
	}

	res := make([]PartyResponse, 0, len(clients))
	for _, c := range clients {
		res = append(res, PartyResponse{
			CUIT:    c.CUIT,
			Name:    c.BusinessName,
			Label:   c.Label(),
			Address: c.Address,
			City:    c.City,
		})
	}
	return res, total, nil
}
