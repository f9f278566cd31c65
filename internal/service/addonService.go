package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	repository "github.com/scxttalex/areabooker/internal/database/postgres"
	"github.com/scxttalex/areabooker/internal/entity"
)

type addonService struct {
	addonRepo repository.AddonRepository
}

func NewAddonService(addonRepo repository.AddonRepository) AddonService {
	return &addonService{addonRepo: addonRepo}
}

func (s *addonService) CreateAddon(ctx context.Context, req *CreateAddonRequest) (*entity.Addon, error) {
	addon := &entity.Addon{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Price: req.Price,
	}

	if err := s.addonRepo.Create(ctx, addon); err != nil {
		return nil, fmt.Errorf("failed to create addon: %w", err)
	}
	return addon, nil
}

func (s *addonService) GetAddon(ctx context.Context, id string) (*entity.Addon, error) {
	addon, err := s.addonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get addon: %w", err)
	}
	return addon, nil
}

func (s *addonService) GetAllAddons(ctx context.Context) ([]*entity.Addon, error) {
	addons, err := s.addonRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addons: %w", err)
	}
	return addons, nil
}

func (s *addonService) UpdateAddon(ctx context.Context, id string, req *UpdateAddonRequest) (*entity.Addon, error) {
	addon, err := s.addonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("addon not found: %w", err)
	}

	if req.Name != nil {
		addon.Name = *req.Name
	}
	if req.Price != nil {
		addon.Price = *req.Price
	}

	if err := s.addonRepo.Update(ctx, addon); err != nil {
		return nil, fmt.Errorf("failed to update addon: %w", err)
	}
	return addon, nil
}

// DeleteAddon removes an add-on. Bookings keep their stored id; price
// estimates simply skip ids that no longer resolve.
func (s *addonService) DeleteAddon(ctx context.Context, id string) error {
	if err := s.addonRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete addon: %w", err)
	}
	return nil
}
