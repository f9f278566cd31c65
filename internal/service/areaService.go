package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	repository "github.com/scxttalex/areabooker/internal/database/postgres"
	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

type areaService struct {
	areaRepo    repository.AreaRepository
	invalidator DashboardInvalidator
}

func NewAreaService(areaRepo repository.AreaRepository, invalidator DashboardInvalidator) AreaService {
	return &areaService{areaRepo: areaRepo, invalidator: invalidator}
}

func (s *areaService) CreateArea(ctx context.Context, req *CreateAreaRequest) (*entity.Area, error) {
	if err := validateOperatingHours(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	area := &entity.Area{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		BasePrice:     req.BasePrice,
		OpenTime:      req.OpenTime,
		CloseTime:     req.CloseTime,
		GuestCapacity: req.GuestCapacity,
	}

	if err := s.areaRepo.Create(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to create area: %w", err)
	}

	logrus.WithField("area_id", area.ID).Info("Area created")
	return area, nil
}

func (s *areaService) GetArea(ctx context.Context, id string) (*entity.Area, error) {
	area, err := s.areaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get area: %w", err)
	}
	return area, nil
}

func (s *areaService) GetAllAreas(ctx context.Context) ([]*entity.Area, error) {
	areas, err := s.areaRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return areas, nil
}

func (s *areaService) UpdateArea(ctx context.Context, id string, req *UpdateAreaRequest) (*entity.Area, error) {
	area, err := s.areaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("area not found: %w", err)
	}

	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.Description != nil {
		area.Description = *req.Description
	}
	if req.BasePrice != nil {
		area.BasePrice = *req.BasePrice
	}
	if req.OpenTime != nil {
		area.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		area.CloseTime = *req.CloseTime
	}
	if req.GuestCapacity != nil {
		area.GuestCapacity = *req.GuestCapacity
	}

	if err := validateOperatingHours(area.OpenTime, area.CloseTime); err != nil {
		return nil, err
	}

	if err := s.areaRepo.Update(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to update area: %w", err)
	}

	s.invalidate(ctx)
	return area, nil
}

func (s *areaService) DeleteArea(ctx context.Context, id string) error {
	if err := s.areaRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// validateOperatingHours requires well-formed clocks with open strictly
// before close. Existing bookings are not revalidated on hour changes.
func validateOperatingHours(openTime, closeTime string) error {
	openH, openM, ok := timeutil.ParseClock(openTime)
	if !ok {
		return fmt.Errorf("%w: bad open time %q", entity.ErrInvalidHours, openTime)
	}
	closeH, closeM, ok := timeutil.ParseClock(closeTime)
	if !ok {
		return fmt.Errorf("%w: bad close time %q", entity.ErrInvalidHours, closeTime)
	}
	if openH*60+openM >= closeH*60+closeM {
		return fmt.Errorf("%w: open %s is not before close %s", entity.ErrInvalidHours, openTime, closeTime)
	}
	return nil
}

func (s *areaService) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateDashboards(ctx); err != nil {
		logrus.Warnf("Failed to invalidate dashboard cache: %v", err)
	}
}
