package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "parklot/internal/errors"
	"parklot/internal/model"
	"parklot/internal/repository"
)

// VehicleService exposes vehicle CRUD operations.
type VehicleService interface {
	CreateVehicle(ctx context.Context, plate, vehicleModel, color string, accountID uint) (*model.Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (*model.Vehicle, error)
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	ListVehiclesByAccount(ctx context.Context, accountID uint) ([]model.Vehicle, error)
	UpdateVehicle(ctx context.Context, id uint, plate, vehicleModel, color string, accountID uint) (*model.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uint) error
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	accountRepo repository.AccountRepository
}

// NewVehicleService builds a VehicleService.
func NewVehicleService(vehicleRepo repository.VehicleRepository, accountRepo repository.AccountRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, accountRepo: accountRepo}
}

// checkAccountExists verifies the referenced owner before writing, so the
// caller gets "account not found" instead of a foreign key failure.
func (s *vehicleService) checkAccountExists(ctx context.Context, accountID uint) error {
	if _, err := s.accountRepo.FindByID(ctx, accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return fmt.Errorf("check account: %w", err)
	}
	return nil
}

// CreateVehicle validates the plate, checks the owner and persists the vehicle.
func (s *vehicleService) CreateVehicle(ctx context.Context, plate, vehicleModel, color string, accountID uint) (*model.Vehicle, error) {
	normalized, err := normalizePlate(plate)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccountExists(ctx, accountID); err != nil {
		return nil, err
	}

	vehicle := &model.Vehicle{
		Plate:     normalized,
		Model:     vehicleModel,
		Color:     color,
		AccountID: &accountID,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicatePlate
		}
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

// GetVehicle returns one vehicle with its owner.
func (s *vehicleService) GetVehicle(ctx context.Context, id uint) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return vehicle, nil
}

// ListVehicles lists all vehicles with their owners.
func (s *vehicleService) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

// ListVehiclesByAccount lists the vehicles owned by one account.
func (s *vehicleService) ListVehiclesByAccount(ctx context.Context, accountID uint) ([]model.Vehicle, error) {
	return s.vehicleRepo.ListByAccount(ctx, accountID)
}

// UpdateVehicle validates input and rewrites the vehicle record.
func (s *vehicleService) UpdateVehicle(ctx context.Context, id uint, plate, vehicleModel, color string, accountID uint) (*model.Vehicle, error) {
	normalized, err := normalizePlate(plate)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}

	if err := s.checkAccountExists(ctx, accountID); err != nil {
		return nil, err
	}

	vehicle.Plate = normalized
	vehicle.Model = vehicleModel
	vehicle.Color = color
	vehicle.AccountID = &accountID
	vehicle.Account = nil

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicatePlate
		}
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle after an existence check.
func (s *vehicleService) DeleteVehicle(ctx context.Context, id uint) error {
	if _, err := s.vehicleRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVehicleNotFound
		}
		return fmt.Errorf("find vehicle: %w", err)
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}
