package repository

import (
	"context"

	"gorm.io/gorm"

	"parklot/internal/model"
)

// VehicleRepository defines vehicle persistence operations.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	ListByAccount(ctx context.Context, accountID uint) ([]model.Vehicle, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository.
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create creates a new vehicle.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

// Update updates an existing vehicle.
func (r *vehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

// Delete removes a vehicle.
func (r *vehicleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Vehicle{}, id).Error
}

// FindByID finds a vehicle by ID, including its owner.
func (r *vehicleRepository) FindByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).Preload("Account").Where("id = ?", id).First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// List lists all vehicles with their owners.
func (r *vehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).Preload("Account").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ListByAccount lists the vehicles owned by one account.
func (r *vehicleRepository) ListByAccount(ctx context.Context, accountID uint) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}
