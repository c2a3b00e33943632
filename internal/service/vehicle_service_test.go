package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "parklot/internal/errors"
	"parklot/internal/model"
)

func TestVehicleService_CreateVehicle(t *testing.T) {
	tests := []struct {
		name          string
		plate         string
		vehicleModel  string
		color         string
		accountID     uint
		setupMock     func(*MockVehicleRepository, *MockAccountRepository)
		expectedError error
		expectedPlate string
	}{
		{
			name:         "successful creation normalizes the plate",
			plate:        "abc1d23",
			vehicleModel: "Fiat Argo",
			color:        "prata",
			accountID:    1,
			setupMock: func(mv *MockVehicleRepository, ma *MockAccountRepository) {
				ma.On("FindByID", mock.Anything, uint(1)).Return(&model.Account{ID: 1}, nil)
				mv.On("Create", mock.Anything, mock.AnythingOfType("*model.Vehicle")).Return(nil)
			},
			expectedPlate: "ABC1D23",
		},
		{
			name:          "invalid plate",
			plate:         "AB1234",
			vehicleModel:  "Fiat Argo",
			color:         "prata",
			accountID:     1,
			setupMock:     func(mv *MockVehicleRepository, ma *MockAccountRepository) {},
			expectedError: apperrors.ErrInvalidPlate,
		},
		{
			name:         "owner account missing",
			plate:        "ABC1D23",
			vehicleModel: "Fiat Argo",
			color:        "prata",
			accountID:    9,
			setupMock: func(mv *MockVehicleRepository, ma *MockAccountRepository) {
				ma.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrAccountNotFound,
		},
		{
			name:         "duplicate plate",
			plate:        "ABC1D23",
			vehicleModel: "Fiat Argo",
			color:        "prata",
			accountID:    1,
			setupMock: func(mv *MockVehicleRepository, ma *MockAccountRepository) {
				ma.On("FindByID", mock.Anything, uint(1)).Return(&model.Account{ID: 1}, nil)
				mv.On("Create", mock.Anything, mock.AnythingOfType("*model.Vehicle")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicatePlate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockVehicleRepo := new(MockVehicleRepository)
			mockAccountRepo := new(MockAccountRepository)
			tt.setupMock(mockVehicleRepo, mockAccountRepo)

			svc := NewVehicleService(mockVehicleRepo, mockAccountRepo)
			vehicle, err := svc.CreateVehicle(context.Background(), tt.plate, tt.vehicleModel, tt.color, tt.accountID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, vehicle)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPlate, vehicle.Plate)
				assert.Equal(t, tt.vehicleModel, vehicle.Model)
				assert.NotNil(t, vehicle.AccountID)
				assert.Equal(t, tt.accountID, *vehicle.AccountID)
			}

			mockVehicleRepo.AssertExpectations(t)
			mockAccountRepo.AssertExpectations(t)
		})
	}
}

func TestVehicleService_UpdateVehicle(t *testing.T) {
	t.Run("update checks the new owner", func(t *testing.T) {
		mockVehicleRepo := new(MockVehicleRepository)
		mockAccountRepo := new(MockAccountRepository)
		mockVehicleRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Vehicle{
			ID:    1,
			Plate: "ABC1D23",
			Model: "Fiat Argo",
			Color: "prata",
		}, nil)
		mockAccountRepo.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewVehicleService(mockVehicleRepo, mockAccountRepo)
		vehicle, err := svc.UpdateVehicle(context.Background(), 1, "ABC1D23", "Fiat Argo", "preto", 2)

		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
		assert.Nil(t, vehicle)
		mockVehicleRepo.AssertNotCalled(t, "Update")
	})

	t.Run("update missing vehicle", func(t *testing.T) {
		mockVehicleRepo := new(MockVehicleRepository)
		mockAccountRepo := new(MockAccountRepository)
		mockVehicleRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewVehicleService(mockVehicleRepo, mockAccountRepo)
		vehicle, err := svc.UpdateVehicle(context.Background(), 9, "ABC1D23", "Fiat Argo", "preto", 1)

		assert.ErrorIs(t, err, apperrors.ErrVehicleNotFound)
		assert.Nil(t, vehicle)
	})
}

func TestVehicleService_DeleteVehicle(t *testing.T) {
	t.Run("delete missing", func(t *testing.T) {
		mockVehicleRepo := new(MockVehicleRepository)
		mockAccountRepo := new(MockAccountRepository)
		mockVehicleRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewVehicleService(mockVehicleRepo, mockAccountRepo)
		assert.ErrorIs(t, svc.DeleteVehicle(context.Background(), 9), apperrors.ErrVehicleNotFound)
		mockVehicleRepo.AssertNotCalled(t, "Delete")
	})
}
