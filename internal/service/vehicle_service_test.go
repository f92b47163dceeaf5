package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"wittycar/internal/errors"
	"wittycar/internal/model"
)

func TestVehicleService_CreateVehicle(t *testing.T) {
	tests := []struct {
		name         string
		in           VehicleInput
		setupMock    func(*MockVehicleRepository)
		expectedKind errors.Kind
		check        func(*testing.T, *model.Vehicle)
	}{
		{
			name: "plate is normalized on create",
			in:   VehicleInput{Plate: "  ab-123 ", Brand: "Toyota", Model: "Corolla", Year: 2020, Mileage: 1000},
			setupMock: func(m *MockVehicleRepository) {
				m.On("FindByPlate", mock.Anything, "user-1", "AB-123").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Vehicle")).Return(nil)
			},
			check: func(t *testing.T, vehicle *model.Vehicle) {
				assert.Equal(t, "AB-123", vehicle.Plate)
				assert.Equal(t, "Toyota", vehicle.Brand)
				assert.Equal(t, "Corolla", vehicle.Model)
				assert.Equal(t, 2020, vehicle.Year)
				assert.Equal(t, 1000, vehicle.Mileage)
				assert.Equal(t, "user-1", vehicle.UserID)
			},
		},
		{
			name: "duplicate plate for the same user",
			in:   VehicleInput{Plate: "AB-123", Brand: "Toyota", Model: "Corolla", Year: 2020, Mileage: 1000},
			setupMock: func(m *MockVehicleRepository) {
				m.On("FindByPlate", mock.Anything, "user-1", "AB-123").
					Return(&model.Vehicle{ID: "other", UserID: "user-1", Plate: "AB-123"}, nil)
			},
			expectedKind: errors.KindConflict,
		},
		{
			name:         "missing required fields",
			in:           VehicleInput{Plate: "  ", Brand: "", Model: "", Year: 2020, Mileage: 0},
			setupMock:    func(m *MockVehicleRepository) {},
			expectedKind: errors.KindValidation,
		},
		{
			name:         "year below range",
			in:           VehicleInput{Plate: "AB-123", Brand: "Toyota", Model: "Corolla", Year: 1899, Mileage: 0},
			setupMock:    func(m *MockVehicleRepository) {},
			expectedKind: errors.KindValidation,
		},
		{
			name:         "year too far in the future",
			in:           VehicleInput{Plate: "AB-123", Brand: "Toyota", Model: "Corolla", Year: time.Now().Year() + 2, Mileage: 0},
			setupMock:    func(m *MockVehicleRepository) {},
			expectedKind: errors.KindValidation,
		},
		{
			name:         "negative mileage",
			in:           VehicleInput{Plate: "AB-123", Brand: "Toyota", Model: "Corolla", Year: 2020, Mileage: -1},
			setupMock:    func(m *MockVehicleRepository) {},
			expectedKind: errors.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockVehicleRepository)
			tt.setupMock(mockRepo)

			svc := NewVehicleService(mockRepo, nil)
			vehicle, err := svc.CreateVehicle(context.Background(), "user-1", tt.in)

			if tt.check != nil {
				assert.NoError(t, err)
				assert.NotNil(t, vehicle)
				tt.check(t, vehicle)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, errors.KindOf(err))
				assert.Nil(t, vehicle)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestVehicleService_CreateVehicle_SamePlateDifferentUsers(t *testing.T) {
	mockRepo := new(MockVehicleRepository)
	// user-2 has no vehicle with this plate even though user-1 does.
	mockRepo.On("FindByPlate", mock.Anything, "user-2", "AB-123").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Vehicle")).Return(nil)

	svc := NewVehicleService(mockRepo, nil)
	vehicle, err := svc.CreateVehicle(context.Background(), "user-2",
		VehicleInput{Plate: "AB-123", Brand: "Toyota", Model: "Corolla", Year: 2020, Mileage: 1000})

	assert.NoError(t, err)
	assert.Equal(t, "user-2", vehicle.UserID)
	mockRepo.AssertExpectations(t)
}

func TestVehicleService_GetVehicle_NotOwnedReportsNotFound(t *testing.T) {
	mockRepo := new(MockVehicleRepository)
	// The repository reports foreign ownership identically to absence.
	mockRepo.On("FindOwned", mock.Anything, "vehicle-1", "user-2").Return(nil, gorm.ErrRecordNotFound)

	svc := NewVehicleService(mockRepo, nil)
	vehicle, err := svc.GetVehicle(context.Background(), "vehicle-1", "user-2")

	assert.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	assert.Nil(t, vehicle)
}

func TestVehicleService_UpdateVehicle(t *testing.T) {
	existing := func() *model.Vehicle {
		return &model.Vehicle{
			ID:        "vehicle-1",
			UserID:    "user-1",
			Plate:     "AB-123",
			Brand:     "Toyota",
			Model:     "Corolla",
			Year:      2020,
			Mileage:   1000,
			UpdatedAt: time.Now().Add(-time.Hour),
		}
	}

	t.Run("partial update preserves untouched fields", func(t *testing.T) {
		mockRepo := new(MockVehicleRepository)
		before := existing()
		mockRepo.On("FindOwned", mock.Anything, "vehicle-1", "user-1").Return(before, nil)

		var saved *model.Vehicle
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Vehicle")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*model.Vehicle) }).
			Return(nil)

		mileage := 5000
		svc := NewVehicleService(mockRepo, nil)
		vehicle, err := svc.UpdateVehicle(context.Background(), "vehicle-1", "user-1", VehicleUpdate{Mileage: &mileage})

		assert.NoError(t, err)
		assert.Equal(t, 5000, saved.Mileage)
		assert.Equal(t, "AB-123", saved.Plate)
		assert.Equal(t, "Toyota", saved.Brand)
		assert.Equal(t, "Corolla", saved.Model)
		assert.Equal(t, 2020, saved.Year)
		assert.True(t, saved.UpdatedAt.After(time.Now().Add(-time.Minute)))
		assert.Equal(t, saved, vehicle)
		mockRepo.AssertExpectations(t)
	})

	t.Run("plate change re-checks uniqueness", func(t *testing.T) {
		mockRepo := new(MockVehicleRepository)
		mockRepo.On("FindOwned", mock.Anything, "vehicle-1", "user-1").Return(existing(), nil)
		mockRepo.On("FindByPlate", mock.Anything, "user-1", "CD-456").
			Return(&model.Vehicle{ID: "other", UserID: "user-1", Plate: "CD-456"}, nil)

		plate := "cd-456"
		svc := NewVehicleService(mockRepo, nil)
		vehicle, err := svc.UpdateVehicle(context.Background(), "vehicle-1", "user-1", VehicleUpdate{Plate: &plate})

		assert.Error(t, err)
		assert.Equal(t, errors.KindConflict, errors.KindOf(err))
		assert.Nil(t, vehicle)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unchanged plate skips uniqueness check", func(t *testing.T) {
		mockRepo := new(MockVehicleRepository)
		mockRepo.On("FindOwned", mock.Anything, "vehicle-1", "user-1").Return(existing(), nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Vehicle")).Return(nil)

		plate := " ab-123 "
		svc := NewVehicleService(mockRepo, nil)
		_, err := svc.UpdateVehicle(context.Background(), "vehicle-1", "user-1", VehicleUpdate{Plate: &plate})

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "FindByPlate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update of a foreign vehicle reports not found", func(t *testing.T) {
		mockRepo := new(MockVehicleRepository)
		mockRepo.On("FindOwned", mock.Anything, "vehicle-1", "user-2").Return(nil, gorm.ErrRecordNotFound)

		mileage := 5000
		svc := NewVehicleService(mockRepo, nil)
		_, err := svc.UpdateVehicle(context.Background(), "vehicle-1", "user-2", VehicleUpdate{Mileage: &mileage})

		assert.Error(t, err)
		assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	})
}

func TestVehicleService_DeleteVehicle(t *testing.T) {
	t.Run("delete checks ownership first", func(t *testing.T) {
		mockRepo := new(MockVehicleRepository)
		mockRepo.On("FindOwned", mock.Anything, "vehicle-1", "user-1").
			Return(&model.Vehicle{ID: "vehicle-1", UserID: "user-1"}, nil)
		mockRepo.On("Delete", mock.Anything, "vehicle-1").Return(nil)

		svc := NewVehicleService(mockRepo, nil)
		assert.NoError(t, svc.DeleteVehicle(context.Background(), "vehicle-1", "user-1"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("delete of a foreign vehicle reports not found", func(t *testing.T) {
		mockRepo := new(MockVehicleRepository)
		mockRepo.On("FindOwned", mock.Anything, "vehicle-1", "user-2").Return(nil, gorm.ErrRecordNotFound)

		svc := NewVehicleService(mockRepo, nil)
		err := svc.DeleteVehicle(context.Background(), "vehicle-1", "user-2")

		assert.Error(t, err)
		assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
