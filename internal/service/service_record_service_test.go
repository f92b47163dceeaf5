package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"wittycar/internal/errors"
	"wittycar/internal/model"
)

func TestServiceRecordService_CreateRecord(t *testing.T) {
	ownedVehicle := &model.Vehicle{ID: "vehicle-1", UserID: "user-1"}

	tests := []struct {
		name         string
		in           ServiceRecordInput
		setupMocks   func(*MockServiceRecordRepository, *MockVehicleRepository)
		expectedKind errors.Kind
		check        func(*testing.T, *model.ServiceRecord)
	}{
		{
			name: "successful creation",
			in:   ServiceRecordInput{Title: " Oil change ", Description: "Engine oil replaced", Date: "2025-06-15T10:00:00Z", Mileage: 42000},
			setupMocks: func(r *MockServiceRecordRepository, v *MockVehicleRepository) {
				v.On("FindOwned", mock.Anything, "vehicle-1", "user-1").Return(ownedVehicle, nil)
				r.On("Create", mock.Anything, mock.AnythingOfType("*model.ServiceRecord")).Return(nil)
			},
			check: func(t *testing.T, record *model.ServiceRecord) {
				assert.Equal(t, "Oil change", record.Title)
				assert.Equal(t, "vehicle-1", record.VehicleID)
				assert.Equal(t, "user-1", record.UserID)
				assert.Equal(t, "2025-06-15T10:00:00Z", record.Date)
			},
		},
		{
			name: "vehicle owned by someone else",
			in:   ServiceRecordInput{Title: "Oil change", Description: "Engine oil replaced", Date: "2025-06-15T10:00:00Z"},
			setupMocks: func(r *MockServiceRecordRepository, v *MockVehicleRepository) {
				v.On("FindOwned", mock.Anything, "vehicle-1", "user-1").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedKind: errors.KindNotFound,
		},
		{
			name: "missing title and description",
			in:   ServiceRecordInput{Title: "  ", Description: "", Date: "2025-06-15T10:00:00Z"},
			setupMocks: func(r *MockServiceRecordRepository, v *MockVehicleRepository) {
				v.On("FindOwned", mock.Anything, "vehicle-1", "user-1").Return(ownedVehicle, nil)
			},
			expectedKind: errors.KindValidation,
		},
		{
			name: "missing date",
			in:   ServiceRecordInput{Title: "Oil change", Description: "Engine oil replaced"},
			setupMocks: func(r *MockServiceRecordRepository, v *MockVehicleRepository) {
				v.On("FindOwned", mock.Anything, "vehicle-1", "user-1").Return(ownedVehicle, nil)
			},
			expectedKind: errors.KindValidation,
		},
		{
			name: "non ISO date",
			in:   ServiceRecordInput{Title: "Oil change", Description: "Engine oil replaced", Date: "15/06/2025"},
			setupMocks: func(r *MockServiceRecordRepository, v *MockVehicleRepository) {
				v.On("FindOwned", mock.Anything, "vehicle-1", "user-1").Return(ownedVehicle, nil)
			},
			expectedKind: errors.KindValidation,
		},
		{
			name: "negative mileage",
			in:   ServiceRecordInput{Title: "Oil change", Description: "Engine oil replaced", Date: "2025-06-15T10:00:00Z", Mileage: -10},
			setupMocks: func(r *MockServiceRecordRepository, v *MockVehicleRepository) {
				v.On("FindOwned", mock.Anything, "vehicle-1", "user-1").Return(ownedVehicle, nil)
			},
			expectedKind: errors.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockServiceRecordRepository)
			mockVehicleRepo := new(MockVehicleRepository)
			tt.setupMocks(mockRepo, mockVehicleRepo)

			svc := NewServiceRecordService(mockRepo, mockVehicleRepo)
			record, err := svc.CreateRecord(context.Background(), "vehicle-1", "user-1", tt.in)

			if tt.check != nil {
				assert.NoError(t, err)
				assert.NotNil(t, record)
				tt.check(t, record)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, errors.KindOf(err))
				assert.Nil(t, record)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}

			mockRepo.AssertExpectations(t)
			mockVehicleRepo.AssertExpectations(t)
		})
	}
}

func TestServiceRecordService_CreateRecord_PastDateAllowed(t *testing.T) {
	mockRepo := new(MockServiceRecordRepository)
	mockVehicleRepo := new(MockVehicleRepository)

	mockVehicleRepo.On("FindOwned", mock.Anything, "vehicle-1", "user-1").
		Return(&model.Vehicle{ID: "vehicle-1", UserID: "user-1"}, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ServiceRecord")).Return(nil)

	svc := NewServiceRecordService(mockRepo, mockVehicleRepo)
	record, err := svc.CreateRecord(context.Background(), "vehicle-1", "user-1", ServiceRecordInput{
		Title:       "Timing belt",
		Description: "Replaced at 90k",
		Date:        "2019-03-01T09:00:00Z",
		Mileage:     90000,
	})

	assert.NoError(t, err)
	assert.Equal(t, "2019-03-01T09:00:00Z", record.Date)
}

func TestServiceRecordService_ListRecords(t *testing.T) {
	t.Run("returns records for an owned vehicle", func(t *testing.T) {
		mockRepo := new(MockServiceRecordRepository)
		mockVehicleRepo := new(MockVehicleRepository)

		mockVehicleRepo.On("FindOwned", mock.Anything, "vehicle-1", "user-1").
			Return(&model.Vehicle{ID: "vehicle-1", UserID: "user-1"}, nil)
		mockRepo.On("ListByVehicle", mock.Anything, "vehicle-1", "user-1").
			Return([]model.ServiceRecord{{ID: "record-1"}, {ID: "record-2"}}, nil)

		svc := NewServiceRecordService(mockRepo, mockVehicleRepo)
		records, err := svc.ListRecords(context.Background(), "vehicle-1", "user-1")

		assert.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("foreign vehicle reports not found", func(t *testing.T) {
		mockRepo := new(MockServiceRecordRepository)
		mockVehicleRepo := new(MockVehicleRepository)

		mockVehicleRepo.On("FindOwned", mock.Anything, "vehicle-1", "user-2").Return(nil, gorm.ErrRecordNotFound)

		svc := NewServiceRecordService(mockRepo, mockVehicleRepo)
		records, err := svc.ListRecords(context.Background(), "vehicle-1", "user-2")

		assert.Error(t, err)
		assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
		assert.Nil(t, records)
		mockRepo.AssertNotCalled(t, "ListByVehicle", mock.Anything, mock.Anything, mock.Anything)
	})
}
