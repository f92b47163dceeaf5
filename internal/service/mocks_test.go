package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wittycar/internal/identity"
	"wittycar/internal/model"
)

// MockIdentityProvider is a mock implementation of identity.Provider.
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CreateAccount(ctx context.Context, email, password, displayName, phoneNumber string) (*identity.Account, error) {
	args := m.Called(ctx, email, password, displayName, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockIdentityProvider) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockIdentityProvider) FindByUID(ctx context.Context, uid string) (*identity.Account, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockIdentityProvider) VerifyPassword(ctx context.Context, uid, password string) error {
	args := m.Called(ctx, uid, password)
	return args.Error(0)
}

func (m *MockIdentityProvider) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	args := m.Called(ctx, uid, disabled)
	return args.Error(0)
}

func (m *MockIdentityProvider) SetEmailVerified(ctx context.Context, uid string, verified bool) error {
	args := m.Called(ctx, uid, verified)
	return args.Error(0)
}

func (m *MockIdentityProvider) DeleteAccount(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateNew(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error {
	args := m.Called(ctx, uid, fields)
	return args.Error(0)
}

func (m *MockUserRepository) TouchUpdatedAt(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

// MockVehicleRepository is a mock implementation of repository.VehicleRepository.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Save(ctx context.Context, vehicle *model.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) FindOwned(ctx context.Context, id, userID string) (*model.Vehicle, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListByUser(ctx context.Context, userID string) ([]model.Vehicle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByPlate(ctx context.Context, userID, plate string) (*model.Vehicle, error) {
	args := m.Called(ctx, userID, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockServiceRecordRepository is a mock implementation of repository.ServiceRecordRepository.
type MockServiceRecordRepository struct {
	mock.Mock
}

func (m *MockServiceRecordRepository) Create(ctx context.Context, record *model.ServiceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockServiceRecordRepository) ListByVehicle(ctx context.Context, vehicleID, userID string) ([]model.ServiceRecord, error) {
	args := m.Called(ctx, vehicleID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceRecord), args.Error(1)
}

// MockAppointmentRepository is a mock implementation of repository.AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) FindOwned(ctx context.Context, id, userID string) (*model.Appointment, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) CreateExclusive(ctx context.Context, appointment *model.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) SaveExclusive(ctx context.Context, appointment *model.Appointment, checkSlot bool) error {
	args := m.Called(ctx, appointment, checkSlot)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
