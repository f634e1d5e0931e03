package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tracker-rental/internal/device/model"
	rentalModel "tracker-rental/internal/rental/model"
)

type MockDeviceRepo struct {
	mock.Mock
}

func (m *MockDeviceRepo) Create(ctx context.Context, device *model.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepo) FindAll(ctx context.Context) ([]model.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Device), args.Error(1)
}

func (m *MockDeviceRepo) FindByID(ctx context.Context, id string) (*model.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Device), args.Error(1)
}

func (m *MockDeviceRepo) FindByMacAddress(ctx context.Context, mac string) (*model.Device, error) {
	args := m.Called(ctx, mac)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Device), args.Error(1)
}

func (m *MockDeviceRepo) Update(ctx context.Context, device *model.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeviceRepo) UpdateLastContact(ctx context.Context, mac string, at time.Time) error {
	args := m.Called(ctx, mac, at)
	return args.Error(0)
}

type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Start(ctx context.Context, rental *rentalModel.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepo) FindAll(ctx context.Context) ([]rentalModel.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rentalModel.Rental), args.Error(1)
}

func (m *MockRentalRepo) FindActiveByID(ctx context.Context, id string) (*rentalModel.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rentalModel.Rental), args.Error(1)
}

func (m *MockRentalRepo) Finalize(ctx context.Context, id string, fim time.Time, custo float64) error {
	args := m.Called(ctx, id, fim, custo)
	return args.Error(0)
}

func (m *MockRentalRepo) HasActiveRentalForClient(ctx context.Context, clienteID string) (bool, error) {
	args := m.Called(ctx, clienteID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRentalRepo) HasActiveRentalForDevice(ctx context.Context, dispositivoID string) (bool, error) {
	args := m.Called(ctx, dispositivoID)
	return args.Bool(0), args.Error(1)
}
