package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	clientModel "tracker-rental/internal/client/model"
	deviceModel "tracker-rental/internal/device/model"
	"tracker-rental/internal/rental/model"
)

type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Start(ctx context.Context, rental *model.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepo) FindAll(ctx context.Context) ([]model.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rental), args.Error(1)
}

func (m *MockRentalRepo) FindActiveByID(ctx context.Context, id string) (*model.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rental), args.Error(1)
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

type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *clientModel.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepo) FindAll(ctx context.Context) ([]clientModel.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clientModel.Client), args.Error(1)
}

func (m *MockClientRepo) FindByID(ctx context.Context, id string) (*clientModel.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientModel.Client), args.Error(1)
}

func (m *MockClientRepo) FindByEmail(ctx context.Context, email string) (*clientModel.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientModel.Client), args.Error(1)
}

func (m *MockClientRepo) Update(ctx context.Context, client *clientModel.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeviceRepo struct {
	mock.Mock
}

func (m *MockDeviceRepo) Create(ctx context.Context, device *deviceModel.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepo) FindAll(ctx context.Context) ([]deviceModel.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]deviceModel.Device), args.Error(1)
}

func (m *MockDeviceRepo) FindByID(ctx context.Context, id string) (*deviceModel.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deviceModel.Device), args.Error(1)
}

func (m *MockDeviceRepo) FindByMacAddress(ctx context.Context, mac string) (*deviceModel.Device, error) {
	args := m.Called(ctx, mac)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deviceModel.Device), args.Error(1)
}

func (m *MockDeviceRepo) Update(ctx context.Context, device *deviceModel.Device) error {
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
