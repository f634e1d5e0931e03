package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tracker-rental/internal/client/model"
	rentalModel "tracker-rental/internal/rental/model"
)

type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *model.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepo) FindAll(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientRepo) FindByID(ctx context.Context, id string) (*model.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepo) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepo) Update(ctx context.Context, client *model.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
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
