package service

import (
	"context"

	"go.uber.org/zap"

	"tracker-rental/internal/device/model"
	"tracker-rental/internal/device/repository"
	"tracker-rental/internal/logger"
	rentalRepository "tracker-rental/internal/rental/repository"
	"tracker-rental/pkg/apierr"
	"tracker-rental/pkg/utils"
)

type DeviceService struct {
	repo    repository.DeviceRepository
	rentals rentalRepository.RentalRepository
}

func NewService(repo repository.DeviceRepository, rentals rentalRepository.RentalRepository) *DeviceService {
	return &DeviceService{
		repo:    repo,
		rentals: rentals,
	}
}

func (s *DeviceService) Create(ctx context.Context, request *model.DeviceRequest) (*model.Device, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	nome := utils.SanitizeName(request.Nome)
	mac := utils.NormalizeMACAddress(request.MacAddress)

	existing, _ := s.repo.FindByMacAddress(ctx, mac)
	if existing != nil {
		return nil, apierr.Conflict("Já existe um dispositivo com este MAC Address")
	}

	device := &model.Device{
		ID:         utils.NewHexID(),
		Nome:       nome,
		MacAddress: mac,
	}

	if err := s.repo.Create(ctx, device); err != nil {
		return nil, err
	}

	logger.Info("Device created",
		zap.String("id_dispositivo", device.ID),
		zap.String("mac_address", device.MacAddress),
	)

	return device, nil
}

func (s *DeviceService) FindAll(ctx context.Context) ([]model.Device, error) {
	return s.repo.FindAll(ctx)
}

func (s *DeviceService) FindOne(ctx context.Context, id string) (*model.Device, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DeviceService) Update(ctx context.Context, id string, request *model.DeviceRequest) (*model.Device, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	device, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mac := utils.NormalizeMACAddress(request.MacAddress)

	inUse, _ := s.repo.FindByMacAddress(ctx, mac)
	if inUse != nil && inUse.ID != device.ID {
		return nil, apierr.Conflict("Este MAC Address já está sendo usado por outro dispositivo")
	}

	device.Nome = utils.SanitizeName(request.Nome)
	device.MacAddress = mac

	if err := s.repo.Update(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

func (s *DeviceService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	active, err := s.rentals.HasActiveRentalForDevice(ctx, id)
	if err != nil {
		return err
	}
	if active {
		return apierr.Conflict("Não é possível deletar dispositivo com locações ativas")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Device deleted", zap.String("id_dispositivo", id))
	return nil
}
