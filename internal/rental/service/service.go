package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	clientRepository "tracker-rental/internal/client/repository"
	deviceRepository "tracker-rental/internal/device/repository"
	"tracker-rental/internal/logger"
	"tracker-rental/internal/rental/billing"
	"tracker-rental/internal/rental/model"
	"tracker-rental/internal/rental/repository"
	"tracker-rental/pkg/utils"
)

// RentalService orchestrates the rental lifecycle: a session is started
// against an existing client and device, stays active until finalized, and
// is billed per started minute when it closes.
type RentalService struct {
	repo    repository.RentalRepository
	clients clientRepository.ClientRepository
	devices deviceRepository.DeviceRepository
}

func NewService(
	repo repository.RentalRepository,
	clients clientRepository.ClientRepository,
	devices deviceRepository.DeviceRepository,
) *RentalService {
	return &RentalService{
		repo:    repo,
		clients: clients,
		devices: devices,
	}
}

// Start opens a rental session for the given client and device. The device
// must not have another active session; the storage layer enforces that
// atomically.
func (s *RentalService) Start(ctx context.Context, request *model.StartRentalRequest) (*model.RentalResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	cliente, err := s.clients.FindByID(ctx, request.ClienteID)
	if err != nil {
		return nil, err
	}

	dispositivo, err := s.devices.FindByID(ctx, request.DispositivoID)
	if err != nil {
		return nil, err
	}

	rental := &model.Rental{
		ID:            utils.NewHexID(),
		DataInicio:    time.Now(),
		ClienteID:     cliente.ID,
		DispositivoID: dispositivo.ID,
	}

	if err := s.repo.Start(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental started",
		zap.String("id_locacao", rental.ID),
		zap.String("cliente_id", rental.ClienteID),
		zap.String("dispositivo_id", rental.DispositivoID),
	)

	rental.Cliente = cliente
	rental.Dispositivo = dispositivo
	return rental.ToResponse(), nil
}

// Finalize closes an active rental and computes its cost from the elapsed
// wall-clock time. A rental that is already finalized is indistinguishable
// from a missing one.
func (s *RentalService) Finalize(ctx context.Context, id string) (*model.FinalizeRentalResponse, error) {
	rental, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fim := time.Now()
	minutos := billing.BillableMinutes(rental.DataInicio, fim)
	custo := billing.Cost(minutos)

	if err := s.repo.Finalize(ctx, rental.ID, fim, custo); err != nil {
		return nil, err
	}

	rental.DataFim = &fim
	rental.CustoTotal = &custo

	logger.Info("Rental finalized",
		zap.String("id_locacao", rental.ID),
		zap.Int64("minutos", minutos),
		zap.Float64("custo_total", custo),
	)

	return &model.FinalizeRentalResponse{
		RentalResponse:    *rental.ToResponse(),
		TempoTotalMinutos: minutos,
		PrecoPorMinuto:    billing.PrecoPorMinuto,
	}, nil
}

// FindAll returns every rental, most recent first, joined with the full
// client and device records.
func (s *RentalService) FindAll(ctx context.Context) ([]model.Rental, error) {
	return s.repo.FindAll(ctx)
}
