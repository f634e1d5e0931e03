package service

import (
	"context"

	"go.uber.org/zap"

	"tracker-rental/internal/client/model"
	"tracker-rental/internal/client/repository"
	"tracker-rental/internal/logger"
	rentalRepository "tracker-rental/internal/rental/repository"
	"tracker-rental/pkg/apierr"
	"tracker-rental/pkg/utils"
)

type ClientService struct {
	repo    repository.ClientRepository
	rentals rentalRepository.RentalRepository
}

func NewService(repo repository.ClientRepository, rentals rentalRepository.RentalRepository) *ClientService {
	return &ClientService{
		repo:    repo,
		rentals: rentals,
	}
}

func (s *ClientService) Create(ctx context.Context, request *model.ClientRequest) (*model.Client, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	nome := utils.SanitizeName(request.Nome)
	email := utils.NormalizeEmail(request.Email)

	existing, _ := s.repo.FindByEmail(ctx, email)
	if existing != nil {
		return nil, apierr.Conflict("Já existe um cliente com este e-mail")
	}

	client := &model.Client{
		ID:    utils.NewHexID(),
		Nome:  nome,
		Email: email,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	logger.Info("Client created",
		zap.String("id_cliente", client.ID),
		zap.String("email", client.Email),
	)

	return client, nil
}

func (s *ClientService) FindAll(ctx context.Context) ([]model.Client, error) {
	return s.repo.FindAll(ctx)
}

func (s *ClientService) FindOne(ctx context.Context, id string) (*model.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) Update(ctx context.Context, id string, request *model.ClientRequest) (*model.Client, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(request.Email)

	inUse, _ := s.repo.FindByEmail(ctx, email)
	if inUse != nil && inUse.ID != client.ID {
		return nil, apierr.Conflict("Este email já está sendo usado por outro cliente")
	}

	client.Nome = utils.SanitizeName(request.Nome)
	client.Email = email

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	active, err := s.rentals.HasActiveRentalForClient(ctx, id)
	if err != nil {
		return err
	}
	if active {
		return apierr.Conflict("Não é possível deletar cliente com locações ativas")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Client deleted", zap.String("id_cliente", id))
	return nil
}
