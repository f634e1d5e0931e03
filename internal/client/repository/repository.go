package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tracker-rental/internal/client/model"
	"tracker-rental/internal/database"
	"tracker-rental/pkg/apierr"
)

type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	FindAll(ctx context.Context) ([]model.Client, error)
	FindByID(ctx context.Context, id string) (*model.Client, error)
	FindByEmail(ctx context.Context, email string) (*model.Client, error)
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id string) error
}

type clientRepository struct {
	db *database.Database
}

func NewClientRepository(db *database.Database) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	if err := r.db.DB.WithContext(ctx).Create(client).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return apierr.Conflict("Já existe um cliente com este e-mail")
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *clientRepository) FindAll(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := r.db.DB.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepository) FindByID(ctx context.Context, id string) (*model.Client, error) {
	var client model.Client
	err := r.db.DB.WithContext(ctx).
		Where("id_cliente = ?", id).
		First(&client).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("Cliente")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &client, nil
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	var client model.Client
	err := r.db.DB.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("Cliente")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client by email: %w", err)
	}

	return &client, nil
}

func (r *clientRepository) Update(ctx context.Context, client *model.Client) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Client{}).
		Where("id_cliente = ?", client.ID).
		Updates(map[string]interface{}{
			"nome":  client.Nome,
			"email": client.Email,
		})

	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "duplicate key value") {
			return apierr.Conflict("Este email já está sendo usado por outro cliente")
		}
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apierr.NotFound("Cliente")
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).
		Where("id_cliente = ?", id).
		Delete(&model.Client{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apierr.NotFound("Cliente")
	}

	return nil
}
