package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"tracker-rental/internal/database"
	"tracker-rental/internal/rental/model"
	"tracker-rental/pkg/apierr"
)

type RentalRepository interface {
	Start(ctx context.Context, rental *model.Rental) error
	FindAll(ctx context.Context) ([]model.Rental, error)
	FindActiveByID(ctx context.Context, id string) (*model.Rental, error)
	Finalize(ctx context.Context, id string, fim time.Time, custo float64) error
	HasActiveRentalForClient(ctx context.Context, clienteID string) (bool, error)
	HasActiveRentalForDevice(ctx context.Context, dispositivoID string) (bool, error)
}

type rentalRepository struct {
	db *database.Database
}

func NewRentalRepository(db *database.Database) RentalRepository {
	return &rentalRepository{db: db}
}

// Start checks the single-active-rental-per-device invariant and inserts the
// rental in one transaction. A concurrent start that slips past the check
// trips the partial unique index and is reported as the same conflict.
func (r *rentalRepository) Start(ctx context.Context, rental *model.Rental) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Rental{}).
			Where("dispositivo_id = ? AND data_fim IS NULL", rental.DispositivoID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check active rentals: %w", err)
		}
		if count > 0 {
			return apierr.Conflict("Este dispositivo já está alugado")
		}

		if err := tx.Create(rental).Error; err != nil {
			if strings.Contains(err.Error(), "duplicate key value") {
				return apierr.Conflict("Este dispositivo já está alugado")
			}
			return fmt.Errorf("failed to create rental: %w", err)
		}

		return nil
	})
}

func (r *rentalRepository) FindAll(ctx context.Context) ([]model.Rental, error) {
	var rentals []model.Rental
	err := r.db.DB.WithContext(ctx).
		Preload("Cliente").
		Preload("Dispositivo").
		Order("data_inicio DESC").
		Find(&rentals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	return rentals, nil
}

// FindActiveByID looks up a rental that is still open. A rental that exists
// but is already finalized is reported the same way as a missing one.
func (r *rentalRepository) FindActiveByID(ctx context.Context, id string) (*model.Rental, error) {
	var rental model.Rental
	err := r.db.DB.WithContext(ctx).
		Preload("Cliente").
		Preload("Dispositivo").
		Where("id_locacao = ? AND data_fim IS NULL", id).
		First(&rental).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("Locação ativa")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active rental: %w", err)
	}

	return &rental, nil
}

// Finalize closes the rental, guarding on data_fim so the transition happens
// at most once.
func (r *rentalRepository) Finalize(ctx context.Context, id string, fim time.Time, custo float64) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Rental{}).
		Where("id_locacao = ? AND data_fim IS NULL", id).
		Updates(map[string]interface{}{
			"data_fim":    fim,
			"custo_total": custo,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to finalize rental: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apierr.NotFound("Locação ativa")
	}

	return nil
}

func (r *rentalRepository) HasActiveRentalForClient(ctx context.Context, clienteID string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&model.Rental{}).
		Where("cliente_id = ? AND data_fim IS NULL", clienteID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check active rentals for client: %w", err)
	}
	return count > 0, nil
}

func (r *rentalRepository) HasActiveRentalForDevice(ctx context.Context, dispositivoID string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&model.Rental{}).
		Where("dispositivo_id = ? AND data_fim IS NULL", dispositivoID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check active rentals for device: %w", err)
	}
	return count > 0, nil
}
