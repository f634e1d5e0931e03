package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"tracker-rental/internal/database"
	"tracker-rental/internal/device/model"
	"tracker-rental/pkg/apierr"
)

type DeviceRepository interface {
	Create(ctx context.Context, device *model.Device) error
	FindAll(ctx context.Context) ([]model.Device, error)
	FindByID(ctx context.Context, id string) (*model.Device, error)
	FindByMacAddress(ctx context.Context, mac string) (*model.Device, error)
	Update(ctx context.Context, device *model.Device) error
	Delete(ctx context.Context, id string) error
	UpdateLastContact(ctx context.Context, mac string, at time.Time) error
}

type deviceRepository struct {
	db *database.Database
}

func NewDeviceRepository(db *database.Database) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) Create(ctx context.Context, device *model.Device) error {
	if err := r.db.DB.WithContext(ctx).Create(device).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return apierr.Conflict("Já existe um dispositivo com este MAC Address")
		}
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

func (r *deviceRepository) FindAll(ctx context.Context) ([]model.Device, error) {
	var devices []model.Device
	if err := r.db.DB.WithContext(ctx).Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}

func (r *deviceRepository) FindByID(ctx context.Context, id string) (*model.Device, error) {
	var device model.Device
	err := r.db.DB.WithContext(ctx).
		Where("id_dispositivo = ?", id).
		First(&device).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("Dispositivo")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return &device, nil
}

func (r *deviceRepository) FindByMacAddress(ctx context.Context, mac string) (*model.Device, error) {
	var device model.Device
	err := r.db.DB.WithContext(ctx).
		Where("mac_address = ?", mac).
		First(&device).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("Dispositivo")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get device by mac address: %w", err)
	}

	return &device, nil
}

func (r *deviceRepository) Update(ctx context.Context, device *model.Device) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Device{}).
		Where("id_dispositivo = ?", device.ID).
		Updates(map[string]interface{}{
			"nome":        device.Nome,
			"mac_address": device.MacAddress,
		})

	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "duplicate key value") {
			return apierr.Conflict("Este MAC Address já está sendo usado por outro dispositivo")
		}
		return fmt.Errorf("failed to update device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apierr.NotFound("Dispositivo")
	}

	return nil
}

func (r *deviceRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).
		Where("id_dispositivo = ?", id).
		Delete(&model.Device{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apierr.NotFound("Dispositivo")
	}

	return nil
}

// UpdateLastContact records a heartbeat for the device with the given MAC
// address.
func (r *deviceRepository) UpdateLastContact(ctx context.Context, mac string, at time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Device{}).
		Where("mac_address = ?", mac).
		Update("ultimo_contato", at)

	if result.Error != nil {
		return fmt.Errorf("failed to update last contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apierr.NotFound("Dispositivo")
	}

	return nil
}
