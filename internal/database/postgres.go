package database

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	clientModel "tracker-rental/internal/client/model"
	"tracker-rental/internal/config"
	deviceModel "tracker-rental/internal/device/model"
	"tracker-rental/internal/logger"
	rentalModel "tracker-rental/internal/rental/model"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(cfg *config.Config) (*Database, error) {
	dsn := cfg.Database.DSN()

	var gormLogLevel gormLogger.LogLevel
	if cfg.Server.Environment == "production" {
		gormLogLevel = gormLogger.Warn
	} else {
		gormLogLevel = gormLogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	logger.Info("Database connection established",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	return &Database{DB: db}, nil
}

// Migrate creates the schema and the partial unique index that keeps the
// active-rental check race-safe: concurrent starts on the same device cannot
// both insert a row with a null data_fim.
func (d *Database) Migrate() error {
	err := d.DB.AutoMigrate(
		&clientModel.Client{},
		&deviceModel.Device{},
		&rentalModel.Rental{},
	)
	if err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	err = d.DB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_locacoes_dispositivo_ativa
		 ON locacoes (dispositivo_id) WHERE data_fim IS NULL`,
	).Error
	if err != nil {
		return fmt.Errorf("error creating active rental index: %w", err)
	}

	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
