package store

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
)

// ORM wraps a *gorm.DB opened for one of the supported drivers.
type ORM struct {
	*gorm.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// productRecord is the gorm mapping of the products table.
type productRecord struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;size:255;not null"`
	Inventory int64  `gorm:"column:inventory;not null;check:inventory >= 0"`
}

func (productRecord) TableName() string {
	return productsTable
}

// NewConnectORM opens cfg.DSN with the gorm dialector matching cfg.Driver
// and pings it.
func NewConnectORM(ctx context.Context, cfg config.DB, log *logger.Logger) (*ORM, error) {
	var (
		dialector  gorm.Dialector
		classifier ErrorClassificator
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
		classifier = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
		dialector = sqlite.Open(cfg.DSN)
		classifier = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectORM").Msg("error opening orm connection")
		return nil, fmt.Errorf("error opening orm connection: %w", err)
	}

	orm := &ORM{DB: db, driver: cfg.Driver, errorClassificator: classifier, logger: log}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting orm connection pool: %w", err)
	}
	if cfg.Driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectORM").Msg("error connecting database (ping)")
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", ErrPingingDB, err)
	}
	log.Info().Str("func", "NewConnectORM").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return orm, nil
}

// Migrate creates or updates the products table from productRecord.
func (o *ORM) Migrate(ctx context.Context) error {
	if err := o.WithContext(ctx).AutoMigrate(&productRecord{}); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (o *ORM) Close() error {
	sqlDB, err := o.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
