package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
)

// Storages aggregates the repositories used by the service layer.
type Storages struct {
	ProductRepository ProductRepository

	closer io.Closer
}

// NewStorages connects to the configured database, applies the schema and
// builds the repository for the configured engine.
//
// Engine "sql" uses database/sql with goose migrations; engine "orm" uses
// gorm with AutoMigrate.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.DB.Engine {
	case config.EngineSQL, "":
		return newSQLStorages(ctx, cfg.DB, log)
	case config.EngineORM:
		return newORMStorages(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEngine, cfg.DB.Engine)
	}
}

func newSQLStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "newSQLStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		ProductRepository: NewProductRepository(db, log),
		closer:            db,
	}, nil
}

func newORMStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	orm, err := NewConnectORM(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = orm.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "newORMStorages").Msg("error applying migrations")
		_ = orm.Close()
		return nil, err
	}

	return &Storages{
		ProductRepository: NewORMProductRepository(orm, log),
		closer:            orm,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
