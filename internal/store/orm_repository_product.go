package store

import (
	"context"

	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/models"
)

// ormProductRepository implements [ProductRepository] with gorm.
type ormProductRepository struct {
	*ORM
	logger *logger.Logger
}

// NewORMProductRepository constructs a gorm-backed [ProductRepository].
func NewORMProductRepository(orm *ORM, logger *logger.Logger) ProductRepository {
	logger.Debug().Str("driver", orm.driver).Msg("creating orm product repository")
	return &ormProductRepository{
		ORM:    orm,
		logger: logger,
	}
}

func (r *ormProductRepository) Insert(ctx context.Context, p models.Product) (int64, error) {
	log := logger.FromContext(ctx)

	record := productRecord{Name: p.Name, Inventory: p.Inventory}
	result := r.WithContext(ctx).Create(&record)
	if result.Error != nil {
		log.Err(result.Error).Str("func", "ormProductRepository.Insert").Str("name", p.Name).Msg("failed to insert product")
		return 0, newStorageError("insert", ErrExecutingQuery, result.Error, r.errorClassificator)
	}
	if result.RowsAffected == 0 || record.ID == 0 {
		log.Error().Str("func", "ormProductRepository.Insert").Msg("no rows affected")
		return 0, newStorageError("insert", ErrProductNotSaved, nil, nil)
	}

	return record.ID, nil
}

func (r *ormProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.WithContext(ctx).Model(&productRecord{}).Count(&total).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ormProductRepository.Count").Msg("failed to count products")
		return 0, newStorageError("count", ErrExecutingQuery, err, r.errorClassificator)
	}
	return total, nil
}

func (r *ormProductRepository) FetchRange(ctx context.Context, offset, limit int64) ([]models.Product, error) {
	if limit == 0 {
		return []models.Product{}, nil
	}

	var records []productRecord
	err := r.WithContext(ctx).
		Order(columnID + " ASC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&records).Error
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ormProductRepository.FetchRange").
			Int64("offset", offset).
			Int64("limit", limit).
			Msg("failed to fetch products")
		return nil, newStorageError("fetch range", ErrExecutingQuery, err, r.errorClassificator)
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, models.Product{ID: rec.ID, Name: rec.Name, Inventory: rec.Inventory})
	}
	return products, nil
}

func (r *ormProductRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ormProductRepository.Ping").Msg("database ping failed")
		return newStorageError("ping", ErrPingingDB, err, r.errorClassificator)
	}
	return nil
}
