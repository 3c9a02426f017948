// Package store persists a generated dataset into the warehouse database.
package store

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"factory-sim-backend/config"
	"factory-sim-backend/internal/dataset"
	"factory-sim-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	// Migrate creates or updates the schema for the given line's tables.
	Migrate(ctx context.Context, line string) error
	// Persist replaces the line's stored rows with the dataset's rows.
	Persist(ctx context.Context, ds *dataset.Dataset) error
}

// insertBatchSize bounds each INSERT so the high-volume sensor table does not
// exceed driver parameter limits.
const insertBatchSize = 500

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// jobShopModels and scadaModels list each line's row types in dependency
// order (dimensions before facts).
var (
	jobShopModels = []any{
		&model.Machine{}, &model.Product{}, &model.Operator{}, &model.Customer{},
		&model.DateDay{}, &model.JobOrder{}, &model.ProductionRun{},
		&model.QualityEvent{}, &model.DowntimeEvent{},
	}
	scadaModels = []any{
		&model.Station{}, &model.Sensor{}, &model.LineOperator{}, &model.ShiftDim{},
		&model.ArmProductDim{}, &model.DateDay{}, &model.SensorReading{},
		&model.AssemblyRun{}, &model.LineQualityEvent{}, &model.StationDowntime{},
		&model.Alarm{},
	}
)

func modelsFor(line string) ([]any, error) {
	switch line {
	case config.LineJobShop:
		return jobShopModels, nil
	case config.LineScada:
		return scadaModels, nil
	default:
		return nil, fmt.Errorf("store: unknown line %q", line)
	}
}

// Migrate runs AutoMigrate for every table of the line.
func (s *gormStore) Migrate(ctx context.Context, line string) error {
	models, err := modelsFor(line)
	if err != nil {
		return err
	}
	log.Println("Running database migrations...")
	if err := s.db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}

// Persist writes the whole dataset in one transaction: each table's previous
// rows are cleared, then the new rows are inserted in batches. A failed table
// rolls back the entire run so the warehouse never holds a half-written
// dataset.
func (s *gormStore) Persist(ctx context.Context, ds *dataset.Dataset) error {
	models, err := modelsFor(ds.Line)
	if err != nil {
		return err
	}
	if len(models) != len(ds.Tables) {
		return fmt.Errorf("store: dataset has %d tables, line %q expects %d",
			len(ds.Tables), ds.Line, len(models))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, t := range ds.Tables {
			if err := tx.Where("1 = 1").Delete(models[i]).Error; err != nil {
				return fmt.Errorf("failed to clear table %s: %w", t.Name, err)
			}
			if len(t.Rows) == 0 {
				continue
			}
			if err := tx.CreateInBatches(t.Records, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert table %s: %w", t.Name, err)
			}
			log.Printf("Persisted %s (%d rows)", t.Name, len(t.Rows))
		}
		return nil
	})
}
