package infra

import (
	"fmt"

	"github.com/ELPELADASTER/control-stock/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, ensures the
// extensions the models rely on exist, then runs AutoMigrate.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates or updates the schema. Also used by integration tests
// against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on Postgres < 13.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Articulo{},
		&model.Maquina{},
		&model.CargaMaquina{},
		&model.ConteoVasos{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Safe to re-run on an already-patched database.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Session listing and detail lookups filter by machine and day.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_cargas_maquina_fecha') THEN
		    CREATE INDEX idx_cargas_maquina_fecha
		        ON cargas_maquinas (maquina_id, fecha_carga);
		  END IF;
		END $$`,
		// Dashboard sums scan conteos by empresa and date range.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_conteos_empresa_fecha') THEN
		    CREATE INDEX idx_conteos_empresa_fecha
		        ON conteos_vasos (empresa, fecha_conteo);
		  END IF;
		END $$`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch: %w", err)
		}
	}
	return nil
}
