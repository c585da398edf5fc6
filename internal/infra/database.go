package infra

import (
	"fmt"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches for the
// index shapes GORM cannot express (functional and partial indexes).
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

// RunMigrations creates/updates the schema. Shared with integration tests so
// they run against the exact same DDL the server boots with.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Oficio{},
		&model.Proyecto{},
		&model.Empleado{},
		&model.Contrato{},
		&model.Proveedor{},
		&model.CategoriaSuministro{},
		&model.UnidadMedida{},
		&model.Suministro{},
		&model.Adeudo{},
		&model.Presupuesto{},
		&model.Bitacora{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot produce.
// Each statement is guarded so re-running on an already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Functional index backing the duplicate folio lookup
		// (LOWER(TRIM(folio)) = ?). Without it every check is a seq scan.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_suministros_folio_norm') THEN
		    CREATE INDEX idx_suministros_folio_norm
		        ON suministros (LOWER(TRIM(folio)))
		        WHERE folio IS NOT NULL;
		  END IF;
		END $$`,
		// Partial index for the due-date alert cron: only unpaid debts with a
		// due date are ever scanned.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_adeudos_pendientes_vencimiento') THEN
		    CREATE INDEX idx_adeudos_pendientes_vencimiento
		        ON adeudos (fecha_vencimiento)
		        WHERE estado <> 'pagado' AND fecha_vencimiento IS NOT NULL;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
