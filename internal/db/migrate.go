// Package db owns the physical schema: connection setup and the ordered,
// versioned migration steps that bring any prior on-disk layout up to the
// current shape. Steps are additive only; nothing is ever dropped or renamed.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// schemaMigration records an applied step so re-running Migrate is a no-op.
type schemaMigration struct {
	ID        uint   `gorm:"primaryKey"`
	Version   string `gorm:"size:100;uniqueIndex;not null"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string { return "schema_migrations" }

type step struct {
	version string
	up      func(tx *gorm.DB) error
}

// Migrate applies all pending steps in order. Any failure is returned to the
// caller, which must treat it as fatal: the engine cannot guarantee its
// invariants over a half-migrated store.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("migrate: tracking table: %w", err)
	}

	var applied []schemaMigration
	if err := gdb.Find(&applied).Error; err != nil {
		return fmt.Errorf("migrate: read applied: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, m := range applied {
		done[m.Version] = true
	}

	for _, s := range steps {
		if done[s.version] {
			continue
		}
		slog.Info("applying migration", "version", s.version)
		err := gdb.Transaction(func(tx *gorm.DB) error {
			if err := s.up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{Version: s.version, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return fmt.Errorf("migrate: step %s: %w", s.version, err)
		}
	}
	return nil
}
