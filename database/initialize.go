package database

import (
	"agenda.link/configs/configslog"
	"agenda.link/database/migrations"
	"agenda.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders inside one transaction.
func Initialize(db *gorm.DB, migrate, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("neither migrate nor seed requested, nothing to do")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("running migrations...")
			if err := RunMigrationsInOrder(tx); err != nil {
				return err
			}
			configslog.SLog.Info("migrations done")
		}
		if seed {
			configslog.SLog.Info("running seeders...")
			if err := seeders.SeedDemoProvider(tx); err != nil {
				configslog.Log.Error("seeding failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("seeders done")
		}
		return nil
	})
}

// RunMigrationsInOrder migrates tables respecting their foreign-key
// dependencies: files before users (avatar FK), users before
// appointments and notifications.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"files", migrations.MigrateFilesTable},
		{"users", migrations.MigrateUsersTable},
		{"appointments", migrations.MigrateAppointmentsTable},
		{"notifications", migrations.MigrateNotificationsTable},
	}
	for _, step := range steps {
		configslog.SLog.Infof(" -> migrating %s...", step.name)
		if err := step.run(db); err != nil {
			return err
		}
	}
	return nil
}
