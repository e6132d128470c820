package migrations

import (
	"agenda.link/configs/configslog"
	"agenda.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUsersTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		configslog.Log.Error("users table migration failed", zap.Error(err))
		return err
	}
	return nil
}
