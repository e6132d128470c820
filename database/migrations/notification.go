package migrations

import (
	"agenda.link/configs/configslog"
	"agenda.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateNotificationsTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Notification{}); err != nil {
		configslog.Log.Error("notifications table migration failed", zap.Error(err))
		return err
	}
	return nil
}
