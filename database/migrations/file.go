package migrations

import (
	"agenda.link/configs/configslog"
	"agenda.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateFilesTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.File{}); err != nil {
		configslog.Log.Error("files table migration failed", zap.Error(err))
		return err
	}
	return nil
}
