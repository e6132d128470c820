package migrations

import (
	"agenda.link/configs/configslog"
	"agenda.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateAppointmentsTable creates the appointments table plus the
// partial unique index that guarantees at most one active appointment
// per (provider, slot) even under concurrent bookings.
func MigrateAppointmentsTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		configslog.Log.Error("appointments table migration failed", zap.Error(err))
		return err
	}

	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uidx_appointments_active_slot
		ON appointments (provider_id, date)
		WHERE canceled_at IS NULL
	`).Error
	if err != nil {
		configslog.Log.Error("active-slot unique index creation failed", zap.Error(err))
		return err
	}
	return nil
}
