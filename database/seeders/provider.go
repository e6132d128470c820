package seeders

import (
	"errors"

	"agenda.link/configs"
	"agenda.link/configs/configslog"
	"agenda.link/models"

	"gorm.io/gorm"
)

// SeedDemoProvider guarantees one bookable provider account exists so a
// fresh database is immediately usable. Credentials come from the
// environment; the defaults are for local development only.
func SeedDemoProvider(db *gorm.DB) error {
	email := configs.GetEnv("SEED_PROVIDER_EMAIL", "provider@agenda.link")

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	provider := models.User{
		Name:     configs.GetEnv("SEED_PROVIDER_NAME", "Demo Provider"),
		Email:    email,
		Provider: true,
	}
	if err := provider.SetPassword(configs.GetEnv("SEED_PROVIDER_PASSWORD", "changeme")); err != nil {
		return err
	}
	if err := db.Create(&provider).Error; err != nil {
		return err
	}

	configslog.SLog.Infof("demo provider seeded: %s (id %d)", email, provider.ID)
	return nil
}
