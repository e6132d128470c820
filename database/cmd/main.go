package main

import (
	"flag"

	"agenda.link/configs"
	"agenda.link/configs/configsdatabase"
	"agenda.link/configs/configslog"
	"agenda.link/database"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "run database migrations")
	seedFlag := flag.Bool("seed", false, "run database seeders")
	flag.Parse()

	configs.LoadConfig()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	if err := database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Fatal("database initialization failed", zap.Error(err))
	}
	configslog.SLog.Info("database initialization finished")
}
