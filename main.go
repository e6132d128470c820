package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenda.link/configs"
	"agenda.link/configs/configsdatabase"
	"agenda.link/configs/configslog"
	"agenda.link/handlers"
	"agenda.link/jobs"
	"agenda.link/mailer"
	"agenda.link/models"
	"agenda.link/queue"
	"agenda.link/repositories"
	"agenda.link/routes"
	"agenda.link/services"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadConfig()
	if cfg.JWTSecret == "" {
		configslog.Log.Fatal("JWT_SECRET is required")
	}
	models.FileBaseURL = cfg.AppURL + "/files"

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	// stores
	userRepo := repositories.NewUserRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	fileRepo := repositories.NewFileRepository(db)

	// background jobs
	q := queue.New(cfg.QueueSize)
	q.Register(jobs.CancellationMailKind, jobs.NewCancellationMailHandler(mailer.NewSMTPMailer(cfg)))
	q.Start(cfg.QueueWorkers)

	// services
	userService := services.NewUserService(userRepo, fileRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, userRepo, q)
	availabilityService := services.NewAvailabilityService(appointmentRepo, userRepo)
	scheduleService := services.NewScheduleService(appointmentRepo, userRepo)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	fileService := services.NewFileService(fileRepo, cfg.UploadDir)

	app := fiber.New(fiber.Config{
		AppName:     "agenda.link",
		JSONEncoder: jsoniter.Marshal,
		JSONDecoder: jsoniter.Unmarshal,
	})

	routes.SetupRoutes(app, routes.Handlers{
		Session:      handlers.NewSessionHandler(userService, cfg.JWTSecret),
		User:         handlers.NewUserHandler(userService),
		File:         handlers.NewFileHandler(fileService),
		Provider:     handlers.NewProviderHandler(userService),
		Available:    handlers.NewAvailableHandler(availabilityService),
		Appointment:  handlers.NewAppointmentHandler(appointmentService),
		Schedule:     handlers.NewScheduleHandler(scheduleService),
		Notification: handlers.NewNotificationHandler(notificationService),
	}, cfg.JWTSecret, cfg.UploadDir)

	go func() {
		configslog.SLog.Infof("listening on :%s", cfg.AppPort)
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			configslog.Log.Fatal("server stopped", zap.Error(err))
		}
	}()

	// graceful shutdown: stop accepting requests, then drain the queue
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	configslog.SLog.Info("shutting down...")

	if err := app.Shutdown(); err != nil {
		configslog.Log.Error("http shutdown failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := q.Shutdown(ctx); err != nil {
		configslog.Log.Warn("queue drain timed out", zap.Error(err))
	}
}
