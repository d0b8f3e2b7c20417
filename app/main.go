package main

import (
	"os"
	"os/signal"
	"sync"

	"contacts/config"
	"contacts/middleware"
	"contacts/services/contact/delivery"
	"contacts/services/contact/repository"
	"contacts/services/contact/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	middleware.Setup(app)

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	contactRepo := repository.NewContactRepository(db, config.GetUpsertOnDuplicate())
	contactUC := usecase.NewContactUseCase(contactRepo, config.GetUseCaseTimeout())
	delivery.NewContactHandler(app, contactUC, config.GetUploadDir())

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	if err := config.CloseDB(db); err != nil {
		log.Errorf("Error closing database: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
