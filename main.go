package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"topzone/controllers"
	"topzone/database"
	"topzone/routes"
	"topzone/services"
	"topzone/storage"
	"topzone/utils/logger"
)

func newStore() storage.Storage {
	if os.Getenv("STORAGE_DRIVER") != "postgres" {
		return storage.NewMemoryStorage()
	}

	db, err := database.Connect()
	if err != nil {
		logger.Fatalf("Failed to set up database: %v", err)
	}
	store := storage.NewPostgresStorage(db)
	if err := store.SeedIfEmpty(); err != nil {
		logger.Fatalf("Failed to seed database: %v", err)
	}
	return store
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment")
	}

	store := newStore()
	orders := services.NewOrderService(store)
	ctl := controllers.New(store, orders)

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3000"
	}

	app := fiber.New()
	routes.Setup(app, ctl)

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Infof("Server running at %s", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("Gracefully shutting down...")
	if err := app.Shutdown(); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exited cleanly")
}
