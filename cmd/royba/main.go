package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/andikahakim/royba/internal/api"
	"github.com/andikahakim/royba/internal/i18n"
	"github.com/andikahakim/royba/internal/security"
	"github.com/andikahakim/royba/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	location := mustLoadLocation(getEnv("TZ", "Asia/Jakarta"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "")
	if secretKey == "" {
		generated, err := security.RandomSecret(48)
		if err != nil {
			log.Fatalf("generate session secret failed: %v", err)
		}
		secretKey = generated
		log.Printf("SECRET_KEY not set, using an ephemeral secret; sessions reset on restart")
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "royba.db"))
	port := getEnv("PORT", "8080")
	defaultLanguage := getEnv("DEFAULT_LANGUAGE", "id")

	kv, err := store.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	records, err := store.New(kv, store.NewCodec())
	if err != nil {
		log.Fatalf("record store init failed: %v", err)
	}

	translator, err := i18n.NewManager(defaultLanguage)
	if err != nil {
		log.Fatalf("i18n init failed: %v", err)
	}

	handler := api.NewHandler(records, secretKey, translator, defaultLanguage)

	app := fiber.New(fiber.Config{
		AppName:               "Royba",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Royba listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
