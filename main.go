package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/configs"
	database "ksms_backend/internals/databases"
	helper "ksms_backend/internals/helpers"
	middlewares "ksms_backend/internals/middlewares"
	routes "ksms_backend/internals/route"
	"ksms_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()

	fiberCfg := fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		BodyLimit:             cfg.UploadMaxBytes + 1024*1024,
		DisableStartupMessage: true,
	}
	middlewares.ApplyTrustedProxies(&fiberCfg, cfg.TrustedProxies)
	app := fiber.New(fiberCfg)

	middlewares.SetupMiddlewares(app, cfg)

	db := database.ConnectDB(cfg)
	database.TunePool(db, cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	database.WarmUpQueries(db)

	rdb := database.ConnectRedis(cfg)

	if cfg.SeedOnStart {
		if err := seeds.Run(context.Background(), db, cfg); err != nil {
			log.Printf("[WARN] seeding: %v", err)
		}
	}

	if err := routes.SetupRoutes(app, db, rdb, cfg); err != nil {
		log.Fatalf("[FATAL] routes: %v", err)
	}

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("[INFO] listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if rdb != nil {
		_ = rdb.Close()
	}
	database.Close(db)
}
