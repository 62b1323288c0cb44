package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snowschool_backend/internals/configs"
	database "snowschool_backend/internals/databases"
	routes "snowschool_backend/internals/route"
	"snowschool_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Get()

	// 🔌 DB connect + pool + schema
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("❌ database: %v", err)
	}
	database.TunePool(db)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ migrate: %v", err)
	}

	// 🌱 demo data locally, the full data set for the throwaway in-memory database
	switch {
	case cfg.UsesMemoryDB():
		if err := seeds.RunAllSeeds(db, seeds.ProfileNeon); err != nil {
			log.Printf("[WARN] seed %s: %v", seeds.ProfileNeon, err)
		}
	case !cfg.IsProduction():
		if err := seeds.RunAllSeeds(db, seeds.ProfileDemo); err != nil {
			log.Printf("[WARN] seed %s: %v", seeds.ProfileDemo, err)
		}
	}

	app := routes.NewApp(cfg, db)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + close the DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("👋 Server stopped")
}
