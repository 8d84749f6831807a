package main

import (
	"context"
	"log"

	"ai-medtutor-be/internal/bootstrap"
	"ai-medtutor-be/internal/config"
	"ai-medtutor-be/internal/server"
	"ai-medtutor-be/internal/tracer"
	"ai-medtutor-be/pkg/database"
)

func main() {
	// 1. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	// Subscribe before the server listens; records published earlier
	// than the subscription would be dropped.
	log.Println("Background: Starting Recorder Service...")
	if err := container.RecorderService.Consume(context.Background()); err != nil {
		log.Panicf("Unable to start recorder: %v", err)
	}

	// 6. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
