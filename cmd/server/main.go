package main

import (
	"log"

	"github.com/felippedeabreu/emocaoalunov3/internal/api"
	"github.com/felippedeabreu/emocaoalunov3/internal/boundary"
	"github.com/felippedeabreu/emocaoalunov3/internal/config"
	"github.com/felippedeabreu/emocaoalunov3/internal/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// The region outline is optional: without it the map filter degrades
	// to the bounding box.
	b, err := boundary.Load(cfg.BoundaryPath)
	if err != nil {
		log.Printf("Region boundary unavailable, using bounding box only: %v", err)
		b = nil
	}

	router := api.SetupRouter(cfg, db, b)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
