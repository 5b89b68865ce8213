package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port         string
	DBPath       string
	DatasetPath  string
	BoundaryPath string
	JWTSecret    string
}

// Load reads the configuration from the environment, applying defaults
func Load() *Config {
	return &Config{
		Port:         envOr("PORT", ":8080"),
		DBPath:       envOr("DB_PATH", "./data/alunos.db"),
		DatasetPath:  envOr("DATASET_PATH", "./alunos_emocoes_1000.csv"),
		BoundaryPath: envOr("BOUNDARY_PATH", "./es_limites.geojson"),
		JWTSecret:    envOr("JWT_SECRET", "your-secret-key-change-in-production"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
