package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	Timezone   string
	DBPath     string
	RecipeCSV  string
	RecipeXLSX string
	AdminToken string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:       get("PORT", "8080"),
		Timezone:   get("TZ", "Asia/Kolkata"),
		DBPath:     get("DB_PATH", "akolite.db"),
		RecipeCSV:  get("RECIPE_CSV", "./ResinFormulas.csv"),
		RecipeXLSX: get("RECIPE_XLSX", ""),
		AdminToken: get("ADMIN_TOKEN", ""),
	}
	log.Printf("[cfg] port=%s db=%s recipe_csv=%s admin_gate=%v",
		cfg.Port, cfg.DBPath, cfg.RecipeCSV, cfg.AdminToken != "")
	return cfg
}
