package config

import (
	"log"
	"os"
)

type Config struct {
	Port      string
	DBDSN     string
	StaticDir string
	LogFile   string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		// In-memory store: catalog and orders live for the process lifetime only.
		dsn = ":memory:"
	}
	static := os.Getenv("STATIC_DIR")
	if static == "" {
		static = "./web/static"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, StaticDir: static, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s STATIC_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.StaticDir, cfg.LogFile)
	return cfg
}
