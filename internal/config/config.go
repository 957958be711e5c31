package config

import (
	"log"
	"os"
)

type Config struct {
	Port      string
	DBDSN     string
	SecretKey string
	LogFile   string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "almacen.db"
	} // sqlite file in project root
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "clave_segura_predeterminada"
		log.Printf("[config] SECRET_KEY not set; using development default")
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./almacen.log" // default log sink in project root
	}

	cfg := Config{Port: port, DBDSN: dsn, SecretKey: secret, LogFile: logFile}
	log.Printf("[config] PORT=%s DATABASE_URL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
