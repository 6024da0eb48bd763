package config

import (
	"log"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DBDSN       string `env:"DB_DSN" envDefault:"magnetlog.db"` // sqlite file in project root
	TemplateDir string `env:"TEMPLATE_DIR" envDefault:"./web/templates"`
	LogFile     string `env:"LOG_FILE" envDefault:"./magnetlog.log"`
}

func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("[config] parse: %v", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s TEMPLATE_DIR=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.TemplateDir, cfg.LogFile)
	return cfg
}
