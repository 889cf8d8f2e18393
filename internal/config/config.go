package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-default:"local"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Data       Data
	Store      Store
	Render     Render
	Limiter    Limiter
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
}

// Data points at the input files. Defaults match the layout the analysis
// ships with, so a bare run needs no environment at all.
type Data struct {
	Referendum  string `env:"DATA_REFERENDUM" env-default:"data/referendum.csv" env-description:"semicolon-delimited referendum results"`
	Regions     string `env:"DATA_REGIONS" env-default:"data/regions.csv"`
	Departments string `env:"DATA_DEPARTMENTS" env-default:"data/departments.csv"`
	Shapes      string `env:"DATA_SHAPES" env-default:"data/regions.geojson" env-description:"region boundary feature collection"`
}

type Store struct {
	Enabled bool   `env:"STORE_ENABLED" env-default:"true" env-description:"archive each run into the local results database"`
	Path    string `env:"STORE_PATH" env-default:"data/referendum.db"`
}

type Render struct {
	Width  int `env:"RENDER_WIDTH" env-default:"960"`
	Height int `env:"RENDER_HEIGHT" env-default:"960"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
