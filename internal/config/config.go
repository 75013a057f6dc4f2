package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	MongoURI     string        `envconfig:"MONGO_URI" default:""`
	MongoDB      string        `envconfig:"MONGO_DB" default:"marketplace"`
	MongoTimeout time.Duration `envconfig:"MONGO_TIMEOUT" default:"5s"`
	JWTSecret    string        `envconfig:"JWT_SECRET" default:"dev-secret"`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"2m"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load carga .env si existe (desarrollo local) y arma la configuración
// desde las variables de entorno
func Load(log *logrus.Logger) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.WithError(err).Warn("could not load .env file")
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
