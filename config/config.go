package config

import (
	"fmt"
	"sync"

	val "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `envconfig:"APP_NAME"`
		// Timezone overrides the host environment when resolving the
		// process zone. Empty means follow TZ / the system default.
		Timezone string `envconfig:"TIMEZONE" validate:"omitempty,timezone"`
		// ZoneinfoDirs overrides the zoneinfo search path used for zone
		// enumeration and database version detection.
		ZoneinfoDirs []string `envconfig:"ZONEINFO_DIRS"`
	} `envconfig:"APP"`
}

var (
	conf        Config
	once        sync.Once
	validate    = val.New()
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		err = validate.Struct(&conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid timezone configuration")
		}

		initialized = true

		log.Info().Msg("Library configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
