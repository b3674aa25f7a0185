package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CIRCULATION_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"CIRCULATION_HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Circulation struct {
	// OverdueAfter is how long a loan may stay open before the overdue report lists it.
	// No per-loan due date is stored.
	OverdueAfter  time.Duration `yaml:"overdueAfter" envconfig:"CIRCULATION_OVERDUE_AFTER" default:"720h"`
	PageSizeLimit int           `yaml:"pageSizeLimit" envconfig:"CIRCULATION_PAGE_SIZE_LIMIT" default:"100"`
	// PreCheck reads copy state before inserting to fail fast with a friendly error.
	// The partial unique index stays the only guarantee.
	PreCheck bool `yaml:"preCheck" envconfig:"CIRCULATION_PRE_CHECK" default:"true"`
}

type Config struct {
	Server      HTTPServer   `yaml:"server"`
	Database    postgres.DB  `yaml:"db"`
	Kafka       kafka.Config `yaml:"kafka"`
	Circulation Circulation  `yaml:"circulation"`
	Log         logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

// Load applies ops and then the environment on top of them.
func Load(ops ...Option) (*Config, error) {
	config := Config{
		Server: HTTPServer{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
