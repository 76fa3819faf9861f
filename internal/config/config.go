package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const configPathEnv = "SALES_CONFIG_PATH"

type SalesConfig struct {
	Env          string `yaml:"env" env:"SALES_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	GRPCServer   `yaml:"grpc_server"`
	SalesDB      `yaml:"sales_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Sync         `yaml:"sync"`
	Auth         `yaml:"auth"`
	Report       `yaml:"report"`
}

type HTTPServer struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	MaxUploadMB     int64         `yaml:"max_upload_mb" env-default:"20"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"9090"`
	// HealthInterval is how often the database is pinged for the health status.
	HealthInterval time.Duration `yaml:"health_interval" env-default:"15s"`
}

type SalesDB struct {
	Dsn             string        `yaml:"dsn" env:"SALES_DB_DSN" env-required:"true"`
	AutoMigrate     bool          `yaml:"auto_migrate" env:"SALES_DB_AUTO_MIGRATE" env-default:"false"`
	MigrationsPath  string        `yaml:"migrations_path" env:"SALES_DB_MIGRATIONS" env-default:"file://migrations"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"30m"`
	LogQueries      bool          `yaml:"log_queries" env-default:"false"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"KAFKA_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"KAFKA_PORT" env-default:"9092"`
	Topic   string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"sales-events"`
}

type Sync struct {
	PageSize            int           `yaml:"page_size" env-default:"100"`
	RequestTimeout      time.Duration `yaml:"request_timeout" env:"SYNC_REQUEST_TIMEOUT" env-default:"30s"`
	SchedulerTick       time.Duration `yaml:"scheduler_tick" env-default:"1m"`
	DefaultLocationName string        `yaml:"default_location_name" env-default:"Unknown Location"`
	NotifyTimeout       time.Duration `yaml:"notify_timeout" env-default:"5s"`
}

type Auth struct {
	SessionTTL    time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"24h"`
	CookieName    string        `yaml:"cookie_name" env-default:"sales_session"`
	SecureCookie  bool          `yaml:"secure_cookie" env:"SECURE_COOKIE" env-default:"false"`
	BcryptCost    int           `yaml:"bcrypt_cost" env-default:"10"`
	PurgeInterval time.Duration `yaml:"purge_interval" env-default:"1h"`
}

type Report struct {
	Timezone string `yaml:"timezone" env:"REPORT_TIMEZONE" env-default:"UTC"`
}

// Location resolves the configured report timezone.
func (r Report) Location() (*time.Location, error) {
	if r.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(r.Timezone)
}

func (s HTTPServer) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func (s GRPCServer) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func (k KafkaService) Broker() string {
	return fmt.Sprintf("%s:%s", k.Host, k.Port)
}

// Load reads the YAML file at path, then applies environment overrides.
func Load(path string) (*SalesConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	var cfg SalesConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *SalesConfig {
	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		log.Fatalf("%s was not found\n", configPathEnv)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	return cfg
}
