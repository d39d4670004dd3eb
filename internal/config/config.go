package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvironmentProduction = "production"

// Config конфигурация сервисов, переменные окружения с префиксом WAIVER
type Config struct {
	App      AppConfig      `envconfig:"APP"`
	HTTP     HTTPConfig     `envconfig:"HTTP"`
	Mongo    MongoConfig    `envconfig:"MONGO"`
	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`
	Kafka    KafkaConfig    `envconfig:"KAFKA"`
	Rabbit   RabbitConfig   `envconfig:"RABBIT"`
	Batch    BatchConfig    `envconfig:"BATCH"`
	Tracing  TracingConfig  `envconfig:"OTEL"`
}

type AppConfig struct {
	Name            string        `envconfig:"NAME" default:"cardfee"`
	Environment     string        `envconfig:"ENV" default:"development"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

type HTTPConfig struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
}

// MongoConfig хранилище правил
type MongoConfig struct {
	URI        string        `envconfig:"URI"`
	Database   string        `envconfig:"DATABASE" default:"waiverDB"`
	Collection string        `envconfig:"COLLECTION" default:"waiver_rules"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// DatabaseConfig Postgres: карты, транзакции, записи о плате
type DatabaseConfig struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"5432"`
	Name     string `envconfig:"NAME"`
	User     string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
	MaxConns int32  `envconfig:"MAX_CONNS" default:"10"`
}

// RedisConfig кэш снимков метрик, пустой адрес отключает кэш
type RedisConfig struct {
	Addr     string        `envconfig:"ADDR"`
	User     string        `envconfig:"USER"`
	Password string        `envconfig:"PASSWORD"`
	DB       int           `envconfig:"DB" default:"0"`
	TTL      time.Duration `envconfig:"TTL" default:"10m"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"BROKERS"`
	Topic   string   `envconfig:"TOPIC" default:"fee_due"`
	GroupID string   `envconfig:"GROUP_ID" default:"cardfee_duefees"`
	Workers int      `envconfig:"WORKERS" default:"5"`
}

// RabbitConfig уведомления о решениях, пустой URL отключает публикацию
type RabbitConfig struct {
	URL   string `envconfig:"URL"`
	Queue string `envconfig:"QUEUE" default:"fee_waiver_notifications"`
}

type BatchConfig struct {
	Concurrency int `envconfig:"CONCURRENCY" default:"4"`
	// 0 - предыдущий календарный год
	FeeYear int `envconfig:"FEE_YEAR" default:"0"`
}

// TracingConfig пустой endpoint отключает экспорт трейсов
type TracingConfig struct {
	Endpoint    string `envconfig:"ENDPOINT"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"cardfee"`
}

// Загрузка переменных окружения WAIVER_* с проверкой
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("WAIVER", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Общие настройки; kafka проверяет бинарник, который ее использует
func (c *Config) Validate() error {
	switch c.App.Environment {
	case "development", "staging", EnvironmentProduction:
	default:
		return fmt.Errorf("unknown environment %q", c.App.Environment)
	}
	if err := validatePort(c.HTTP.Port, "http"); err != nil {
		return err
	}
	if err := c.Mongo.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(c.App.Environment); err != nil {
		return err
	}
	if c.Redis.Addr != "" && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis TTL must be positive, got %s", c.Redis.TTL)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch concurrency must be at least 1, got %d", c.Batch.Concurrency)
	}
	if c.Batch.FeeYear < 0 {
		return fmt.Errorf("batch fee year must not be negative, got %d", c.Batch.FeeYear)
	}
	return nil
}

func (c *MongoConfig) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("mongo URI cannot be empty")
	}
	if !strings.HasPrefix(c.URI, "mongodb://") && !strings.HasPrefix(c.URI, "mongodb+srv://") {
		return fmt.Errorf("mongo URI must start with mongodb:// or mongodb+srv://")
	}
	if c.Database == "" || c.Collection == "" {
		return fmt.Errorf("mongo database and collection cannot be empty")
	}
	return nil
}

func (c *DatabaseConfig) Validate(environment string) error {
	if c.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if err := validatePort(c.Port, "database"); err != nil {
		return err
	}
	if c.Name == "" {
		return fmt.Errorf("database name cannot be empty")
	}
	if c.User == "" {
		return fmt.Errorf("database user cannot be empty")
	}
	if environment == EnvironmentProduction && c.Password == "" {
		return fmt.Errorf("database password is required in production")
	}
	if c.MaxConns < 1 {
		return fmt.Errorf("database max conns must be at least 1, got %d", c.MaxConns)
	}
	return nil
}

// DSN для pgxpool
func (c *DatabaseConfig) ConnectionString() string {
	params := url.Values{}
	params.Add("sslmode", c.SSLMode)
	params.Add("pool_max_conns", strconv.Itoa(int(c.MaxConns)))

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: params.Encode(),
	}
	return dsn.String()
}

func (c *KafkaConfig) Validate() error {
	if len(c.Brokers) == 0 {
		return fmt.Errorf("kafka brokers cannot be empty")
	}
	if c.Topic == "" {
		return fmt.Errorf("kafka topic cannot be empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("kafka workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Год расчета: из настроек или предыдущий
func (c *BatchConfig) Year(now time.Time) int {
	if c.FeeYear > 0 {
		return c.FeeYear
	}
	return now.Year() - 1
}

func validatePort(port, context string) error {
	if port == "" {
		return fmt.Errorf("%s port cannot be empty", context)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("%s port must be a number: %w", context, err)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("%s port must be between 1 and 65535, got %d", context, n)
	}
	return nil
}
