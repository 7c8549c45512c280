package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Storage StorageConfig
	Redis   RedisConfig
	Broker  BrokerConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Policy  PolicyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" default:"resort"`
	Password      string `envconfig:"DB_PASSWORD" default:""`
	DBName        string `envconfig:"DB_NAME" default:"resort"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns      int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate   bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"file://migrations"`
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type StorageConfig struct {
	// memory keeps all state in-process; used for demos and local runs
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	QuoteTTL time.Duration `envconfig:"QUOTE_CACHE_TTL" default:"10m"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type BrokerConfig struct {
	URL        string `envconfig:"AMQP_URL" default:""`
	Exchange   string `envconfig:"AMQP_EXCHANGE" default:"resort.notifications"`
	RoutingKey string `envconfig:"AMQP_ROUTING_KEY" default:"notification"`
	Workers    int    `envconfig:"NOTIFY_WORKERS" default:"2"`
	QueueSize  int    `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
}

func (c BrokerConfig) Enabled() bool {
	return c.URL != ""
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Accept-Language,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// PolicyConfig holds the lifecycle and availability windows of the engine.
type PolicyConfig struct {
	TimeZone        string        `envconfig:"POLICY_TIMEZONE" default:"UTC"`
	CheckInGrace    time.Duration `envconfig:"CHECK_IN_GRACE" default:"1h"`
	CancelCutoff    time.Duration `envconfig:"CANCEL_CUTOFF" default:"2h"`
	SeatingWindow   time.Duration `envconfig:"SEATING_WINDOW" default:"1h"`
	MinimumBlock    time.Duration `envconfig:"MINIMUM_BLOCK" default:"1h"`
	VerificationTTL time.Duration `envconfig:"VERIFICATION_TTL" default:"10m"`
}

func (c PolicyConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid POLICY_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	switch cfg.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:          "localhost",
			Port:          "15433", // Test DB port
			User:          "test",
			Password:      "test",
			DBName:        "test_db",
			SSLMode:       "disable",
			TimeZone:      "UTC",
			MaxConns:      10,
			MigrationsDir: "file://migrations",
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		Redis: RedisConfig{
			QuoteTTL: 10 * time.Minute,
		},
		Broker: BrokerConfig{
			Exchange:   "resort.notifications",
			RoutingKey: "notification",
			Workers:    1,
			QueueSize:  16,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Policy: PolicyConfig{
			TimeZone:        "UTC",
			CheckInGrace:    time.Hour,
			CancelCutoff:    2 * time.Hour,
			SeatingWindow:   time.Hour,
			MinimumBlock:    time.Hour,
			VerificationTTL: 10 * time.Minute,
		},
	}
}
