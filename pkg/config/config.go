package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	FeatureFlags FeatureFlagsConfig
	Routing      RoutingConfig
	Geo          GeoConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Outbox       OutboxConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LEADROUTER_APP_ENV" required:"true"`
	Port         string `envconfig:"LEADROUTER_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LEADROUTER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LEADROUTER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"LEADROUTER_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"LEADROUTER_DB_DSN"`
	Driver string `envconfig:"LEADROUTER_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LEADROUTER_DB_HOST"`
	LegacyPort     int    `envconfig:"LEADROUTER_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LEADROUTER_DB_USER"`
	LegacyPassword string `envconfig:"LEADROUTER_DB_PASSWORD"`
	LegacyName     string `envconfig:"LEADROUTER_DB_NAME"`
	LegacySSLMode  string `envconfig:"LEADROUTER_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LEADROUTER_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LEADROUTER_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LEADROUTER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LEADROUTER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LEADROUTER_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LEADROUTER_REDIS_ADDR"`
	Password     string        `envconfig:"LEADROUTER_REDIS_PASSWORD"`
	DB           int           `envconfig:"LEADROUTER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LEADROUTER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LEADROUTER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LEADROUTER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LEADROUTER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LEADROUTER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"LEADROUTER_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"LEADROUTER_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"LEADROUTER_JWT_EXPIRATION_MINUTES" default:"60"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"LEADROUTER_AUTO_MIGRATE" default:"false"`
}

// RoutingConfig carries engine-wide routing knobs. Per-account distribution
// percentages live on the accounts table, not in the environment.
type RoutingConfig struct {
	BulkReassignConcurrency int `envconfig:"LEADROUTER_ROUTING_BULK_CONCURRENCY" default:"4"`
}

type GeoConfig struct {
	CacheTTL time.Duration `envconfig:"LEADROUTER_GEO_CACHE_TTL" default:"24h"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"LEADROUTER_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"LEADROUTER_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"LEADROUTER_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	RoutingTopic        string `envconfig:"LEADROUTER_PUBSUB_ROUTING_TOPIC" default:"lr-routing-events"`
	RoutingSubscription string `envconfig:"LEADROUTER_PUBSUB_ROUTING_SUBSCRIPTION"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"LEADROUTER_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"LEADROUTER_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"LEADROUTER_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
