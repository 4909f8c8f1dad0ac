package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "STEELQUOTE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "STEELQUOTE_DB_DSN"
	EnvDBHost = "STEELQUOTE_DB_HOST"
	EnvDBUser = "STEELQUOTE_DB_USER"
	EnvDBName = "STEELQUOTE_DB_NAME"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// sqliteDefaultDSN is the embedded database file used when the sqlite
	// flag is on and no DSN overrides it.
	sqliteDefaultDSN = "steelquote.db"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Estimation    EstimationConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = DriverSQLite
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STEELQUOTE_APP_ENV" required:"true"`
	Port         string `envconfig:"STEELQUOTE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STEELQUOTE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STEELQUOTE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STEELQUOTE_DB_DSN"`
	Driver string `envconfig:"STEELQUOTE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STEELQUOTE_DB_HOST"`
	LegacyPort     int    `envconfig:"STEELQUOTE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STEELQUOTE_DB_USER"`
	LegacyPassword string `envconfig:"STEELQUOTE_DB_PASSWORD"`
	LegacyName     string `envconfig:"STEELQUOTE_DB_NAME"`
	LegacySSLMode  string `envconfig:"STEELQUOTE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STEELQUOTE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STEELQUOTE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STEELQUOTE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STEELQUOTE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STEELQUOTE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STEELQUOTE_REDIS_ADDR"`
	Password     string        `envconfig:"STEELQUOTE_REDIS_PASSWORD"`
	DB           int           `envconfig:"STEELQUOTE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STEELQUOTE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STEELQUOTE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STEELQUOTE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STEELQUOTE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STEELQUOTE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"STEELQUOTE_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"STEELQUOTE_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"STEELQUOTE_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"STEELQUOTE_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"STEELQUOTE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"STEELQUOTE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"STEELQUOTE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"STEELQUOTE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"STEELQUOTE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"STEELQUOTE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"STEELQUOTE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"STEELQUOTE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"STEELQUOTE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"STEELQUOTE_AUTO_MIGRATE" default:"false"`
}

// EstimationConfig carries commercial defaults applied when an estimation
// does not override them.
type EstimationConfig struct {
	SteelMarkup       float64       `envconfig:"STEELQUOTE_STEEL_MARKUP" default:"0.80885358250258"`
	PanelsMarkup      float64       `envconfig:"STEELQUOTE_PANELS_MARKUP" default:"0.85"`
	FiscalYear        int           `envconfig:"STEELQUOTE_FISCAL_YEAR"`
	Currency          string        `envconfig:"STEELQUOTE_CURRENCY" default:"USD"`
	IdempotencyTTL    time.Duration `envconfig:"STEELQUOTE_CALC_IDEMPOTENCY_TTL" default:"24h"`
	ProductCacheLimit int           `envconfig:"STEELQUOTE_PRODUCT_CACHE_LIMIT" default:"512"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.Driver == DriverSQLite {
		db.DSN = sqliteDefaultDSN
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
