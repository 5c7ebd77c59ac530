package ranger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/logger"
	"github.com/xy-planning-network/wanderlust/postgres"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// App metadata
	AppTitleEnvVar  = "APP_TITLE"
	defaultAppTitle = "Wanderlust"

	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLevel = "INFO"
	sentryDsnEnvVar = "SENTRY_DSN"

	// Auth defaults
	bcryptCostEnvVar    = "BCRYPT_COST"
	defaultBcryptCost   = 10
	returnPathKeyEnvVar = "RETURN_PATH_KEY"

	// Database defaults
	dbHostEnvVar     = "DATABASE_HOST"
	defaultDBHost    = "localhost"
	dbNameEnvVar     = "DATABASE_NAME"
	defaultDBName    = "wanderlust"
	dbPassEnvVar     = "DATABASE_PASSWORD"
	dbPortEnvVar     = "DATABASE_PORT"
	defaultDBPort    = "5432"
	dbSSLModeEnvVar  = "DATABASE_SSLMODE"
	defaultDBSSLMode = "prefer"
	dbURLEnvVar      = "DATABASE_URL"
	dbUserEnvVar     = "DATABASE_USER"

	// Metrics defaults
	metricsAddrEnvVar = "METRICS_ADDR"

	// Web server defaults
	DefaultHost               = "localhost"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Session defaults
	SessionAuthKeyEnvVar       = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar    = "SESSION_ENCRYPTION_KEY"
	sessionRedisURLEnvVar      = "SESSION_REDIS_URL"
	sessionRedisPasswordEnvVar = "SESSION_REDIS_PASSWORD"
	defaultSessionMaxAge       = 7 * 24 * time.Hour

	// Keys usable only in DEVELOPMENT and TESTING.
	devSessionAuthKey    = "5a9f2c0e7b3d4e1f8a6c2b9d0e7f1a3c5b8d2e4f6a1c3e5b7d9f0a2c4e6b8d1f"
	devSessionEncryptKey = "c3e1a7f5b9d2e4c6a8f0b2d4e6a8c0e2f4b6d8a0c2e4f6b8d0a2c4e6f8b0d2a4"
)

var defaultBaseURL = "http://" + DefaultHost + DefaultPort

// Config is everything a *Ranger reads from its environment.
type Config struct {
	Env     wanderlust.Environment
	AppName string
	BaseURL *url.URL
	Port    string

	DB *postgres.CxnConfig

	BcryptCost    int
	ReturnPathKey []byte

	LogLevel  logger.LogLevel
	SentryDSN string

	// MetricsAddr is where the Prometheus exposition listens, apart from the app.
	// Empty leaves it unserved.
	MetricsAddr string

	SessionName          string
	SessionAuthKey       string
	SessionEncryptKey    string
	SessionMaxAge        time.Duration
	SessionRedisAddr     string
	SessionRedisPassword string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoadConfig reads a Config from environment variables, applying defaults for those not set.
// Confer the package docs for the variables read.
//
// LoadConfig fails only when the session keys are missing outside DEVELOPMENT and TESTING.
func LoadConfig() (Config, error) {
	env := wanderlust.EnvVarOrEnv(environmentEnvVar, wanderlust.Development)
	title := wanderlust.EnvVarOrString(AppTitleEnvVar, defaultAppTitle)

	cfg := Config{
		Env:        env,
		AppName:    title,
		BaseURL:    wanderlust.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL),
		Port:       normalizePort(wanderlust.EnvVarOrString(portEnvVar, DefaultPort)),
		DB:         NewPostgresConfig(),
		BcryptCost: wanderlust.EnvVarOrInt(bcryptCostEnvVar, defaultBcryptCost),
		LogLevel:   logger.NewLogLevel(wanderlust.EnvVarOrString(logLevelEnvVar, defaultLogLevel)),
		SentryDSN:  os.Getenv(sentryDsnEnvVar),

		MetricsAddr: metricsAddr(os.Getenv(metricsAddrEnvVar)),

		SessionName:       SessionName(title),
		SessionAuthKey:    os.Getenv(SessionAuthKeyEnvVar),
		SessionEncryptKey: os.Getenv(SessionEncryptKeyEnvVar),
		SessionMaxAge:     defaultSessionMaxAge,

		ReadTimeout:  wanderlust.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: wanderlust.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
		IdleTimeout:  wanderlust.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
	}

	if cfg.SessionAuthKey == "" && cfg.SessionEncryptKey == "" && env.IsLocal() {
		cfg.SessionAuthKey = devSessionAuthKey
		cfg.SessionEncryptKey = devSessionEncryptKey
	}

	if cfg.SessionAuthKey == "" || cfg.SessionEncryptKey == "" {
		return cfg, fmt.Errorf(
			"%w: %s and %s are required in %s",
			wanderlust.ErrBadConfig, SessionAuthKeyEnvVar, SessionEncryptKeyEnvVar, env,
		)
	}

	addr, pass := redisAddr(os.Getenv(sessionRedisURLEnvVar))
	cfg.SessionRedisAddr = addr
	cfg.SessionRedisPassword = wanderlust.EnvVarOrString(sessionRedisPasswordEnvVar, pass)

	if key := os.Getenv(returnPathKeyEnvVar); key != "" {
		cfg.ReturnPathKey = []byte(key)
	} else {
		cfg.ReturnPathKey = deriveKey("return-path", cfg.SessionAuthKey)
	}

	return cfg, nil
}

// NewPostgresConfig constructs a *postgres.CxnConfig from the DATABASE env vars.
// DATABASE_URL, when set, replaces all others.
func NewPostgresConfig() *postgres.CxnConfig {
	if url := os.Getenv(dbURLEnvVar); url != "" {
		return &postgres.CxnConfig{URL: url}
	}

	return &postgres.CxnConfig{
		Host:     wanderlust.EnvVarOrString(dbHostEnvVar, defaultDBHost),
		Name:     wanderlust.EnvVarOrString(dbNameEnvVar, defaultDBName),
		Password: os.Getenv(dbPassEnvVar),
		Port:     wanderlust.EnvVarOrString(dbPortEnvVar, defaultDBPort),
		SSLMode:  wanderlust.EnvVarOrString(dbSSLModeEnvVar, defaultDBSSLMode),
		User:     os.Getenv(dbUserEnvVar),
	}
}

var (
	sessionNamePunct = regexp.MustCompile(`[,':]`)
	sessionNameSpace = regexp.MustCompile(`\s+`)
)

// SessionName turns an application title into the name sessions and their cookie are stored under.
func SessionName(appName string) string {
	appName = cases.Lower(language.English).String(strings.TrimSpace(appName))
	appName = sessionNamePunct.ReplaceAllString(appName, "")
	appName = sessionNameSpace.ReplaceAllString(appName, "-")
	if appName == "" {
		appName = cases.Lower(language.English).String(defaultAppTitle)
	}

	return appName + "-session"
}

// normalizePort ensures port is an address http.Server can listen on.
func normalizePort(port string) string {
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		port = ":" + port
	}

	return port
}

// metricsAddr normalizes a METRICS_ADDR like PORT, leaving it empty when unset.
func metricsAddr(addr string) string {
	if addr = strings.TrimSpace(addr); addr == "" {
		return ""
	}

	return normalizePort(addr)
}

// redisAddr pulls the address and any password out of a Redis URL.
// A bare host:port passes through.
func redisAddr(raw string) (addr, pass string) {
	if raw == "" || !strings.Contains(raw, "://") {
		return raw, ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", ""
	}

	if u.User != nil {
		pass, _ = u.User.Password()
	}

	return u.Host, pass
}

// deriveKey derives a purpose-specific key from a hex-encoded secret.
func deriveKey(purpose, secret string) []byte {
	b, err := hex.DecodeString(secret)
	if err != nil {
		b = []byte(secret)
	}

	sum := sha256.Sum256(append([]byte("wanderlust-"+purpose+":"), b...))
	return sum[:]
}
