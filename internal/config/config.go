package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	LogLevel           logging.Level
	CORSAllowedOrigins []string

	// DBURL empty means the service runs entirely on in-memory stores with
	// the seeded player catalog. Useful for local development and demos.
	DBURL                   string
	DBDisablePreparedBinary bool

	DraftMinParticipants int
	DraftRounds          int

	CacheEnabled bool
	CacheTTL     time.Duration

	AuthBaseURL               string
	AuthIntrospectPath        string
	AuthTimeout               time.Duration
	AuthCacheTTL              time.Duration
	AuthCacheMaxEntries       int
	AuthCircuitEnabled        bool
	AuthCircuitFailureCount   int
	AuthCircuitOpenTimeout    time.Duration
	AuthCircuitHalfOpenMaxReq int

	PushEnabled         bool
	PushVAPIDPublicKey  string
	PushVAPIDPrivateKey string
	PushSubscriber      string
	PushTTL             time.Duration
	PushWorkerPoolSize  int

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(getEnv("APP_SHUTDOWN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_SHUTDOWN_TIMEOUT: %w", err)
	}

	draftMinParticipants, err := getEnvAsInt("DRAFT_MIN_PARTICIPANTS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DRAFT_MIN_PARTICIPANTS: %w", err)
	}
	if draftMinParticipants < 2 {
		return Config{}, fmt.Errorf("DRAFT_MIN_PARTICIPANTS must be >= 2")
	}
	draftRounds, err := getEnvAsInt("DRAFT_ROUNDS", 15)
	if err != nil {
		return Config{}, fmt.Errorf("parse DRAFT_ROUNDS: %w", err)
	}
	if draftRounds < 1 {
		return Config{}, fmt.Errorf("DRAFT_ROUNDS must be >= 1")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	authTimeout, err := time.ParseDuration(getEnv("AUTH_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_TIMEOUT: %w", err)
	}
	authCacheTTL, err := time.ParseDuration(getEnv("AUTH_CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_CACHE_TTL: %w", err)
	}
	authCacheMaxEntries, err := getEnvAsInt("AUTH_CACHE_MAX_ENTRIES", 2048)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_CACHE_MAX_ENTRIES: %w", err)
	}
	if authCacheMaxEntries < 0 {
		return Config{}, fmt.Errorf("AUTH_CACHE_MAX_ENTRIES must be >= 0")
	}
	authCircuitEnabled, err := strconv.ParseBool(getEnv("AUTH_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_CIRCUIT_ENABLED: %w", err)
	}
	authCircuitFailureCount, err := getEnvAsInt("AUTH_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if authCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("AUTH_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	authCircuitOpenTimeout, err := time.ParseDuration(getEnv("AUTH_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if authCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("AUTH_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	authCircuitHalfOpenMaxReq, err := getEnvAsInt("AUTH_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if authCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("AUTH_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pushEnabled, err := strconv.ParseBool(getEnv("PUSH_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PUSH_ENABLED: %w", err)
	}
	pushVAPIDPublicKey := strings.TrimSpace(getEnv("PUSH_VAPID_PUBLIC_KEY", ""))
	pushVAPIDPrivateKey := strings.TrimSpace(getEnv("PUSH_VAPID_PRIVATE_KEY", ""))
	if pushEnabled {
		if pushVAPIDPublicKey == "" {
			return Config{}, fmt.Errorf("PUSH_VAPID_PUBLIC_KEY is required when PUSH_ENABLED=true")
		}
		if pushVAPIDPrivateKey == "" {
			return Config{}, fmt.Errorf("PUSH_VAPID_PRIVATE_KEY is required when PUSH_ENABLED=true")
		}
	}
	pushTTL, err := time.ParseDuration(getEnv("PUSH_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PUSH_TTL: %w", err)
	}
	if pushTTL <= 0 {
		return Config{}, fmt.Errorf("PUSH_TTL must be > 0")
	}
	pushWorkerPoolSize, err := getEnvAsInt("PUSH_WORKER_POOL_SIZE", 32)
	if err != nil {
		return Config{}, fmt.Errorf("parse PUSH_WORKER_POOL_SIZE: %w", err)
	}
	if pushWorkerPoolSize < 1 {
		return Config{}, fmt.Errorf("PUSH_WORKER_POOL_SIZE must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "futdrafts-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		ShutdownTimeout:    shutdownTimeout,
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		DBURL:                   strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary: dbDisablePreparedBinary,

		DraftMinParticipants: draftMinParticipants,
		DraftRounds:          draftRounds,

		CacheEnabled: cacheEnabled,
		CacheTTL:     cacheTTL,

		AuthBaseURL:               getEnv("AUTH_BASE_URL", "http://localhost:8081"),
		AuthIntrospectPath:        getEnv("AUTH_INTROSPECT_PATH", "/v1/auth/introspect"),
		AuthTimeout:               authTimeout,
		AuthCacheTTL:              authCacheTTL,
		AuthCacheMaxEntries:       authCacheMaxEntries,
		AuthCircuitEnabled:        authCircuitEnabled,
		AuthCircuitFailureCount:   authCircuitFailureCount,
		AuthCircuitOpenTimeout:    authCircuitOpenTimeout,
		AuthCircuitHalfOpenMaxReq: authCircuitHalfOpenMaxReq,

		PushEnabled:         pushEnabled,
		PushVAPIDPublicKey:  pushVAPIDPublicKey,
		PushVAPIDPrivateKey: pushVAPIDPrivateKey,
		PushSubscriber:      getEnv("PUSH_SUBSCRIBER", "mailto:ops@futdrafts.com"),
		PushTTL:             pushTTL,
		PushWorkerPoolSize:  pushWorkerPoolSize,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		UptraceLogsEnabled: uptraceLogsEnabled,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

// MemoryMode reports whether the service should run on in-memory stores.
func (c Config) MemoryMode() bool {
	return c.DBURL == ""
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
