package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// Config stores runtime configuration for the simulator.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	LogLevel                logging.Level
	StoreDriver             string
	DBURL                   string
	DBDisablePreparedBinary bool
	DBAutoMigrate           bool
	MigrationsDir           string
	Season                  string
	SimSeed                 uint64
	SimWorkers              int
	SimGameweeks            int
	PlayerCacheSize         int
	PlayerCacheTTL          time.Duration
	UptraceEnabled          bool
	UptraceDSN              string
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeUploadRate     time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	storeDriver := strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", StoreDriverMemory)))
	switch storeDriver {
	case StoreDriverMemory, StoreDriverPostgres:
	default:
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q: valid values are %s, %s", storeDriver, StoreDriverMemory, StoreDriverPostgres)
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storeDriver == StoreDriverPostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORE_DRIVER=postgres")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	dbAutoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_AUTO_MIGRATE: %w", err)
	}

	season := strings.TrimSpace(getEnv("SEASON", "2025/2026"))
	simSeed, err := strconv.ParseUint(strings.TrimSpace(getEnv("SIM_SEED", "20252026")), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse SIM_SEED: %w", err)
	}
	simWorkers, err := getEnvAsInt("SIM_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SIM_WORKERS: %w", err)
	}
	if simWorkers < 1 {
		return Config{}, fmt.Errorf("SIM_WORKERS must be >= 1")
	}
	simGameweeks, err := getEnvAsInt("SIM_GAMEWEEKS", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SIM_GAMEWEEKS: %w", err)
	}
	if simGameweeks < 1 || simGameweeks > 38 {
		return Config{}, fmt.Errorf("SIM_GAMEWEEKS must be between 1 and 38")
	}

	playerCacheSize, err := getEnvAsInt("PLAYER_CACHE_SIZE", 1024)
	if err != nil {
		return Config{}, fmt.Errorf("parse PLAYER_CACHE_SIZE: %w", err)
	}
	if playerCacheSize < 0 {
		return Config{}, fmt.Errorf("PLAYER_CACHE_SIZE must be >= 0")
	}
	playerCacheTTL, err := time.ParseDuration(getEnv("PLAYER_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PLAYER_CACHE_TTL: %w", err)
	}
	if playerCacheTTL <= 0 {
		return Config{}, fmt.Errorf("PLAYER_CACHE_TTL must be > 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
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

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "fantasy-draft"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		StoreDriver:             storeDriver,
		DBURL:                   dbURL,
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		DBAutoMigrate:           dbAutoMigrate,
		MigrationsDir:           strings.TrimSpace(getEnv("MIGRATIONS_DIR", "")),
		Season:                  season,
		SimSeed:                 simSeed,
		SimWorkers:              simWorkers,
		SimGameweeks:            simGameweeks,
		PlayerCacheSize:         playerCacheSize,
		PlayerCacheTTL:          playerCacheTTL,
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              uptraceDSN,
		PyroscopeEnabled:        pyroscopeEnabled,
		PyroscopeServerAddress:  pyroscopeServerAddress,
		PyroscopeAuthToken:      strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:     pyroscopeUploadRate,
	}
	if cfg.Season == "" {
		return Config{}, fmt.Errorf("SEASON cannot be empty")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	return cfg, nil
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

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
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
