package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds the settings of the local ontology store.
// StatementTimeout bounds every statement on the server; an ontology import
// runs one INSERT per term, so it applies per term rather than to the import.
type DatabaseConfig struct {
	Host             string
	Port             string
	User             string
	Password         string
	Name             string
	SSLMode          string
	ApplicationName  string
	StatementTimeout time.Duration
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
	ConnMaxIdleTime  time.Duration
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// BridgesConfig holds the endpoints and credentials of the remote services.
type BridgesConfig struct {
	BlastURL     string
	BlastEmail   string
	BlastPollMax time.Duration
	EuropePMCURL string
	ImexURL      string
	ImexUser     string
	ImexPassword string
	OLSURL       string
	UniProtURL   string
	PICRURL      string
	HTTPTimeout  time.Duration
	UserAgent    string
}

// CacheConfig selects and sizes the lookup cache.
// Backend is one of "memory", "bolt" or "none".
type CacheConfig struct {
	Backend  string
	Path     string
	TTL      time.Duration
	MaxBytes int64
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	LogLevel string
	TimeZone string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Bridges  BridgesConfig
	Cache    CacheConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		TimeZone: getEnv("APP_TIMEZONE", "UTC"),
		Database: DatabaseConfig{
			Host:             getEnv("DB_HOST", ""),
			Port:             getEnv("DB_PORT", "5432"),
			User:             getEnv("DB_USER", ""),
			Password:         getEnv("DB_PASSWORD", ""),
			Name:             getEnv("DB_NAME", ""),
			SSLMode:          getEnv("DB_SSLMODE", "disable"),
			ApplicationName:  getEnv("DB_APPLICATION_NAME", "bridges"),
			StatementTimeout: getEnvDuration("DB_STATEMENT_TIMEOUT", 30*time.Second),
			MaxOpenConns:     getEnvInt("DB_MAX_OPEN_CONNS", 8),
			MaxIdleConns:     getEnvInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime:  getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime:  getEnvDuration("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Bridges: BridgesConfig{
			BlastURL:     getEnv("BLAST_URL", "https://www.ebi.ac.uk/Tools/services/rest/ncbiblast"),
			BlastEmail:   getEnv("BLAST_EMAIL", ""),
			BlastPollMax: getEnvDuration("BLAST_POLL_MAX", 10*time.Minute),
			EuropePMCURL: getEnv("EUROPEPMC_URL", "https://www.ebi.ac.uk/europepmc/webservices/rest"),
			ImexURL:      getEnv("IMEX_URL", "https://imexcentral.org/icentral/ws-v20"),
			ImexUser:     getEnv("IMEX_USER", ""),
			ImexPassword: getEnv("IMEX_PASSWORD", ""),
			OLSURL:       getEnv("OLS_URL", "https://www.ebi.ac.uk/ols4/api"),
			UniProtURL:   getEnv("UNIPROT_URL", "https://rest.uniprot.org"),
			PICRURL:      getEnv("PICR_URL", "https://www.ebi.ac.uk/Tools/picr/service"),
			HTTPTimeout:  getEnvDuration("BRIDGE_HTTP_TIMEOUT", 30*time.Second),
			UserAgent:    getEnv("BRIDGE_USER_AGENT", "bridges/1.0"),
		},
		Cache: CacheConfig{
			Backend:  getEnv("CACHE_BACKEND", "memory"),
			Path:     getEnv("CACHE_PATH", "bridges-cache.db"),
			TTL:      getEnvDuration("CACHE_TTL", 24*time.Hour),
			MaxBytes: int64(getEnvInt("CACHE_MAX_BYTES", 64<<20)),
		},
	}
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
