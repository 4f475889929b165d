package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via the config file or the environment.
type AppConfig struct {
	AppPort        string
	GinMode        string
	GinPath        string
	AllowedOrigins []string

	JWTSecret     string
	TokenTTLHours int
	// Single admin identity; the password is stored as a bcrypt hash only.
	AdminUsername     string
	AdminPasswordHash string

	RateLimitPerMinute int

	// Content and persistence paths
	ContentDir   string
	JobsFile     string
	SettingsFile string

	// Optional MySQL backend for the careers store
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// Redis for token revocation
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	// SMTP fallback used until settings are saved through the admin surface
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      bool
	AdminEmail   string

	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
// Precedence: config/config.json -> defaults -> environment variable overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	if err := loadJSONConfig(filepath.Join("config", "config.json"), &cfg); err != nil {
		log.Fatalf("invalid config file: %v", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set in environment variables")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// HasDatabase reports whether a MySQL backend is configured for the careers store.
func (c AppConfig) HasDatabase() bool {
	return c.DatabaseURI != "" || c.DBHost != ""
}

// fileConfig mirrors AppConfig with JSON tags for the optional config file.
type fileConfig struct {
	AppPort            string   `json:"app_port"`
	GinMode            string   `json:"gin_mode"`
	GinPath            string   `json:"gin_path"`
	AllowedOrigins     []string `json:"allowed_origins"`
	JWTSecret          string   `json:"jwt_secret"`
	TokenTTLHours      int      `json:"token_ttl_hours"`
	AdminUsername      string   `json:"admin_username"`
	AdminPasswordHash  string   `json:"admin_password_hash"`
	RateLimitPerMinute int      `json:"rate_limit_per_minute"`
	ContentDir         string   `json:"content_dir"`
	JobsFile           string   `json:"jobs_file"`
	SettingsFile       string   `json:"settings_file"`
	DatabaseURI        string   `json:"database_uri"`
	DBHost             string   `json:"db_host"`
	DBPort             string   `json:"db_port"`
	DBUser             string   `json:"db_user"`
	DBPassword         string   `json:"db_password"`
	DBName             string   `json:"db_name"`
	RedisHost          string   `json:"redis_host"`
	RedisPort          int      `json:"redis_port"`
	RedisDB            int      `json:"redis_db"`
	RedisPassword      string   `json:"redis_password"`
	SMTPHost           string   `json:"smtp_host"`
	SMTPPort           int      `json:"smtp_port"`
	SMTPUsername       string   `json:"smtp_username"`
	SMTPPassword       string   `json:"smtp_password"`
	SMTPFrom           string   `json:"smtp_from"`
	SMTPFromName       string   `json:"smtp_from_name"`
	SMTPTLS            bool     `json:"smtp_tls"`
	AdminEmail         string   `json:"admin_email"`
	LogLevel           string   `json:"log_level"`
	LogPath            string   `json:"log_path"`
	LogMaxSizeMB       int      `json:"log_max_size_mb"`
	LogMaxBackups      int      `json:"log_max_backups"`
	LogMaxAgeDays      int      `json:"log_max_age_days"`
	LogCompress        bool     `json:"log_compress"`
}

// loadJSONConfig reads the JSON file into out if present. Returns error only for invalid JSON.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil // silently ignore missing file
	}
	defer f.Close()

	var fc fileConfig
	if err := json.NewDecoder(f).Decode(&fc); err != nil {
		return err
	}

	out.AppPort = fc.AppPort
	out.GinMode = fc.GinMode
	out.GinPath = fc.GinPath
	out.AllowedOrigins = fc.AllowedOrigins
	out.JWTSecret = fc.JWTSecret
	out.TokenTTLHours = fc.TokenTTLHours
	out.AdminUsername = fc.AdminUsername
	out.AdminPasswordHash = fc.AdminPasswordHash
	out.RateLimitPerMinute = fc.RateLimitPerMinute
	out.ContentDir = fc.ContentDir
	out.JobsFile = fc.JobsFile
	out.SettingsFile = fc.SettingsFile
	out.DatabaseURI = fc.DatabaseURI
	out.DBHost = fc.DBHost
	out.DBPort = fc.DBPort
	out.DBUser = fc.DBUser
	out.DBPassword = fc.DBPassword
	out.DBName = fc.DBName
	out.RedisHost = fc.RedisHost
	out.RedisPort = fc.RedisPort
	out.RedisDB = fc.RedisDB
	out.RedisPassword = fc.RedisPassword
	out.SMTPHost = fc.SMTPHost
	out.SMTPPort = fc.SMTPPort
	out.SMTPUsername = fc.SMTPUsername
	out.SMTPPassword = fc.SMTPPassword
	out.SMTPFrom = fc.SMTPFrom
	out.SMTPFromName = fc.SMTPFromName
	out.SMTPTLS = fc.SMTPTLS
	out.AdminEmail = fc.AdminEmail
	out.LogLevel = fc.LogLevel
	out.LogPath = fc.LogPath
	out.LogMaxSizeMB = fc.LogMaxSizeMB
	out.LogMaxBackups = fc.LogMaxBackups
	out.LogMaxAgeDays = fc.LogMaxAgeDays
	out.LogCompress = fc.LogCompress
	return nil
}

func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.GinPath == "" {
		c.GinPath = "logs/access.log"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.TokenTTLHours == 0 {
		c.TokenTTLHours = 24
	}
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 20
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/blog"
	}
	if c.JobsFile == "" {
		c.JobsFile = "data/jobs.json"
	}
	if c.SettingsFile == "" {
		c.SettingsFile = "data/smtp-settings.json"
	}
	if c.DBPort == "" {
		c.DBPort = "3306"
	}
	if c.RedisPort == 0 {
		c.RedisPort = 6379
	}
	if c.SMTPPort == 0 {
		c.SMTPPort = 587
	}
	if c.SMTPFromName == "" {
		c.SMTPFromName = "CyberShield Pro"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/app.log"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

func applyEnvOverrides(c *AppConfig) {
	c.AppPort = getEnv("APP_PORT", c.AppPort)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.GinPath = getEnv("GIN_PATH", c.GinPath)
	c.AllowedOrigins = readListEnv("ALLOWED_ORIGINS", c.AllowedOrigins)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.TokenTTLHours = readIntEnv("TOKEN_TTL_HOURS", c.TokenTTLHours)
	c.AdminUsername = getEnv("ADMIN_USERNAME", c.AdminUsername)
	c.AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", c.AdminPasswordHash)
	c.RateLimitPerMinute = readIntEnv("RATE_LIMIT_PER_MINUTE", c.RateLimitPerMinute)
	c.ContentDir = getEnv("CONTENT_DIR", c.ContentDir)
	c.JobsFile = getEnv("JOBS_FILE", c.JobsFile)
	c.SettingsFile = getEnv("SETTINGS_FILE", c.SettingsFile)
	c.DatabaseURI = getEnv("DATABASE_URI", c.DatabaseURI)
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnv("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.RedisHost = getEnv("REDIS_HOST", c.RedisHost)
	c.RedisPort = readIntEnv("REDIS_PORT", c.RedisPort)
	c.RedisDB = readIntEnv("REDIS_DB", c.RedisDB)
	c.RedisPassword = getEnv("REDIS_PASSWORD", c.RedisPassword)
	c.SMTPHost = getEnv("SMTP_HOST", c.SMTPHost)
	c.SMTPPort = readIntEnv("SMTP_PORT", c.SMTPPort)
	c.SMTPUsername = getEnv("SMTP_USERNAME", c.SMTPUsername)
	c.SMTPPassword = getEnv("SMTP_PASSWORD", c.SMTPPassword)
	c.SMTPFrom = getEnv("SMTP_FROM", c.SMTPFrom)
	c.SMTPFromName = getEnv("SMTP_FROM_NAME", c.SMTPFromName)
	c.SMTPTLS = readBoolEnv("SMTP_TLS", c.SMTPTLS)
	c.AdminEmail = getEnv("ADMIN_EMAIL", c.AdminEmail)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogPath = getEnv("LOG_PATH", c.LogPath)
	c.LogMaxSizeMB = readIntEnv("LOG_MAX_SIZE_MB", c.LogMaxSizeMB)
	c.LogMaxBackups = readIntEnv("LOG_MAX_BACKUPS", c.LogMaxBackups)
	c.LogMaxAgeDays = readIntEnv("LOG_MAX_AGE_DAYS", c.LogMaxAgeDays)
	c.LogCompress = readBoolEnv("LOG_COMPRESS", c.LogCompress)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func readIntEnv(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func readBoolEnv(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func readListEnv(key string, defaults []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaults
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaults
	}
	return out
}
