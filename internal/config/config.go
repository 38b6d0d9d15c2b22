package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every setting the service reads at startup.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Chat      ChatConfig
	Contact   ContactConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	contact, err := loadContactConfig()
	if err != nil {
		return nil, err
	}

	rateLimit, err := loadRateLimitConfig()
	if err != nil {
		return nil, err
	}

	telemetry, err := loadTelemetryConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:    server,
		Log:       logCfg,
		Chat:      chat,
		Contact:   contact,
		RateLimit: rateLimit,
		Telemetry: telemetry,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	origins := splitList(getEnvOrDefault("ALLOWED_ORIGINS", "*"))

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}
	if _, err := strconv.Atoi(port); err != nil {
		return ServerConfig{}, fmt.Errorf("invalid PORT value %q: %w", port, err)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigins: origins}, nil
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

func loadLogConfig() (LogConfig, error) {
	level := strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return LogConfig{}, fmt.Errorf("invalid LOG_LEVEL value: %q", level)
	}

	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json"))
	if format != "json" && format != "console" {
		return LogConfig{}, fmt.Errorf("invalid LOG_FORMAT value: %q", format)
	}

	return LogConfig{
		Level:  level,
		Format: format,
		File:   strings.TrimSpace(os.Getenv("LOG_FILE")),
	}, nil
}

// ChatConfig covers the FAQ chat widget.
type ChatConfig struct {
	RulesPath     string
	ReplyDelayMin time.Duration
	ReplyDelayMax time.Duration
}

func loadChatConfig() (ChatConfig, error) {
	minMs, err := parseIntEnv("CHAT_REPLY_DELAY_MIN_MS", 1000)
	if err != nil {
		return ChatConfig{}, err
	}
	maxMs, err := parseIntEnv("CHAT_REPLY_DELAY_MAX_MS", 2000)
	if err != nil {
		return ChatConfig{}, err
	}
	if minMs < 0 {
		return ChatConfig{}, fmt.Errorf("invalid CHAT_REPLY_DELAY_MIN_MS value %d: must not be negative", minMs)
	}
	if maxMs < minMs {
		return ChatConfig{}, fmt.Errorf("invalid CHAT_REPLY_DELAY_MAX_MS value %d: below minimum %d", maxMs, minMs)
	}

	return ChatConfig{
		RulesPath:     strings.TrimSpace(os.Getenv("FAQ_RULES_PATH")),
		ReplyDelayMin: time.Duration(minMs) * time.Millisecond,
		ReplyDelayMax: time.Duration(maxMs) * time.Millisecond,
	}, nil
}

// Contact store drivers.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// ContactConfig selects where accepted submissions are kept.
type ContactConfig struct {
	Store      string
	SQLitePath string
}

func loadContactConfig() (ContactConfig, error) {
	store := strings.ToLower(getEnvOrDefault("CONTACT_STORE", StoreMemory))
	if store != StoreMemory && store != StoreSQLite {
		return ContactConfig{}, fmt.Errorf("invalid CONTACT_STORE value: %q", store)
	}

	return ContactConfig{
		Store:      store,
		SQLitePath: getEnvOrDefault("CONTACT_SQLITE_PATH", "softsell.db"),
	}, nil
}

// RateLimitConfig tunes the per-client token bucket on write endpoints.
type RateLimitConfig struct {
	Window   time.Duration
	Capacity int
}

// Enabled reports whether write endpoints are throttled at all.
func (c RateLimitConfig) Enabled() bool {
	return c.Capacity > 0 && c.Window > 0
}

func loadRateLimitConfig() (RateLimitConfig, error) {
	windowSeconds, err := parseIntEnv("RATE_LIMIT_WINDOW_SECONDS", 10)
	if err != nil {
		return RateLimitConfig{}, err
	}
	capacity, err := parseIntEnv("RATE_LIMIT_CAPACITY", 5)
	if err != nil {
		return RateLimitConfig{}, err
	}
	if windowSeconds < 0 || capacity < 0 {
		return RateLimitConfig{}, fmt.Errorf("rate limit settings must not be negative")
	}

	return RateLimitConfig{
		Window:   time.Duration(windowSeconds) * time.Second,
		Capacity: capacity,
	}, nil
}

// TelemetryConfig toggles OpenTelemetry export.
type TelemetryConfig struct {
	Enabled bool
	Dir     string
}

func loadTelemetryConfig() (TelemetryConfig, error) {
	enabled, err := parseBoolEnv("TELEMETRY_ENABLED", false)
	if err != nil {
		return TelemetryConfig{}, err
	}

	return TelemetryConfig{
		Enabled: enabled,
		Dir:     getEnvOrDefault("TELEMETRY_DIR", "logs"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	val, err := parseOptionalIntEnv(key)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return defaultValue, nil
	}
	return *val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
