package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "FAQ_RULES_PATH",
		"CHAT_REPLY_DELAY_MIN_MS", "CHAT_REPLY_DELAY_MAX_MS", "CONTACT_STORE", "CONTACT_SQLITE_PATH",
		"RATE_LIMIT_WINDOW_SECONDS", "RATE_LIMIT_CAPACITY", "TELEMETRY_ENABLED", "TELEMETRY_DIR",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Chat.ReplyDelayMin != time.Second || cfg.Chat.ReplyDelayMax != 2*time.Second {
		t.Fatalf("unexpected delay window: %s..%s", cfg.Chat.ReplyDelayMin, cfg.Chat.ReplyDelayMax)
	}
	if cfg.Contact.Store != StoreMemory {
		t.Fatalf("unexpected store: %s", cfg.Contact.Store)
	}
	if !cfg.RateLimit.Enabled() {
		t.Fatal("expected rate limit enabled by default")
	}
	if cfg.Telemetry.Enabled {
		t.Fatal("expected telemetry disabled by default")
	}
}

func TestLoadServerAddrForms(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	server, err := loadServerConfig()
	if err != nil {
		t.Fatalf("loadServerConfig err: %v", err)
	}
	if server.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr: %s", server.Addr)
	}

	t.Setenv("PORT", "80 80")
	if _, err := loadServerConfig(); err == nil {
		t.Fatal("expected error for port with spaces")
	}
}

func TestLoadChatConfigRejectsInvertedWindow(t *testing.T) {
	t.Setenv("CHAT_REPLY_DELAY_MIN_MS", "500")
	t.Setenv("CHAT_REPLY_DELAY_MAX_MS", "100")
	if _, err := loadChatConfig(); err == nil {
		t.Fatal("expected error when max delay is below min")
	}
}

func TestLoadContactConfigRejectsUnknownStore(t *testing.T) {
	t.Setenv("CONTACT_STORE", "postgres")
	if _, err := loadContactConfig(); err == nil {
		t.Fatal("expected error for unknown store driver")
	}
}

func TestLoadAllowedOriginsList(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "https://softsell.example, http://localhost:3000 ,")
	server, err := loadServerConfig()
	if err != nil {
		t.Fatalf("loadServerConfig err: %v", err)
	}
	if len(server.AllowedOrigins) != 2 || server.AllowedOrigins[1] != "http://localhost:3000" {
		t.Fatalf("unexpected origins: %v", server.AllowedOrigins)
	}
}
