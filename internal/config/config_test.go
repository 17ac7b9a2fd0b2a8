package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr: %q", cfg.Server.Addr)
	}
	if cfg.Chat.ReplyDelay != time.Second {
		t.Fatalf("reply delay: %v", cfg.Chat.ReplyDelay)
	}
	if cfg.Chat.CrisisPhrases != nil {
		t.Fatalf("expected nil phrase override, got %v", cfg.Chat.CrisisPhrases)
	}
}

func TestLoadPortPassthrough(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("addr: %q", cfg.Server.Addr)
	}
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv("PORT", "80 80")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed PORT")
	}
}

func TestLoadChatOverrides(t *testing.T) {
	t.Setenv("CHAT_REPLY_DELAY_MS", "250")
	t.Setenv("CHAT_CRISIS_PHRASES", "suicide, self harm ,")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Chat.ReplyDelay != 250*time.Millisecond {
		t.Fatalf("reply delay: %v", cfg.Chat.ReplyDelay)
	}
	if len(cfg.Chat.CrisisPhrases) != 2 || cfg.Chat.CrisisPhrases[1] != "self harm" {
		t.Fatalf("phrases: %v", cfg.Chat.CrisisPhrases)
	}
}

func TestLoadRejectsNegativeDelay(t *testing.T) {
	t.Setenv("CHAT_REPLY_DELAY_MS", "-5")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative delay")
	}
}
