package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates all service configuration.
type Config struct {
	Server ServerConfig
	Chat   ChatConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Chat: chat}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// ChatConfig carries the conversation policy knobs that operations may
// override: the thinking delay before a companion reply, and the crisis
// phrase list and hotline block, both comma-separated in the environment.
type ChatConfig struct {
	ReplyDelay    time.Duration
	CrisisPhrases []string
	Hotlines      []string
}

func loadChatConfig() (ChatConfig, error) {
	delayMillis, err := parseOptionalIntEnv("CHAT_REPLY_DELAY_MS")
	if err != nil {
		return ChatConfig{}, err
	}
	delay := time.Second
	if delayMillis != nil {
		if *delayMillis < 0 {
			return ChatConfig{}, fmt.Errorf("CHAT_REPLY_DELAY_MS must not be negative")
		}
		delay = time.Duration(*delayMillis) * time.Millisecond
	}

	return ChatConfig{
		ReplyDelay:    delay,
		CrisisPhrases: parseListEnv("CHAT_CRISIS_PHRASES"),
		Hotlines:      parseListEnv("CHAT_CRISIS_HOTLINES"),
	}, nil
}

// parseListEnv splits a comma-separated variable, dropping empty items.
// A missing variable yields nil so callers can fall back to defaults.
func parseListEnv(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}

	var items []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
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
