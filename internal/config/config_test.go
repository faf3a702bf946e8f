package config

import (
	"os"
	"testing"
)

func TestNew(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("STORAGE_PATH", "")
	os.Unsetenv("STORAGE_PATH")
	t.Setenv("DISCORD_GUILD_ID", "")
	os.Unsetenv("DISCORD_GUILD_ID")
	t.Setenv("REGISTER_COMMANDS", "")
	os.Unsetenv("REGISTER_COMMANDS")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if cfg.DiscordToken != "test-token" {
		t.Fatalf("token = %q", cfg.DiscordToken)
	}
	if cfg.StoragePath != "datastore.json" {
		t.Fatalf("storage path = %q, want default", cfg.StoragePath)
	}
	if !cfg.RegisterCommands {
		t.Fatal("RegisterCommands should default to true")
	}
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("STORAGE_PATH", "/tmp/bot.json")
	t.Setenv("DISCORD_GUILD_ID", "guild-1")
	t.Setenv("REGISTER_COMMANDS", "false")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if cfg.StoragePath != "/tmp/bot.json" || cfg.GuildID != "guild-1" || cfg.RegisterCommands {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestNewRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	os.Unsetenv("DISCORD_TOKEN")

	if _, err := New(); err == nil {
		t.Fatal("expected error when DISCORD_TOKEN is missing")
	}
}
