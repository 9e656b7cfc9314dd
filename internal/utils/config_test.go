package utils_test

import (
	"testing"
	"time"

	"github.com/Dino-996/microservizi-tracker/internal/utils"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "WEB_DIR", "MONGO_URI", "MONGO_DATABASE", "MONGO_CONNECT_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.ServerPort != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.ServerPort)
	}
	if cfg.WebDir != "./web" {
		t.Fatalf("expected default web dir ./web, got %q", cfg.WebDir)
	}
	if cfg.Mongo.URI != "" {
		t.Fatalf("expected empty mongo uri by default, got %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "exercise_tracker" {
		t.Fatalf("expected default database exercise_tracker, got %q", cfg.Mongo.Database)
	}
	if cfg.Mongo.ConnectTimeout != 5*time.Second {
		t.Fatalf("expected default connect timeout 5s, got %v", cfg.Mongo.ConnectTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WEB_DIR", "/srv/tracker/web")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "2s")

	cfg, err := utils.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.ServerPort)
	}
	if cfg.WebDir != "/srv/tracker/web" {
		t.Fatalf("expected overridden web dir, got %q", cfg.WebDir)
	}
	if cfg.Mongo.ConnectTimeout != 2*time.Second {
		t.Fatalf("expected connect timeout 2s, got %v", cfg.Mongo.ConnectTimeout)
	}
}
