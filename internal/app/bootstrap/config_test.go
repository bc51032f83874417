package bootstrap

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func validConfig() AppConfig {
	return AppConfig{
		MongoURI:            "mongodb://localhost:27017",
		MongoDatabase:       "videojuegos",
		MongoMaxPoolSize:    100,
		MongoMinPoolSize:    10,
		MongoConnectTimeout: 10 * time.Second,
		PopulateMode:        "per_record",
		PublicDir:           "public",
		MetricsEnabled:      true,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"valid", func(*AppConfig) {}, ""},
		{"batched mode", func(c *AppConfig) { c.PopulateMode = "batched" }, ""},
		{"empty mode defaults", func(c *AppConfig) { c.PopulateMode = "" }, ""},
		{"unknown mode", func(c *AppConfig) { c.PopulateMode = "parallel" }, "unknown populate mode"},
		{"empty database", func(c *AppConfig) { c.MongoDatabase = "" }, "mongo_database"},
		{"pool sizes inverted", func(c *AppConfig) { c.MongoMinPoolSize = 200 }, "exceeds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := ValidateConfig(nil, cfg, zap.NewNop())
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error: got %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnsureSchema_DisabledIsNoop(t *testing.T) {
	cfg := validConfig()
	cfg.EnsureIndexes = false

	// No database in deps: must not be touched when disabled.
	if err := EnsureSchema(t.Context(), nil, cfg, DBDeps{}, zap.NewNop()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
}
