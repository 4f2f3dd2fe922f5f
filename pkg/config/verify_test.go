package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Database.DSN = "file:test.db"
	cfg.LLM.Model = "test-model"
	cfg.LLM.APIKey = "test-key"
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing server listen",
			mutate:  func(cfg *Config) { cfg.Server.Listen = "" },
			wantErr: true,
			errMsg:  "server.listen is required",
		},
		{
			name:    "missing server timeout",
			mutate:  func(cfg *Config) { cfg.Server.Timeout = 0 },
			wantErr: true,
			errMsg:  "server.timeout is required",
		},
		{
			name:    "starters enabled without feeds",
			mutate:  func(cfg *Config) { cfg.Starters.Enabled = true },
			wantErr: true,
			errMsg:  "starters.feeds is required",
		},
		{
			name: "starters enabled without refresh interval",
			mutate: func(cfg *Config) {
				cfg.Starters.Enabled = true
				cfg.Starters.Feeds = []string{"https://example.com/feed.xml"}
			},
			wantErr: true,
			errMsg:  "starters.refresh_interval is required",
		},
		{
			name: "starters fully configured",
			mutate: func(cfg *Config) {
				cfg.Starters.Enabled = true
				cfg.Starters.Feeds = []string{"https://example.com/feed.xml"}
				cfg.Starters.RefreshInterval = time.Hour
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// reflected schema references the Config definition
	require.NotNil(t, schema.Definitions)
	_, ok := schema.Definitions["Config"]
	assert.True(t, ok, "schema must define Config")
	_, ok = schema.Definitions["LLMConfig"]
	assert.True(t, ok, "schema must define LLMConfig")
	_, ok = schema.Definitions["ProactiveConfig"]
	assert.True(t, ok, "schema must define ProactiveConfig")
}
