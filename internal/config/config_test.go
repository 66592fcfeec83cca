package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "./data/sumaDeTeologia.json", cfg.Document.Source)
	assert.Equal(t, 20*time.Second, cfg.Document.FetchTimeout)
	assert.Equal(t, CacheModeMemory, cfg.Cache.Mode)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.False(t, cfg.Document.Watch)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DOCUMENT_SOURCE", "https://example.org/sumaDeTeologia.json")
	t.Setenv("CACHE_MODE", CacheModeRedis)
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("OUTLINE_TABLE_FILE", "groups.yaml")

	cfg, err := fromViper(newViper())
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "https://example.org/sumaDeTeologia.json", cfg.Document.Source)
	assert.Equal(t, CacheModeRedis, cfg.Cache.Mode)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "groups.yaml", cfg.Outline.TableFile)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"no cache", func(c *Config) { c.Cache.Mode = CacheModeNone }, false},
		{"empty source", func(c *Config) { c.Document.Source = "" }, true},
		{"unknown mode", func(c *Config) { c.Cache.Mode = "disk" }, true},
		{"redis without address", func(c *Config) { c.Cache.Mode = CacheModeRedis }, true},
		{"redis with address", func(c *Config) {
			c.Cache.Mode = CacheModeRedis
			c.Redis.Address = "localhost:6379"
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Document: DocumentConfig{Source: "./data/sumaDeTeologia.json"},
				Cache:    CacheConfig{Mode: CacheModeMemory},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
