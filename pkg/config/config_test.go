package config

import (
	"os"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Server:    ServerConfig{Port: "8000", RateLimit: 10, RateBurst: 20},
		Cache:     CacheConfig{Type: CacheMemory},
		Scripture: ScriptureConfig{Endpoint: "https://query.getbible.net/v2", Timeout: 10 * time.Second},
		Tags:      TagConfig{ClassName: "getBible", Chrome: "base"},
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %v, want 8000", cfg.Server.Port)
	}
	if cfg.Cache.Type != CacheMemory {
		t.Errorf("Cache.Type = %v, want memory", cfg.Cache.Type)
	}
	if cfg.Scripture.Endpoint != "https://query.getbible.net/v2" {
		t.Errorf("Endpoint = %v", cfg.Scripture.Endpoint)
	}
	if cfg.Scripture.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Scripture.Timeout)
	}
	if cfg.Scripture.DefaultTranslation != "kjv" {
		t.Errorf("DefaultTranslation = %v, want kjv", cfg.Scripture.DefaultTranslation)
	}
	if cfg.Tags.ClassName != "getBible" || cfg.Tags.Chrome != "base" {
		t.Errorf("Tags = %+v", cfg.Tags)
	}
	if cfg.Cache.Memory.CleanupInterval != 10*time.Minute {
		t.Errorf("CleanupInterval = %v", cfg.Cache.Memory.CleanupInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "uses PORT env var when set",
			env:  map[string]string{"PORT": "3000"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != "3000" {
					t.Errorf("Port = %v, want 3000", cfg.Server.Port)
				}
			},
		},
		{
			name: "timeout accepts seconds and go durations",
			env:  map[string]string{"SCRIPTURE_TIMEOUT": "1m30s"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scripture.Timeout != 90*time.Second {
					t.Errorf("Timeout = %v, want 1m30s", cfg.Scripture.Timeout)
				}
			},
		},
		{
			name: "cache type and chrome are lowercased",
			env:  map[string]string{"CACHE_TYPE": "SQLite", "CHROME_PROVIDER": "Bootstrap"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Cache.Type != CacheSQLite || cfg.Tags.Chrome != "bootstrap" {
					t.Errorf("got %s / %s", cfg.Cache.Type, cfg.Tags.Chrome)
				}
			},
		},
		{
			name: "rate limit parses floats",
			env:  map[string]string{"RATE_LIMIT": "2.5", "RATE_BURST": "5"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Server.RateLimit != 2.5 || cfg.Server.RateBurst != 5 {
					t.Errorf("got %v / %v", cfg.Server.RateLimit, cfg.Server.RateBurst)
				}
			},
		},
		{
			name: "invalid numbers fall back to defaults",
			env:  map[string]string{"REDIS_DB": "not-a-number", "RATE_LIMIT": "fast"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Cache.Redis.DB != 0 || cfg.Server.RateLimit != 10 {
					t.Errorf("got %v / %v", cfg.Cache.Redis.DB, cfg.Server.RateLimit)
				}
			},
		},
		{
			name: "logging settings",
			env:  map[string]string{"LOG_LEVEL": "debug", "LOG_FORMAT": "json", "LOG_FILE": "/tmp/x.log"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Log != (LogConfig{Level: "debug", Format: "json", File: "/tmp/x.log"}) {
					t.Errorf("Log = %+v", cfg.Log)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}
			tt.verify(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
			errMsg:  "port cannot be empty",
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *Config) { c.Server.RateLimit = -1 },
			wantErr: true,
			errMsg:  "rate limit cannot be negative",
		},
		{
			name:    "invalid cache type",
			mutate:  func(c *Config) { c.Cache.Type = "invalid" },
			wantErr: true,
			errMsg:  "cache type must be 'memory', 'redis' or 'sqlite'",
		},
		{
			name:    "redis type with empty address",
			mutate:  func(c *Config) { c.Cache.Type = CacheRedis },
			wantErr: true,
			errMsg:  "redis address cannot be empty when using redis cache",
		},
		{
			name:    "sqlite type with empty path",
			mutate:  func(c *Config) { c.Cache.Type = CacheSQLite },
			wantErr: true,
			errMsg:  "sqlite path cannot be empty when using sqlite cache",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Scripture.Timeout = 0 },
			wantErr: true,
			errMsg:  "scripture timeout must be positive",
		},
		{
			name:    "class with a dot",
			mutate:  func(c *Config) { c.Tags.ClassName = ".getBible" },
			wantErr: true,
		},
		{
			name:    "unknown chrome",
			mutate:  func(c *Config) { c.Tags.Chrome = "bulma" },
			wantErr: true,
		},
		{name: "auto chrome", mutate: func(c *Config) { c.Tags.Chrome = "auto" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}
