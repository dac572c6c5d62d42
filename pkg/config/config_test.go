package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "margin-finder"
	cfg.App.Environment = "development"
	cfg.Server.Port = 8085
	cfg.Database.Host = "localhost"
	cfg.Database.DBName = "pricing_db"
	cfg.JWT.Secret = "test-secret"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing app name",
			mutate:  func(c *Config) { c.App.Name = "" },
			wantErr: true,
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "missing database host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: true,
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.JWT.Secret = "" },
			wantErr: true,
		},
		{
			name: "default jwt secret in production",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.JWT.Secret = "your-secret-key-change-in-production"
			},
			wantErr: true,
		},
		{
			name:    "negative update window",
			mutate:  func(c *Config) { c.Scheduler.UpdateWindow = -time.Hour },
			wantErr: true,
		},
		{
			name: "kafka enabled without report topic",
			mutate: func(c *Config) {
				c.Kafka.Enabled = true
				c.Scheduler.ReportTopic = ""
			},
			wantErr: true,
		},
		{
			name: "kafka enabled with report topic",
			mutate: func(c *Config) {
				c.Kafka.Enabled = true
				c.Scheduler.ReportTopic = "pricing.reconciliation.completed"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := &DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		User:     "finder",
		Password: "secret",
		DBName:   "pricing_db",
		SSLMode:  "require",
	}

	expected := "host=db.example.com port=5433 user=finder password=secret dbname=pricing_db sslmode=require"
	if d.DSN() != expected {
		t.Errorf("Expected DSN '%s', got '%s'", expected, d.DSN())
	}
}

func TestRedisConfig_Addr(t *testing.T) {
	r := &RedisConfig{Host: "redis.example.com", Port: 6380}

	expected := "redis.example.com:6380"
	if r.Addr() != expected {
		t.Errorf("Expected addr '%s', got '%s'", expected, r.Addr())
	}
}

func TestConfig_Environment(t *testing.T) {
	cfg := validConfig()
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("expected development environment")
	}

	cfg.App.Environment = "production"
	if cfg.IsDevelopment() || !cfg.IsProduction() {
		t.Error("expected production environment")
	}
}
