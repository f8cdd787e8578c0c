package database_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/load-planner/pkg/database"
)

func TestConfig_Finalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     database.Config
		env     map[string]string
		wantErr string
	}{
		{name: "defaults"},
		{name: "env identity", env: map[string]string{"TEST_DB_NAME": "fleet", "TEST_DB_USER": "dispatcher"}},
		{name: "bad port", cfg: database.Config{Port: 70000}, wantErr: "invalid port"},
		{name: "bad ssl mode", env: map[string]string{"TEST_DB_SSL_MODE": "sometimes"}, wantErr: "ssl_mode"},
		{name: "idle above open", cfg: database.Config{MaxOpenConns: 2, MaxIdleConns: 4}, wantErr: "max_idle_conns"},
		{name: "bad lifetime", cfg: database.Config{ConnMaxLifetime: "forever"}, wantErr: "conn_max_lifetime"},
		{name: "bad timeout", cfg: database.Config{ConnTimeout: "soon"}, wantErr: "conn_timeout"},
	}

	env := &database.Env{Name: "TEST_DB_NAME", User: "TEST_DB_USER", SSLMode: "TEST_DB_SSL_MODE"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := tt.cfg
			err := cfg.Finalize(env)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Finalize() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Finalize() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	t.Setenv("TEST_DB_PORT", "6543")

	cfg := database.Config{}
	if err := cfg.Finalize(&database.Env{Port: "TEST_DB_PORT"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "localhost" || cfg.Port != 6543 {
		t.Errorf("host/port = %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.Name != "load_planner" || cfg.User != "planner" || cfg.SSLMode != "disable" {
		t.Errorf("identity = %s/%s sslmode %s", cfg.Name, cfg.User, cfg.SSLMode)
	}
	if cfg.ConnMaxLifetimeDuration() != 15*time.Minute {
		t.Errorf("ConnMaxLifetimeDuration() = %v", cfg.ConnMaxLifetimeDuration())
	}
	if cfg.ConnTimeoutDuration() != 5*time.Second {
		t.Errorf("ConnTimeoutDuration() = %v", cfg.ConnTimeoutDuration())
	}
}

func TestConfig_Dsn(t *testing.T) {
	tests := []struct {
		name string
		cfg  database.Config
		want string
	}{
		{
			name: "no password",
			cfg:  database.Config{Host: "localhost", Port: 5432, Name: "load_planner", User: "planner", SSLMode: "disable", ConnTimeout: "5s"},
			want: "postgres://planner@localhost:5432/load_planner?application_name=load-planner&connect_timeout=5&sslmode=disable",
		},
		{
			name: "escaped password and ipv6 host",
			cfg:  database.Config{Host: "::1", Port: 5433, Name: "load_planner", User: "planner", Password: "p@ss word", SSLMode: "require", ConnTimeout: "1500ms"},
			want: "postgres://planner:p%40ss%20word@[::1]:5433/load_planner?application_name=load-planner&connect_timeout=2&sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Dsn(); got != tt.want {
				t.Errorf("Dsn() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := database.Config{Host: "localhost", Port: 5432, Name: "planner"}
	cfg.Merge(&database.Config{Host: "db.internal", MaxOpenConns: 50})

	if cfg.Host != "db.internal" || cfg.Port != 5432 || cfg.Name != "planner" || cfg.MaxOpenConns != 50 {
		t.Errorf("Merge() = %+v", cfg)
	}
}

func TestNew_DoesNotConnect(t *testing.T) {
	cfg := database.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatal(err)
	}

	sys, err := database.New(&cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer sys.Connection().Close()

	if got := sys.Connection().Stats().MaxOpenConnections; got != 25 {
		t.Errorf("MaxOpenConnections = %d, want 25", got)
	}
}
