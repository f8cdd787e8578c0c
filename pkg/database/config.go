package database

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// ApplicationName is reported to PostgreSQL for every pooled connection.
const ApplicationName = "load-planner"

var sslModes = map[string]bool{
	"disable":     true,
	"allow":       true,
	"prefer":      true,
	"require":     true,
	"verify-ca":   true,
	"verify-full": true,
}

// Config contains the plan store connection settings.
type Config struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Name            string `toml:"name"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	SSLMode         string `toml:"ssl_mode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
}

// Env maps environment variable names for database configuration.
type Env struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    string
	MaxIdleConns    string
	ConnMaxLifetime string
	ConnTimeout     string
}

// ConnMaxLifetimeDuration returns the parsed connection lifetime.
func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

// ConnTimeoutDuration returns the parsed connect and ping timeout.
func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// Dsn returns the connection URL handed to the pgx driver. The connect
// timeout is rounded up to whole seconds, the driver's resolution.
func (c *Config) Dsn() string {
	user := url.User(c.User)
	if c.Password != "" {
		user = url.UserPassword(c.User, c.Password)
	}

	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	q.Set("application_name", ApplicationName)
	if d := c.ConnTimeoutDuration(); d > 0 {
		q.Set("connect_timeout", strconv.Itoa(int((d+time.Second-1)/time.Second)))
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Finalize applies defaults, loads environment overrides, and validates the database configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	mergeString(&c.Host, overlay.Host)
	mergeString(&c.Name, overlay.Name)
	mergeString(&c.User, overlay.User)
	mergeString(&c.Password, overlay.Password)
	mergeString(&c.SSLMode, overlay.SSLMode)
	mergeString(&c.ConnMaxLifetime, overlay.ConnMaxLifetime)
	mergeString(&c.ConnTimeout, overlay.ConnTimeout)
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.MaxOpenConns != 0 {
		c.MaxOpenConns = overlay.MaxOpenConns
	}
	if overlay.MaxIdleConns != 0 {
		c.MaxIdleConns = overlay.MaxIdleConns
	}
}

func (c *Config) loadDefaults() {
	c.Host = pick(c.Host, "localhost")
	c.Name = pick(c.Name, "load_planner")
	c.User = pick(c.User, "planner")
	c.SSLMode = pick(c.SSLMode, "disable")
	c.ConnMaxLifetime = pick(c.ConnMaxLifetime, "15m")
	c.ConnTimeout = pick(c.ConnTimeout, "5s")
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 25
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
}

func (c *Config) loadEnv(env *Env) {
	envString(env.Host, &c.Host)
	envString(env.Name, &c.Name)
	envString(env.User, &c.User)
	envString(env.Password, &c.Password)
	envString(env.SSLMode, &c.SSLMode)
	envString(env.ConnMaxLifetime, &c.ConnMaxLifetime)
	envString(env.ConnTimeout, &c.ConnTimeout)
	envInt(env.Port, &c.Port)
	envInt(env.MaxOpenConns, &c.MaxOpenConns)
	envInt(env.MaxIdleConns, &c.MaxIdleConns)
}

func (c *Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.User == "" {
		return fmt.Errorf("user required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if !sslModes[c.SSLMode] {
		return fmt.Errorf("invalid ssl_mode: %s", c.SSLMode)
	}
	if c.MaxOpenConns < 1 {
		return fmt.Errorf("max_open_conns must be positive")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max_idle_conns (%d) exceeds max_open_conns (%d)", c.MaxIdleConns, c.MaxOpenConns)
	}
	if _, err := time.ParseDuration(c.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid conn_max_lifetime: %w", err)
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	return nil
}

func pick(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func envString(name string, dst *string) {
	if name == "" {
		return
	}
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func envInt(name string, dst *int) {
	if name == "" {
		return
	}
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
