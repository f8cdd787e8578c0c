package storage

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docker/go-units"
)

// Backend identifies a storage implementation.
type Backend string

// Supported storage backends.
const (
	BackendFilesystem Backend = "filesystem"
	BackendS3         Backend = "s3"
)

// Config contains blob storage configuration.
type Config struct {
	Backend Backend `toml:"backend"`

	// BasePath is the root directory for filesystem storage.
	// Default: ".data/blobs"
	BasePath         string   `toml:"base_path"`
	MaxUploadSize    string   `toml:"max_upload_size"`
	S3               S3Config `toml:"s3"`
	maxUploadSizeVal int64
}

// S3Config locates the bucket used by the S3 backend.
type S3Config struct {
	Bucket          string `toml:"bucket"`
	Region          string `toml:"region"`
	Endpoint        string `toml:"endpoint"`
	Prefix          string `toml:"prefix"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
	UsePathStyle    bool   `toml:"use_path_style"`
}

// Env maps environment variable names for storage configuration.
type Env struct {
	Backend        string
	BasePath       string
	MaxUploadSize  string
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKeyID  string
	S3SecretKey    string
	S3UsePathStyle string
}

// MaxUploadSizeBytes returns the parsed upload limit. Valid after Finalize.
func (c *Config) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	if overlay.S3.Bucket != "" {
		c.S3.Bucket = overlay.S3.Bucket
	}
	if overlay.S3.Region != "" {
		c.S3.Region = overlay.S3.Region
	}
	if overlay.S3.Endpoint != "" {
		c.S3.Endpoint = overlay.S3.Endpoint
	}
	if overlay.S3.Prefix != "" {
		c.S3.Prefix = overlay.S3.Prefix
	}
	if overlay.S3.AccessKeyID != "" {
		c.S3.AccessKeyID = overlay.S3.AccessKeyID
	}
	if overlay.S3.SecretAccessKey != "" {
		c.S3.SecretAccessKey = overlay.S3.SecretAccessKey
	}
	if overlay.S3.UsePathStyle {
		c.S3.UsePathStyle = true
	}
}

func (c *Config) loadDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFilesystem
	}
	if c.BasePath == "" {
		c.BasePath = ".data/blobs"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "5MB"
	}
	if c.S3.Region == "" {
		c.S3.Region = "us-east-1"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(name string, dst *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	if env.Backend != "" {
		if v := os.Getenv(env.Backend); v != "" {
			c.Backend = Backend(v)
		}
	}
	set(env.BasePath, &c.BasePath)
	set(env.MaxUploadSize, &c.MaxUploadSize)
	set(env.S3Bucket, &c.S3.Bucket)
	set(env.S3Region, &c.S3.Region)
	set(env.S3Endpoint, &c.S3.Endpoint)
	set(env.S3AccessKeyID, &c.S3.AccessKeyID)
	set(env.S3SecretKey, &c.S3.SecretAccessKey)

	if env.S3UsePathStyle != "" {
		if v := os.Getenv(env.S3UsePathStyle); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.S3.UsePathStyle = b
			}
		}
	}
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendFilesystem:
		if c.BasePath == "" {
			return fmt.Errorf("base_path required")
		}
	case BackendS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket required")
		}
	default:
		return fmt.Errorf("invalid backend: %s (must be filesystem or s3)", c.Backend)
	}

	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	return nil
}
