package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. COVERPAGE_SERVER_PORT.
const EnvPrefix = "COVERPAGE"

// Asset source kinds.
const (
	SourceFile  = "file"
	SourceMinio = "minio"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Assets    AssetsConfig    `yaml:"assets"`
	Minio     MinioConfig     `yaml:"minio"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Users     []User          `yaml:"users"`
}

type ServerConfig struct {
	Port                   int `yaml:"port"`
	ReadTimeoutSeconds     int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int `yaml:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int `yaml:"shutdown_timeout_seconds"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// AssetsConfig locates the images embedded in the cover page.
type AssetsConfig struct {
	Source string      `yaml:"source"` // file or minio
	Dir    string      `yaml:"dir"`    // root directory for the file source
	Logo   ImageConfig `yaml:"logo"`
	Line   ImageConfig `yaml:"line"` // optional, skipped when Name is empty
}

// ImageConfig names an asset and its rendered size in pixels.
type ImageConfig struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type AuthConfig struct {
	Enabled          bool   `yaml:"enabled"`
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

// RateLimitConfig enables per-client limiting. When RedisAddr is set the
// limit is shared across instances through Redis.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	WindowSeconds     int     `yaml:"window_seconds"`
	RedisAddr         string  `yaml:"redis_addr"`
	RedisPassword     string  `yaml:"redis_password"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                   8080,
			ReadTimeoutSeconds:     30,
			WriteTimeoutSeconds:    30,
			ShutdownTimeoutSeconds: 5,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		Assets: AssetsConfig{
			Source: SourceFile,
			Dir:    "wwwroot/images",
			Logo:   ImageConfig{Name: "tu-logo.png", Width: 200, Height: 200},
			Line:   ImageConfig{Width: 600, Height: 4},
		},
		Minio:     MinioConfig{Bucket: "coverpage-assets"},
		Auth:      AuthConfig{TokenExpireHours: 24},
		RateLimit: RateLimitConfig{RequestsPerSecond: 2, Burst: 10, WindowSeconds: 60},
		Metrics:   MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Assets.Source == "" {
		c.Assets.Source = SourceFile
	}
	if c.Auth.TokenExpireHours == 0 {
		c.Auth.TokenExpireHours = 24
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate reports settings that would make every request fail.
func (c *Config) Validate() error {
	switch c.Assets.Source {
	case SourceFile, SourceMinio:
	default:
		return fmt.Errorf("%w: unknown assets.source %q", ErrInvalidConfig, c.Assets.Source)
	}
	if c.Assets.Source == SourceMinio && (c.Minio.Endpoint == "" || c.Minio.Bucket == "") {
		return fmt.Errorf("%w: minio.endpoint and minio.bucket are required for the minio asset source", ErrInvalidConfig)
	}
	if c.Assets.Logo.Name == "" {
		return fmt.Errorf("%w: assets.logo.name is required", ErrInvalidConfig)
	}
	if c.Assets.Logo.Width <= 0 || c.Assets.Logo.Height <= 0 {
		return fmt.Errorf("%w: assets.logo size must be positive", ErrInvalidConfig)
	}
	if c.Assets.Line.Name != "" && (c.Assets.Line.Width <= 0 || c.Assets.Line.Height <= 0) {
		return fmt.Errorf("%w: assets.line size must be positive", ErrInvalidConfig)
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required when auth is enabled", ErrInvalidConfig)
	}
	return nil
}

// applyEnv loads .env (if present) and overlays COVERPAGE_* variables.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	envInt(v, "server.port", &cfg.Server.Port)
	envString(v, "log.level", &cfg.Log.Level)
	envString(v, "log.format", &cfg.Log.Format)
	envString(v, "assets.source", &cfg.Assets.Source)
	envString(v, "assets.dir", &cfg.Assets.Dir)
	envString(v, "assets.logo.name", &cfg.Assets.Logo.Name)
	envString(v, "assets.line.name", &cfg.Assets.Line.Name)
	envString(v, "minio.endpoint", &cfg.Minio.Endpoint)
	envString(v, "minio.access_key", &cfg.Minio.AccessKey)
	envString(v, "minio.secret_key", &cfg.Minio.SecretKey)
	envString(v, "minio.bucket", &cfg.Minio.Bucket)
	envBool(v, "minio.use_ssl", &cfg.Minio.UseSSL)
	envBool(v, "auth.enabled", &cfg.Auth.Enabled)
	envString(v, "auth.jwt_secret", &cfg.Auth.JWTSecret)
	envBool(v, "rate_limit.enabled", &cfg.RateLimit.Enabled)
	envString(v, "rate_limit.redis_addr", &cfg.RateLimit.RedisAddr)
	envString(v, "rate_limit.redis_password", &cfg.RateLimit.RedisPassword)
	envBool(v, "metrics.enabled", &cfg.Metrics.Enabled)
}

func envString(v *viper.Viper, key string, dst *string) {
	if s := v.GetString(key); s != "" {
		*dst = s
	}
}

func envInt(v *viper.Viper, key string, dst *int) {
	if v.GetString(key) != "" {
		*dst = v.GetInt(key)
	}
}

func envBool(v *viper.Viper, key string, dst *bool) {
	if v.GetString(key) != "" {
		*dst = v.GetBool(key)
	}
}
