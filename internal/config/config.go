// Package config loads user settings for the genetracks CLI and server.
//
// Settings come from three layers, later layers winning:
//
//  1. built-in defaults ([Defaults])
//  2. a TOML file, by default $XDG_CONFIG_HOME/genetracks/config.toml
//  3. GENETRACKS_* environment variables
//
// Command-line flags are applied on top by the CLI.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/genetracks/genetracks/pkg/cache"
	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
	"github.com/genetracks/genetracks/pkg/pipeline"
	"github.com/genetracks/genetracks/pkg/server"
)

const appName = "genetracks"

type RenderConfig struct {
	Width   uint     `toml:"width"`
	Formats []string `toml:"formats"`
	Scale   float64  `toml:"scale"` // PNG pixel density
}

type CacheConfig struct {
	Backend   string        `toml:"backend"` // "file" | "redis" | "none"
	Dir       string        `toml:"dir"`
	TTL       time.Duration `toml:"ttl"`
	RedisAddr string        `toml:"redis_addr"`
	Namespace string        `toml:"namespace"` // key prefix for shared Redis instances
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Config is the merged configuration.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`

	// Source is the file the configuration was read from, if any.
	Source string `toml:"-"`
	// Unknown lists keys in the file that no setting uses.
	Unknown []string `toml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Render: RenderConfig{
			Width:   figure.DefaultWidth,
			Formats: []string{pipeline.FormatSVG},
			Scale:   pipeline.DefaultScale,
		},
		Cache: CacheConfig{
			Backend:   cache.BackendFile,
			Dir:       DefaultCacheDir(),
			TTL:       pipeline.DefaultTTL,
			RedisAddr: "localhost:6379",
		},
		Server: ServerConfig{Addr: server.DefaultAddr},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Environment variables read by Load.
const (
	EnvConfig         = "GENETRACKS_CONFIG"
	EnvWidth          = "GENETRACKS_WIDTH"
	EnvFormats        = "GENETRACKS_FORMATS"
	EnvScale          = "GENETRACKS_SCALE"
	EnvCacheBackend   = "GENETRACKS_CACHE_BACKEND"
	EnvCacheDir       = "GENETRACKS_CACHE_DIR"
	EnvCacheTTL       = "GENETRACKS_CACHE_TTL"
	EnvCacheNamespace = "GENETRACKS_CACHE_NAMESPACE"
	EnvRedisAddr      = "GENETRACKS_REDIS_ADDR"
	EnvServerAddr     = "GENETRACKS_SERVER_ADDR"
	EnvLogLevel       = "GENETRACKS_LOG_LEVEL"
	EnvLogFile        = "GENETRACKS_LOG_FILE"
)

// Path returns the config file location: $GENETRACKS_CONFIG if set,
// otherwise config.toml under the user config directory.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// DefaultCacheDir returns the per-user cache directory for rendered artifacts.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(dir, appName)
}

// Load reads the file at path (or [Path] when path is empty), applies
// environment overrides and validates the result. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, errors.Wrap(errors.ErrCodeParse, err, "config %s", path)
	default:
		cfg.Source = path
		for _, k := range md.Undecoded() {
			cfg.Unknown = append(cfg.Unknown, k.String())
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Save writes cfg as TOML to path, creating parent directories.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Validate rejects settings the pipeline or cache would refuse later.
func (c Config) Validate() error {
	if err := errors.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	if err := errors.ValidateScale(c.Render.Scale); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendRedis, cache.BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "cache backend %q is not one of file, redis, none", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "log level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// CacheOptions converts the cache section for cache.Open.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:   c.Cache.Backend,
		Dir:       c.Cache.Dir,
		RedisAddr: c.Cache.RedisAddr,
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := env(EnvWidth); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s=%q is not a width", EnvWidth, v)
		}
		cfg.Render.Width = uint(n)
	}
	if v := env(EnvFormats); v != "" {
		var formats []string
		for _, f := range strings.Split(v, ",") {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				formats = append(formats, f)
			}
		}
		cfg.Render.Formats = formats
	}
	if v := env(EnvScale); v != "" {
		s, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s=%q is not a number", EnvScale, v)
		}
		cfg.Render.Scale = s
	}
	if v := env(EnvCacheBackend); v != "" {
		cfg.Cache.Backend = strings.ToLower(v)
	}
	if v := env(EnvCacheDir); v != "" {
		cfg.Cache.Dir = v
	}
	if v := env(EnvCacheTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s=%q is not a duration", EnvCacheTTL, v)
		}
		cfg.Cache.TTL = d
	}
	if v := env(EnvCacheNamespace); v != "" {
		cfg.Cache.Namespace = v
	}
	if v := env(EnvRedisAddr); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := env(EnvServerAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := env(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := env(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	return nil
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}
