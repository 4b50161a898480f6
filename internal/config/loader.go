package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all settings.
const envPrefix = "UTTGEN"

// configKeys lists every settable key.  Unmarshal only consults environment
// variables for keys viper already knows about, so each key is bound
// explicitly; without this, env-only loading silently yields zero values.
var configKeys = []string{
	"server.port", "server.mode", "server.read_timeout", "server.write_timeout",
	"server.max_body_size", "server.shutdown_timeout",
	"database.enabled", "database.host", "database.port", "database.user",
	"database.password", "database.db_name", "database.ssl_mode",
	"database.max_conns", "database.min_conns", "database.conn_max_lifetime",
	"database.conn_max_idle_time",
	"redis.enabled", "redis.addr", "redis.password", "redis.db",
	"redis.pool_size", "redis.dial_timeout", "redis.read_timeout",
	"redis.write_timeout", "redis.default_ttl", "redis.key_prefix",
	"embeddings.path",
	"lexicon.path",
	"generator.similarity_threshold", "generator.phrase_table_path",
	"generator.shuffle_seed",
	"log.level", "log.format", "log.output_paths", "log.error_output_paths",
}

// newViper builds a pre-configured Viper instance: YAML file type, UTTGEN_
// env prefix, automatic env binding, and a key replacer that maps "." to "_"
// so that nested keys like "database.host" resolve to "UTTGEN_DATABASE_HOST".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range configKeys {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the YAML file at configPath, merges any UTTGEN_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from UTTGEN_* environment variables,
// with no config file required.  This is the preferred loading strategy for
// containerised deployments.
//
// Naming convention: UTTGEN_<SECTION>_<FIELD>, e.g. UTTGEN_DATABASE_HOST,
// UTTGEN_REDIS_ADDR, UTTGEN_GENERATOR_SIMILARITY_THRESHOLD.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading non-critical settings such as log level and the similarity
// threshold; callers are responsible for applying only the safe subset of
// changes at runtime.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// If the changed file fails to parse or validate, onChange is not called.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; errors surface through Load, which callers run first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad wraps Load and panics on any error.  Intended for main(), where a
// config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
