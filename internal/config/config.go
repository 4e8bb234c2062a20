package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "ARTICLES"

// Config holds application configuration.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	DiagAddr        string        `mapstructure:"diag_addr"`
	Routes          bool          `mapstructure:"routes"`
	LogLevel        string        `mapstructure:"log_level"`
	LogDevelopment  bool          `mapstructure:"log_development"`
	PrettyJSON      bool          `mapstructure:"pretty_json"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Load resolves configuration from, in order of precedence: command line
// flags, ARTICLES_* environment variables, an optional config file and
// the defaults below.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("articles", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.String("addr", ":10888", "application address")
	fs.String("diag_addr", ":9999", "diagnostics address (metrics, route docs)")
	fs.Bool("routes", false, "print router documentation and exit")
	fs.String("log_level", "info", "log level (debug, info, warn, error)")
	fs.Bool("log_development", false, "human readable development logging")
	fs.Bool("pretty_json", false, "indent every JSON response")
	fs.Duration("read_timeout", 15*time.Second, "HTTP read timeout")
	fs.Duration("write_timeout", 15*time.Second, "HTTP write timeout")
	fs.Duration("shutdown_timeout", 10*time.Second, "graceful shutdown limit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}
