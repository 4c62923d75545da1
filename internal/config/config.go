// Package config loads remedy settings from a TOML file and REMEDY_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/remedy/internal/domain"
	"github.com/spf13/viper"
)

const (
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"

	TransportSSH      = "ssh"
	TransportScripted = "scripted"

	configName = "config"
	configType = "toml"
	configDir  = ".config/remedy"
	envPrefix  = "REMEDY"
)

type Config struct {
	Store       StoreConfig             `mapstructure:"store"`
	Transport   TransportConfig         `mapstructure:"transport"`
	Devices     map[string]DeviceConfig `mapstructure:"devices"`
	Log         LogConfig               `mapstructure:"log"`
	Remediate   RemediateConfig         `mapstructure:"remediate"`
	Credentials CredentialsConfig       `mapstructure:"credentials"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type TransportConfig struct {
	Kind             string        `mapstructure:"kind"`
	Fixtures         string        `mapstructure:"fixtures"`
	Port             int           `mapstructure:"port"`
	Username         string        `mapstructure:"username"`
	PasswordRef      string        `mapstructure:"password_ref"`
	KnownHosts       string        `mapstructure:"known_hosts"`
	Prompt           string        `mapstructure:"prompt"`
	Timeout          time.Duration `mapstructure:"timeout"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout"`
	CommandDelay     time.Duration `mapstructure:"command_delay"`
}

type DeviceConfig struct {
	Address     string `mapstructure:"address"`
	Username    string `mapstructure:"username"`
	PasswordRef string `mapstructure:"password_ref"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RemediateConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

type CredentialsConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads path, or config.toml from $HOME/.config/remedy when path is
// empty. A missing default file is not an error. The returned viper
// instance carries the merged settings for adapters that read keys
// directly.
func Load(path string) (*viper.Viper, Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, homeDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configNotFound) {
			return nil, Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, Config{}, err
	}

	return v, cfg, nil
}

func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault("store.backend", BackendTOML)
	v.SetDefault("store.path", "")
	v.SetDefault("transport.kind", TransportSSH)
	v.SetDefault("transport.fixtures", "")
	v.SetDefault("transport.port", 22)
	v.SetDefault("transport.username", "")
	v.SetDefault("transport.password_ref", "")
	v.SetDefault("transport.known_hosts", "")
	v.SetDefault("transport.prompt", domain.DefaultPromptExpr)
	v.SetDefault("transport.timeout", "30s")
	v.SetDefault("transport.poll_interval", "250ms")
	v.SetDefault("transport.handshake_timeout", "15s")
	v.SetDefault("transport.command_delay", "2s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("remediate.concurrency", 1)
	v.SetDefault("credentials.dir", filepath.Join(homeDir, configDir, "credentials"))
}

func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendTOML, BackendSQLite:
	default:
		return fmt.Errorf("unsupported store backend %q", c.Store.Backend)
	}

	switch c.Transport.Kind {
	case TransportSSH, TransportScripted:
	default:
		return fmt.Errorf("unsupported transport kind %q", c.Transport.Kind)
	}

	if _, err := domain.NewPrompt(c.Transport.Prompt); err != nil {
		return fmt.Errorf("transport prompt: %w", err)
	}
	if c.Transport.Timeout <= 0 {
		return errors.New("transport timeout must be positive")
	}
	if c.Transport.CommandDelay < 0 {
		return errors.New("transport command delay must not be negative")
	}
	if c.Remediate.Concurrency < 1 {
		return fmt.Errorf("remediate concurrency must be at least 1, got %d", c.Remediate.Concurrency)
	}

	return nil
}
