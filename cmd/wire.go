package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/remedy/internal/adapters/credentials/chain"
	sqliterepo "github.com/bnema/remedy/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/remedy/internal/adapters/repo/toml"
	"github.com/bnema/remedy/internal/adapters/syslog"
	"github.com/bnema/remedy/internal/adapters/transport"
	"github.com/bnema/remedy/internal/adapters/transport/scripted"
	sshtransport "github.com/bnema/remedy/internal/adapters/transport/ssh"
	"github.com/bnema/remedy/internal/application"
	"github.com/bnema/remedy/internal/config"
	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/logging"
	"github.com/bnema/remedy/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const sqliteFileName = "events.db"

type app struct {
	cfg         config.Config
	logger      *zap.Logger
	repo        ports.EventRepository
	ingest      *application.IngestService
	remediation *application.RemediationService
	closers     []func() error
}

func wireApp(opts *rootOptions) (*app, error) {
	v, cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	a := &app{cfg: cfg, logger: logger}
	a.closers = append(a.closers, func() error {
		_ = logger.Sync()
		return nil
	})

	repo, err := wireRepository(v, cfg, a)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.repo = repo

	prompt, err := domain.NewPrompt(cfg.Transport.Prompt)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("wire prompt: %w", err)
	}

	sessionOpts := transport.Options{
		Prompt:           prompt,
		PollInterval:     cfg.Transport.PollInterval,
		HandshakeTimeout: cfg.Transport.HandshakeTimeout,
		Logger:           logger.Named("session"),
	}

	deviceTransport, err := wireTransport(cfg, sessionOpts)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	creds, err := chain.NewPassFirstWithFileFallback(cfg.Credentials.Dir)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("wire credential source: %w", err)
	}

	targets := application.NewProfileResolver(
		application.DeviceProfile{Username: cfg.Transport.Username, PasswordRef: cfg.Transport.PasswordRef},
		deviceProfiles(cfg.Devices),
		creds,
	)

	executor := application.NewExecutor(application.ExecutorConfig{
		Prompt:       prompt,
		Timeout:      cfg.Transport.Timeout,
		CommandDelay: cfg.Transport.CommandDelay,
		Logger:       logger.Named("executor"),
	})

	engine := application.NewEngine(application.DefaultRegistry(), deviceTransport, targets, executor, logger.Named("engine"))

	a.ingest = application.NewIngestService(repo, syslog.Parser{}, logger.Named("ingest"))
	a.remediation = application.NewRemediationService(repo, engine, logger.Named("remediation"))

	return a, nil
}

func wireRepository(v *viper.Viper, cfg config.Config, a *app) (ports.EventRepository, error) {
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		path := cfg.Store.Path
		if path == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve home directory: %w", err)
			}
			path = filepath.Join(homeDir, ".config", "remedy", sqliteFileName)
		}

		repo, err := sqliterepo.Open(path, ports.SystemClock{})
		if err != nil {
			return nil, fmt.Errorf("wire sqlite event repository: %w", err)
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	default:
		repo, err := tomlrepo.NewRepository(v, ports.SystemClock{})
		if err != nil {
			return nil, fmt.Errorf("wire toml event repository: %w", err)
		}
		return repo, nil
	}
}

func wireTransport(cfg config.Config, opts transport.Options) (ports.Transport, error) {
	if cfg.Transport.Kind == config.TransportScripted {
		script, err := loadScript(cfg.Transport.Fixtures)
		if err != nil {
			return nil, fmt.Errorf("wire scripted transport: %w", err)
		}
		return scripted.New(script, opts), nil
	}

	t, err := sshtransport.New(sshtransport.Config{
		Port:           cfg.Transport.Port,
		DialTimeout:    cfg.Transport.HandshakeTimeout,
		KnownHostsFile: cfg.Transport.KnownHosts,
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("wire ssh transport: %w", err)
	}

	return t, nil
}

// loadScript layers a fixtures file over the built-in lab outputs.
func loadScript(path string) (scripted.Script, error) {
	defaults := scripted.DefaultScript()
	if path == "" {
		return defaults, nil
	}

	loaded, err := scripted.LoadScript(path)
	if err != nil {
		return scripted.Script{}, err
	}

	script, err := defaults.With(loaded.Fixtures...)
	if err != nil {
		return scripted.Script{}, err
	}
	script.Unreachable = append(script.Unreachable, loaded.Unreachable...)
	if loaded.Banner != "" {
		script.Banner = loaded.Banner
	}

	return script, nil
}

func deviceProfiles(devices map[string]config.DeviceConfig) map[string]application.DeviceProfile {
	profiles := make(map[string]application.DeviceProfile, len(devices))
	for name, device := range devices {
		profiles[name] = application.DeviceProfile{
			Address:     device.Address,
			Username:    device.Username,
			PasswordRef: device.PasswordRef,
		}
	}

	return profiles
}

// Close releases the event store and flushes the logger.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	return errors.Join(errs...)
}
