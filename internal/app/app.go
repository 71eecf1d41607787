package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/logging"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.ValueStore
	Logger  *zap.Logger
}

// NewApp initialize logger, storage backend and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	valueStore, err := OpenStore(cfg, migrationFS)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	logger.Debug("storage opened", zap.String("backend", cfg.Storage.Backend))

	svc := service.NewService(valueStore, cfg, logger)

	cleanup := func() {
		if err := valueStore.Close(); err != nil {
			fmt.Printf("Error closing store: %v\n", err)
		}
		_ = logger.Sync()
	}

	return &App{
		Service: svc,
		Store:   valueStore,
		Logger:  logger,
	}, cleanup, nil
}

// OpenStore builds the ValueStore selected by cfg.Storage.Backend.
func OpenStore(cfg *config.Config, migrationFS fs.FS) (store.ValueStore, error) {
	switch cfg.Storage.Backend {
	case constants.BackendSQLite:
		dbPath, err := ResolveSQLitePath(cfg)
		if err != nil {
			return nil, err
		}
		s, err := store.NewSQLiteStore(dbPath, migrationFS)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return s, nil

	case constants.BackendRedis:
		s, err := store.NewRedisStore(store.RedisConfig{
			URL:    cfg.Storage.RedisURL,
			Prefix: cfg.Storage.RedisPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		return s, nil

	case constants.BackendFile, "":
		dir, err := ResolveDataDir(cfg)
		if err != nil {
			return nil, err
		}
		s, err := store.NewFileStore(afero.NewOsFs(), dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize data directory: %w", err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown storage backend '%s'", cfg.Storage.Backend)
	}
}

// ResolveDataDir returns the directory holding pin.txt and balance.txt.
func ResolveDataDir(cfg *config.Config) (string, error) {
	if cfg.Storage.Dir != "" {
		return ExpandPath(cfg.Storage.Dir)
	}
	return GetAppDataDir()
}

func ResolveSQLitePath(cfg *config.Config) (string, error) {
	if cfg.Storage.SQLitePath != "" {
		return ExpandPath(cfg.Storage.SQLitePath)
	}
	appDir, err := GetAppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, "atm.db"), nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".atm"), nil
	}

	return filepath.Join(configDir, "atm"), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
