package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hance08/atm/internal/app"
	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/store"
	"github.com/hance08/atm/internal/ui"
	"github.com/hance08/atm/internal/ui/views"
)

type infoRunner struct {
	d *deps
}

func NewInfoCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, storage location, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{d: d}
			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.d.cfg
	svc := r.d.svc()

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	location, exists := r.location()

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		Backend:         cfg.Storage.Backend,
		Location:        location,
		LocationExists:  exists,
		DisplayCurrency: svc.Currency(),
		Minimum:         svc.Format(svc.Minimum()),
		AppDataDir:      getAppDataDirOrUnknown(),
		LogFile:         cfg.Log.File,
	}

	ui.PrintL2Title("System Information")
	return views.RenderSystemInfo(items)
}

func (r *infoRunner) location() (string, bool) {
	cfg := r.d.cfg

	switch cfg.Storage.Backend {
	case constants.BackendSQLite:
		path, err := app.ResolveSQLitePath(cfg)
		if err != nil {
			return "Unknown", false
		}
		return path, pathExists(path)

	case constants.BackendRedis:
		return cfg.Storage.RedisURL + " (" + cfg.Storage.RedisPrefix + ":*)", true

	default:
		if fileStore, ok := r.d.app.Store.(*store.FileStore); ok {
			path := fileStore.Path(constants.KeyBalance)
			return path, pathExists(path)
		}
		dir, err := app.ResolveDataDir(cfg)
		if err != nil {
			return "Unknown", false
		}
		return dir, pathExists(dir)
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
