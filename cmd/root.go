package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/atm/internal/app"
	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/errhandler"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/ui/prompts"
)

// deps is filled by the root command before any subcommand runs.
type deps struct {
	migrations fs.FS
	cfgFile    string
	pin        string

	cfg     *config.Config
	app     *app.App
	cleanup func()
}

func (d *deps) svc() *service.Service {
	return d.app.Service
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd, d := newRootCmd(migrations)

	err := rootCmd.Execute()
	d.close()

	if err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

func newRootCmd(migrations fs.FS) (*cobra.Command, *deps) {
	d := &deps{migrations: migrations}

	rootCmd := &cobra.Command{
		Use:           "atm",
		Short:         "atm is a single-account cash terminal",
		Long:          `atm keeps one PIN-protected balance: deposit, withdraw, transfer out, change the PIN or reset to defaults.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return d.open()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&d.cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVarP(&d.pin, "pin", "p", "", "PIN used to authenticate (prompted when empty)")

	rootCmd.AddCommand(NewSessionCmd(d))
	rootCmd.AddCommand(NewBalanceCmd(d))
	rootCmd.AddCommand(NewDepositCmd(d))
	rootCmd.AddCommand(NewWithdrawCmd(d))
	rootCmd.AddCommand(NewTransferCmd(d))
	rootCmd.AddCommand(NewPinCmd(d))
	rootCmd.AddCommand(NewResetCmd(d))
	rootCmd.AddCommand(NewInfoCmd(d))

	return rootCmd, d
}

func (d *deps) open() error {
	if d.app != nil {
		return nil
	}

	cfg, err := initConfig(d.cfgFile)
	if err != nil {
		return err
	}
	d.cfg = cfg

	application, cleanup, err := app.NewApp(cfg, d.migrations)
	if err != nil {
		return err
	}
	d.app = application
	d.cleanup = cleanup

	return nil
}

func (d *deps) close() {
	if d.cleanup != nil {
		d.cleanup()
		d.cleanup = nil
	}
}

func initConfig(cfgFile string) (*config.Config, error) {
	v := viper.New()
	bindDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := createDefaultConfig(v, appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix("ATM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override
	_ = v.BindEnv("defaults.currency")

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	if v.GetString("defaults.currency") == "" {
		if err := initWizard(v); err != nil {
			return nil, err
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

// bindDefaults registers every key so AutomaticEnv overrides work even when
// the config file does not mention them. defaults.currency is left unset so
// the first run can ask for it.
func bindDefaults(v *viper.Viper) {
	def := config.NewDefault()

	v.SetDefault("storage.backend", def.Storage.Backend)
	v.SetDefault("storage.dir", def.Storage.Dir)
	v.SetDefault("storage.sqlite_path", def.Storage.SQLitePath)
	v.SetDefault("storage.redis_url", def.Storage.RedisURL)
	v.SetDefault("storage.redis_prefix", def.Storage.RedisPrefix)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
}

func initWizard(v *viper.Viper) error {
	currency, err := prompts.PromptInitCurrency(constants.DefaultCurrency)
	if err != nil {
		if errhandler.IsInterrupt(err) {
			return err
		}
		pterm.Warning.Printf("Could not ask for a currency (%v), using %s\n", err, constants.DefaultCurrency)
		currency = constants.DefaultCurrency
	}

	v.Set("defaults.currency", currency)

	if v.ConfigFileUsed() == "" {
		return nil
	}
	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Display currency set to: %s\n", currency)

	return nil
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
