package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stackshop/internal/catalog"
	"stackshop/internal/config"
	"stackshop/internal/logging"
	"stackshop/internal/ui"
	"stackshop/internal/ui/services/events"
)

// Options are the command line settings
type Options struct {
	ConfigPath string
	APIBaseURL string
	SKU        string
	Debug      bool
}

// NewRootCommand creates the stackshop command
func NewRootCommand() *cobra.Command {
	var opts Options
	cmd := &cobra.Command{
		Use:          "stackshop",
		Short:        "Browse the StackShop catalog in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to "+config.FileName)
	flags.StringVar(&opts.APIBaseURL, "api", "", "Storefront API base URL (overrides api.base_url)")
	flags.StringVar(&opts.SKU, "sku", "", "Open the detail view of this product on start")
	flags.BoolVar(&opts.Debug, "debug", false, "Log at debug level")

	return cmd
}

// Execute runs the root command with SIGTERM cancelling the program
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()
	return NewRootCommand().ExecuteContext(ctx)
}

// Run starts the storefront UI and blocks until it exits
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logFile, err := start(config.NewConfigService(), opts)
	if err != nil {
		return err
	}
	defer logFile.Close()

	bus := events.NewBus()
	events.LogEvents(bus)

	client := catalog.NewClient(catalog.Options{
		BaseURL:              cfg.API.BaseURL,
		Timeout:              cfg.RequestTimeout(),
		MaxRequestsPerSecond: cfg.API.MaxRequestsPerSecond,
	})
	defer client.Close()

	log.Infof("Starting against %s", cfg.API.BaseURL)
	model := ui.NewModel(cfg, client, bus, nil)
	defer model.Close()
	if opts.SKU != "" {
		model.OpenOnStart(opts.SKU)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		log.Errorf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("UI exited normally")
	return nil
}

// start loads the configuration and opens the log file. Lines logged while the config is
// loaded are held back and written to the log file once it is open, never to the terminal.
func start(configSvc config.ConfigService, opts Options) (*config.Config, io.Closer, error) {
	var early bytes.Buffer
	log.SetOutput(&early)

	cfg, err := Prepare(configSvc, opts)
	if err != nil {
		log.SetOutput(os.Stderr)
		return nil, nil, err
	}

	logFile, err := logging.Setup(cfg, opts.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	}
	_, _ = log.StandardLogger().Out.Write(early.Bytes())
	return cfg, logFile, nil
}

// Prepare loads the configuration and applies command line overrides
func Prepare(configSvc config.ConfigService, opts Options) (*config.Config, error) {
	cfg, err := loadOrCreateConfig(configSvc, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.APIBaseURL != "" {
		cfg.API.BaseURL = opts.APIBaseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadOrCreateConfig loads the config file, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService, path string) (*config.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			cfg, err := configSvc.LoadFromPath(path)
			if err != nil {
				return nil, err
			}
			log.Infof("Loaded config from %s", path)
			return cfg, nil
		}
		return createConfig(configSvc, path), nil
	}

	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}
	if configSvc.Path() != "" {
		log.Infof("Loaded config from %s", configSvc.Path())
		return cfg, nil
	}

	// No config file anywhere: keep what was loaded (defaults and environment) and
	// write plain defaults for next time
	if err := configSvc.SaveToPath(config.DefaultConfig(), configSvc.DefaultPath()); err != nil {
		log.Warnf("Failed to save config: %v", err)
	}
	return cfg, nil
}

// createConfig writes the defaults to path and returns them
func createConfig(configSvc config.ConfigService, path string) *config.Config {
	log.Infof("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	if err := configSvc.SaveToPath(cfg, path); err != nil {
		log.Warnf("Failed to save config: %v", err)
	}
	return cfg
}
