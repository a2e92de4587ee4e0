// Package container provides dependency injection for the application.
package container

import (
	"io"
	"log/slog"
	"os"

	"github.com/rigbook/rigbook/internal/application/ports"
	"github.com/rigbook/rigbook/internal/application/services"
	"github.com/rigbook/rigbook/internal/infrastructure/manifest"
	"github.com/rigbook/rigbook/internal/infrastructure/observability"
	"github.com/rigbook/rigbook/internal/infrastructure/output"
	"github.com/rigbook/rigbook/internal/infrastructure/persistence/memory"
	"github.com/rigbook/rigbook/internal/infrastructure/prompt"
	"github.com/rigbook/rigbook/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	inventory        *services.InventoryService
	metrics          *observability.Metrics
	formatterFactory ports.OutputFormatterFactory
	manifestLoader   ports.ManifestLoader
	systemCfg        *system.Config
	logger           *slog.Logger
	in               io.Reader
	out              io.Writer
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger
	// SystemConfigPath defaults to ~/.rigbook/config.yaml.
	SystemConfigPath string
	// In and Out default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	// Resolve config path here so the loader stays free of environment lookups
	configPath := opts.SystemConfigPath
	if configPath == "" {
		if p, err := system.DefaultConfigPath(); err == nil {
			configPath = p
		}
	}

	systemCfg := system.DefaultConfig()
	if configPath != "" {
		cfg, err := system.NewConfigLoader().Load(configPath)
		if err != nil {
			return nil, err
		}
		systemCfg = cfg
		opts.Logger.Debug("loaded system config", "path", configPath, "ui_mode", cfg.UI.GetUIMode())
	}

	metrics := observability.NewMetrics()
	repo := memory.NewInventoryRepository()
	inventory := services.NewInventoryService(repo, metrics, opts.Logger)

	return &Container{
		inventory:        inventory,
		metrics:          metrics,
		formatterFactory: output.NewFormatterFactory(),
		manifestLoader:   manifest.NewLoader(),
		systemCfg:        systemCfg,
		logger:           opts.Logger,
		in:               opts.In,
		out:              opts.Out,
	}, nil
}

// InventoryService returns the inventory service shared by all use cases.
func (c *Container) InventoryService() *services.InventoryService {
	return c.inventory
}

// Metrics returns the session metrics.
func (c *Container) Metrics() *observability.Metrics {
	return c.metrics
}

// Prompter picks forms or line prompts from ui.mode and whether input is a
// terminal.
func (c *Container) Prompter() ports.Prompter {
	interactive := false
	if f, ok := c.in.(*os.File); ok {
		interactive = prompt.IsInteractive(f)
	}

	if c.systemCfg.UI.UseForms(interactive) {
		c.logger.Debug("using form prompter", "accessible", c.systemCfg.UI.Accessible)
		return prompt.NewFormPrompter(c.in, c.out, c.systemCfg.UI.Accessible)
	}
	c.logger.Debug("using line prompter")
	return prompt.NewLinePrompter(c.in, c.out)
}

// Formatter creates an output formatter writing to the container's output.
// An empty format falls back to output.format from the system config.
func (c *Container) Formatter(format string, indent bool) (ports.OutputFormatter, error) {
	if format == "" {
		format = c.systemCfg.Output.Format
	}

	terminal := false
	if f, ok := c.out.(*os.File); ok {
		terminal = prompt.IsInteractive(f)
	}

	return c.formatterFactory.Create(format, c.out, ports.FormatterOptions{
		Indent:      indent,
		EnableColor: format == "table" && c.systemCfg.Output.ColorEnabled(terminal),
	})
}

// SessionUseCase builds the interactive session listing through lister.
func (c *Container) SessionUseCase(lister ports.OutputFormatter) *services.SessionUseCase {
	return services.NewSessionUseCase(c.inventory, c.Prompter(), lister, c.logger)
}

// BatchUseCase builds the manifest import use case.
func (c *Container) BatchUseCase() *services.BatchUseCase {
	return services.NewBatchUseCase(c.manifestLoader, c.inventory, c.logger)
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}
