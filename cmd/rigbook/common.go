package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommonOptions contains flags shared across commands.
type CommonOptions struct {
	// Output
	Format string
	Filter string

	// Flags (bools grouped for alignment)
	Indent bool
	Quiet  bool
}

// DefaultCommonOptions returns sensible defaults. An empty format defers
// to output.format in the system config.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{
		Indent: true,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: table, json, yaml (default from system config)")
	cmd.Flags().BoolVar(&opts.Indent, "indent", opts.Indent,
		"Indent JSON output")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Quiet output (errors only)")
}

// RegisterFilterFlag adds --filter for commands that list devices.
func (opts *CommonOptions) RegisterFilterFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Filter, "filter", opts.Filter,
		`Only list matching devices (e.g. 'kind == "Laptop" && ram == "32"')`)
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	if viper.GetBool("verbose") && opts.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	validFormats := map[string]bool{
		"": true, "table": true, "json": true, "yaml": true,
	}
	if !validFormats[opts.Format] {
		return fmt.Errorf("invalid format: %s (valid: table, json, yaml)", opts.Format)
	}

	return nil
}
