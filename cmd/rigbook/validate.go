package main

import (
	"github.com/rigbook/rigbook/internal/application/dto"
	"github.com/rigbook/rigbook/internal/domain/values"
	"github.com/spf13/cobra"
)

// deviceFlags holds the device fields given on the command line. Unset
// flags stay nil so they are reported as absent.
type deviceFlags struct {
	cpu, ram, disk, extra string
	extraName             string
}

func (f *deviceFlags) register(cmd *cobra.Command, extraName, extraHelp string) {
	f.extraName = extraName
	cmd.Flags().StringVar(&f.cpu, "cpu", "", "CPU (i5, i7)")
	cmd.Flags().StringVar(&f.ram, "ram", "", "RAM in GB (16, 32)")
	cmd.Flags().StringVar(&f.disk, "disk", "", "Disk in GB (512, 1024)")
	cmd.Flags().StringVar(&f.extra, extraName, "", extraHelp)
}

func (f *deviceFlags) request(cmd *cobra.Command, kind values.DeviceKind) dto.DeviceRequest {
	set := func(name, value string) *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return &value
	}

	kindText := kind.String()
	req := dto.DeviceRequest{
		Kind: &kindText,
		CPU:  set("cpu", f.cpu),
		RAM:  set("ram", f.ram),
		Disk: set("disk", f.disk),
	}
	if kind == values.KindDesktop {
		req.GPU = set(f.extraName, f.extra)
	} else {
		req.Screen = set(f.extraName, f.extra)
	}
	return req
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a single desktop or laptop description",
		Long: `Build one device from flags and print it as it would be stored.
Values are normalized first: "Intel i7" becomes i7 and "32GB" becomes 32.
A missing or non-whitelisted value fails with the accepted options.`,
	}

	cmd.AddCommand(
		newValidateKindCmd(values.KindDesktop, "gpu", "GPU (Nvidia, AMD)"),
		newValidateKindCmd(values.KindLaptop, "screen", "Screen size in inches (13, 14)"),
	)
	return cmd
}

func newValidateKindCmd(kind values.DeviceKind, extraName, extraHelp string) *cobra.Command {
	opts := DefaultCommonOptions()
	var flags deviceFlags

	name, _ := kind.MarshalText()
	cmd := &cobra.Command{
		Use:   string(name),
		Short: "Validate a " + kind.String(),
		Example: "  rigbook validate " + string(name) +
			" --cpu 'Intel i7' --ram 32GB --disk 1024 --" + extraName + " " + exampleValue(kind),
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.ValidateFlags()
		},
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			inventory := ctx.Container.InventoryService()
			if _, err := inventory.Add(ctx.Context, flags.request(cmd, kind)); err != nil {
				return err
			}
			if opts.Quiet {
				return nil
			}

			view, err := inventory.List(ctx.Context, "")
			if err != nil {
				return err
			}
			formatter, err := ctx.Container.Formatter(opts.Format, opts.Indent)
			if err != nil {
				return err
			}
			return formatter.Format(view)
		}),
	}

	opts.RegisterFlags(cmd)
	flags.register(cmd, extraName, extraHelp)
	return cmd
}

func exampleValue(kind values.DeviceKind) string {
	if kind == values.KindDesktop {
		return "nvidia"
	}
	return "13"
}

func init() {
	rootCmd.AddCommand(newValidateCmd())
}
