package main

import (
	"fmt"

	"github.com/rigbook/rigbook/internal/application/dto"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	opts := DefaultCommonOptions()
	var failFast bool

	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Import devices from a manifest",
		Long: `Import every device of a YAML manifest and print the resulting inventory.

  apiVersion: "1"
  devices:
    - kind: desktop
      cpu: i7
      ram: 32
      disk: 1024
      gpu: Nvidia

Rejected devices are reported by their position in the manifest and the
command exits non-zero when any device was rejected.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.ValidateFlags()
		},
		RunE: withContainer(func(ctx *CommandContext, _ *cobra.Command, args []string) error {
			resp, err := ctx.Container.BatchUseCase().Execute(ctx.Context, dto.BatchRequest{
				ManifestPath: args[0],
				Filter:       opts.Filter,
				FailFast:     failFast,
			})
			if err != nil {
				return err
			}

			if !opts.Quiet {
				formatter, err := ctx.Container.Formatter(opts.Format, opts.Indent)
				if err != nil {
					return err
				}
				if err := formatter.FormatBatch(resp); err != nil {
					return fmt.Errorf("failed to write batch result: %w", err)
				}
			}

			if n := len(resp.Rejections); n > 0 {
				return fmt.Errorf("%d device(s) rejected", n)
			}
			return nil
		}),
	}

	opts.RegisterFlags(cmd)
	opts.RegisterFilterFlag(cmd)
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first rejected device")
	return cmd
}

func init() {
	rootCmd.AddCommand(newBatchCmd())
}
