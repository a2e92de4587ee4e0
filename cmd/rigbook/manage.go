package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newManageCmd() *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:   "manage",
		Short: "Add, edit, delete and search computers interactively",
		Long: `Start the interactive menu. The inventory is listed before every menu:

  A) Add Computer      D) Delete Computer
  E) Edit Computer     S) Search Computers
  X) eXit

Forms are used on a terminal unless ui.mode in the system config says
otherwise. End of input (Ctrl-D) exits like X.`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.ValidateFlags()
		},
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			lister, err := ctx.Container.Formatter(opts.Format, opts.Indent)
			if err != nil {
				return err
			}

			if err := ctx.Container.SessionUseCase(lister).Run(ctx.Context); err != nil {
				return err
			}

			if opts.Quiet {
				return nil
			}
			summary, err := ctx.Container.Metrics().Summary()
			if err != nil {
				ctx.Logger.Debug("failed to summarize session", "error", err)
				return nil
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), summary.String())
			return nil
		}),
	}

	opts.RegisterFlags(cmd)
	return cmd
}

func init() {
	rootCmd.AddCommand(newManageCmd())
}
