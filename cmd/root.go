package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/yuzawa-san/wawona/internal/version"
)

const projectURL = "https://github.com/yuzawa-san/wawona"

type rootOptions struct {
	verbose bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "wawona",
		Short:        "Reserve office desks from the terminal",
		Long:         "wawona completes pending workplace check-in tasks, shows the two-week booking calendar for you and the coworkers you follow, and books office days.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkflow(cmd, opts, false)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace API requests and responses")

	rootCmd.AddCommand(
		newVersionCmd(),
		newResetCmd(opts),
	)

	return rootCmd
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved settings and set them up again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkflow(cmd, opts, true)
		},
	}
}

func runWorkflow(cmd *cobra.Command, opts *rootOptions, reset bool) error {
	out := cmd.OutOrStdout()
	printBanner(out)

	app, err := wireApp(wireOptions{
		in:      cmd.InOrStdin(),
		out:     out,
		errOut:  cmd.ErrOrStderr(),
		verbose: opts.verbose,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if reset {
		fmt.Fprintln(out, "Removing config file")
		if err := app.workflow.Reset(ctx); err != nil {
			return err
		}
	}

	return app.workflow.Run(ctx)
}

func printBanner(out io.Writer) {
	title := lipgloss.NewRenderer(out).NewStyle().Foreground(lipgloss.Color("2")).Render("W A W O N A")
	fmt.Fprintf(out, "🌲 %s 🌲\n\n%s - %s\n\n", title, version.Version, projectURL)
}
