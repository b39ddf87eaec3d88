package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dhamidi/arith/sheet"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-evaluate worksheets whenever they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			w := sheet.NewWatcher(sheet.NewWorkspace(dir), interval)
			w.OnChange = func(f *sheet.File) {
				fmt.Fprintf(out, "== %s\n", f.Path)
				if err := printSheet(out, errOut, f); err != nil {
					fmt.Fprintln(errOut, err)
				}
			}
			w.OnRemove = func(path string) {
				fmt.Fprintf(out, "== %s removed\n", path)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			w.Start()
			<-ctx.Done()
			w.Stop()
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "polling interval")

	return cmd
}
