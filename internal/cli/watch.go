package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebgh/turingdeck/internal/monitor"
)

// NewWatchCommand creates the watch command: claim the session and
// report when another instance takes it over.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Hold the session and warn if it is opened elsewhere",
		Long: `Claim the session store and poll its liveness key every second.
If another turingdeck instance (or another watch) claims the same
store, this command reports the takeover and exits. Interrupt with
Ctrl-C to release.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()

			m := monitor.New(rt.store, rt.log)
			if err := m.Start(cmd.Context()); err != nil {
				return err
			}
			defer m.Stop()

			fmt.Fprintln(cmd.OutOrStdout(), "watching session; Ctrl-C to stop")
			select {
			case <-cmd.Context().Done():
				return nil
			case <-m.Takeover():
				return fmt.Errorf("this session was opened in another instance")
			}
		},
	}
}
