// Package load implements the command that registers and loads a bank of
// audio files as one buffer group.
package load

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aukio/soundbank/internal/conf"
	"github.com/aukio/soundbank/internal/observability/metrics"
	"github.com/aukio/soundbank/internal/pcmstore"
	"github.com/aukio/soundbank/internal/soundbank"
)

// Command creates a new load command for decoding a set of audio files
// into a buffer group.
func Command(settings *conf.Settings) *cobra.Command {
	var groupName string

	cmd := &cobra.Command{
		Use:   "load [files...]",
		Short: "Register and load audio files as a buffer group",
		Long: `Register the given audio files in a named buffer group and decode them
into memory, reporting how many registrations and loads succeeded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, settings, groupName, args)
		},
	}

	cmd.Flags().StringVarP(&groupName, "group", "g", "default", "Buffer group name")

	return cmd
}

func runLoad(cmd *cobra.Command, settings *conf.Settings, groupName string, files []string) error {
	manager := soundbank.NewManager(pcmstore.New())
	defer manager.Close()

	if settings.Metrics.Enabled {
		sm, err := metrics.NewSoundbankMetrics(prometheus.NewRegistry())
		if err != nil {
			return fmt.Errorf("initializing metrics: %w", err)
		}
		manager.SetMetrics(sm)
	}

	group, err := manager.CreateGroup(groupName, settings.Bank.Prefix)
	if err != nil {
		return err
	}

	added := group.AddBatch(files)
	loaded := group.LoadAll(settings.Bank.VerifyOnLoad)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "group %q: registered %d/%d files, loaded %d buffers\n",
		group.Name(), added, len(files), loaded)

	for _, path := range group.Paths() {
		state := "unloaded"
		if group.Buffer(path) != soundbank.NoBuffer {
			state = "loaded"
		}
		fmt.Fprintf(out, "  %-40s %s\n", path, state)
	}

	if added < len(files) || loaded < added {
		return fmt.Errorf("group %q: %d of %d files failed", groupName, len(files)-loaded, len(files))
	}
	return nil
}
