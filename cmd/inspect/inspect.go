// Package inspect implements the command that prints audio file properties.
package inspect

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aukio/soundbank/internal/conf"
	"github.com/aukio/soundbank/internal/pcmstore"
)

// Command creates a new inspect command for printing decoded audio info.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [files...]",
		Short: "Print audio file properties",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var failed int
			for _, path := range args {
				fullPath := settings.Bank.Prefix + path
				info, err := pcmstore.Info(fullPath)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", fullPath, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "%s: %d Hz, %d ch, %d bit, %s\n",
					fullPath, info.SampleRate, info.NumChannels, info.BitDepth,
					info.Duration().Round(time.Millisecond))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be read", failed, len(args))
			}
			return nil
		},
	}
}
