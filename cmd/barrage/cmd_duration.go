package main

import (
	"fmt"

	"github.com/dhamidi/barrage/duration"
	"github.com/spf13/cobra"
)

func newDurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration <text>...",
		Short: "Parse interval strings such as 500ms and print their normalized value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				d, err := duration.Parse(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				fmt.Fprintf(out, "%s\t%s\t%dns\n", arg, d, d.Nanoseconds())
			}
			return nil
		},
	}
}
