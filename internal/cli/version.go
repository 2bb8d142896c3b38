package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/kasuya3/INT-YAMAE"

// Version is set at build time with -ldflags "-X".
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the deckgen version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "deckgen v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
