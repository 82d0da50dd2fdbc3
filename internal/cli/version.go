package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nextrip/pkg/nextrip"
)

const modulePath = "github.com/mesh-intelligence/nextrip"

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nextrip version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.stdout, "nextrip v%s\nmodule: %s\n", nextrip.Version, modulePath)
			return nil
		},
	}
}
