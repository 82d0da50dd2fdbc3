package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nextrip/internal/resolver"
	"github.com/mesh-intelligence/nextrip/pkg/types"
)

// runNext handles "nextrip <route> <stop> <direction>". Arguments arrive in
// CLI order and are resolved route, direction, then stop.
func (a *app) runNext(cmd *cobra.Command, args []string) error {
	if err := a.load(cmd); err != nil {
		return err
	}

	q := resolver.Query{
		Route:     args[0],
		Stop:      args[1],
		Direction: args[2],
	}

	res, err := a.resolver.Run(cmd.Context(), q)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%d minutes.\n", res.Minutes)
	if a.flags.details {
		if line := detailLine(res.Departure); line != "" {
			fmt.Fprintln(a.stdout, line)
		}
	}
	return nil
}

// detailLine joins the non-empty descriptive fields of d.
func detailLine(d types.Departure) string {
	var parts []string
	for _, s := range []string{d.DepartureText, d.Description, d.Terminal} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " - ")
}
