package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nextrip/pkg/types"
)

func (a *app) routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			routes, err := a.resolver.ListRoutes(cmd.Context())
			if err != nil {
				return fmt.Errorf("list routes: %w", err)
			}
			return a.printCandidates(routes)
		},
	}
}

func (a *app) directionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "directions <route>",
		Short:   "List the directions of a route",
		Example: `  nextrip directions "Blue Line"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			dirs, err := a.resolver.ListDirections(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("list directions: %w", err)
			}
			return a.printCandidates(dirs)
		},
	}
}

func (a *app) stopsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stops <route> <direction>",
		Short:   "List the stops of a route in one direction",
		Example: `  nextrip stops "Blue Line" north`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			stops, err := a.resolver.ListStops(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("list stops: %w", err)
			}
			return a.printCandidates(stops)
		},
	}
}

// printCandidates writes one "ID  label" row per candidate.
func (a *app) printCandidates(cs []types.Candidate) error {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, c := range cs {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Label)
	}
	return tw.Flush()
}
