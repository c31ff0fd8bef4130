package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/srl-labs/routeleak/restconf"
	"github.com/srl-labs/routeleak/types"
)

func routeMapCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:     "route-map",
		Short:   "configure a route-map sequence that filters or tags leaked routes",
		PreRunE: requireName,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg := types.RouteMapConfig{
				Name: o.RouteMap.Name,
				Entries: []types.RouteMapEntry{
					{
						Seq:             o.RouteMap.Seq,
						Action:          types.RouteMapAction(o.RouteMap.Action),
						Description:     o.RouteMap.Description,
						MatchPrefixList: o.RouteMap.MatchPrefixList,
						SetRT:           o.RouteMap.SetRT,
					},
				},
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.ConfigureRouteMap(ctx, cfg)
			})
		},
	}

	c.Flags().StringVarP(&o.RouteMap.Name, "name", "n", o.RouteMap.Name, "route-map name")
	c.Flags().Uint16VarP(&o.RouteMap.Seq, "seq", "", o.RouteMap.Seq, "sequence number")
	c.Flags().StringVarP(&o.RouteMap.Action, "action", "", o.RouteMap.Action, "one of [permit, deny]")
	c.Flags().StringVarP(&o.RouteMap.Description, "description", "", o.RouteMap.Description,
		"sequence description")
	c.Flags().StringVarP(&o.RouteMap.MatchPrefixList, "match-prefix-list", "", o.RouteMap.MatchPrefixList,
		"IP prefix-list to match")
	c.Flags().StringSliceVarP(&o.RouteMap.SetRT, "set-rt", "", o.RouteMap.SetRT,
		"route target to attach, repeatable")

	return c, nil
}
