package main

import (
	"context"
	"fmt"
	"net/url"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mediakit/pkg/logger"
)

// newRoutesCmd prints every demo route as linked in each version, which
// helps checking a registry before deploying it.
func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print demo links for every media version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// links need no real sessions
			cfg.SessionStore = storeMemory
			cfg.Env = logger.EnvDevelopment

			a, err := newApp(cmd.Context(), cfg, logger.Discard(), prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			return printRoutes(cmd.Context(), cmd, a)
		},
	}
}

func printRoutes(ctx context.Context, cmd *cobra.Command, a *app) error {
	rv := a.resolver
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTE\tMETHOD\tVERSION\tURL")
	for _, route := range a.routes.Routes() {
		params := url.Values{}
		if route.Name() == "product" {
			params.Set("id", "1")
		}
		for _, key := range rv.Registry().Keys() {
			p := url.Values{rv.Config().VersionParam: {key}}
			for k, v := range params {
				p[k] = v
			}
			link, err := rv.URL(ctx, route, p)
			if err != nil {
				link = "error: " + err.Error()
			}
			method := route.Method()
			if method == "" {
				method = "ANY"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", route.Name(), method, key, link)
		}
	}
	return tw.Flush()
}
