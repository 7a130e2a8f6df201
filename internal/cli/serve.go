package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/internal/httpapi"
	"github.com/dmitrymomot/whitebox/pkg/httpserver"
	"github.com/dmitrymomot/whitebox/pkg/logger"
)

func serveCmd(a *app) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.HTTP
			if addr != "" {
				cfg.Addr = addr
			}
			api := httpapi.New(
				httpapi.WithLogger(a.log.With(logger.Component("httpapi"))),
				httpapi.WithMetrics(httpapi.NewMetrics("whitebox")),
				httpapi.WithSelector(a.selector()),
				httpapi.WithProxyHeaders(a.cfg.ProxyHeaders...),
			)
			srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(a.log.With(logger.Component("httpserver"))))
			return srv.Run(cmd.Context(), api.Router())
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (default HTTP_ADDR)")
	return c
}
