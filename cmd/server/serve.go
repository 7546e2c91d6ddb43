package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ridwanfathin/shop-admin-service/internal/handler"
	"github.com/ridwanfathin/shop-admin-service/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the reporting HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if a.cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			a.initMetrics()

			reportHandler := handler.NewReportHandler(a.reportService(cmd.Context()))
			appServer := server.NewServer(a.cfg, a.logger, reportHandler, a.db.Ping)

			// Start server (blocking call)
			return appServer.Start()
		},
	}
}
