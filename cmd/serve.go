package main

import (
	"github.com/spf13/cobra"

	"github.com/document-export-service/pkg/api"
	"github.com/document-export-service/pkg/dispatch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the document export HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		srv := api.NewServer(rt.log, api.Config{
			Backend:       rt.backend,
			Resolver:      rt.resolver,
			Pipeline:      rt.pipeline,
			Emailer:       dispatch.NewEmailer(rt.backend, rt.log),
			WhatsAppPhone: rt.cfg.WhatsAppPhone,
		})
		return srv.ListenAndServe(rt.cfg.ListenAddr)
	},
}
