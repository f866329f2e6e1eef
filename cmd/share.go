package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/document-export-service/pkg/dispatch"
)

var shareCmd = &cobra.Command{
	Use:   "share [contract|purchase-order|dispatch] <id>",
	Short: "Share a document or dispatch summary over WhatsApp",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		if args[0] == "dispatch" {
			v, err := rt.backend.FetchDispatch(cmd.Context(), rt.session(), args[1])
			if err != nil {
				return err
			}
			url := dispatch.WaMeURL(rt.cfg.WhatsAppPhone, dispatch.BuildDispatchMessage(v))
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return newOpener().Open(url)
		}

		doc, err := buildDocument(cmd.Context(), rt, args[0], args[1])
		if err != nil {
			return err
		}
		art, err := rt.pipeline.Generate(cmd.Context(), doc)
		if err != nil {
			return err
		}

		sharer := dispatch.NewSharer(rt.log, dispatch.SharerConfig{
			Platform: hostPlatform(),
			Opener:   newOpener(),
		})
		msg := dispatch.BuildDocumentMessage(doc.Ref, doc.Date, doc.CounterpartyName())
		return sharer.Share(cmd.Context(), art, msg)
	},
}
