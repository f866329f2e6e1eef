package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/document-export-service/pkg/dispatch"
	"github.com/document-export-service/pkg/export"
	"github.com/document-export-service/pkg/layout"
)

var (
	exportOut         string
	exportNoHeader    bool
	exportNoSignature bool
)

var exportCmd = &cobra.Command{
	Use:   "export [contract|purchase-order] <id>",
	Short: "Generate a document PDF and save it locally",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		art, err := generateDocument(cmd.Context(), rt, args[0], args[1])
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = rt.cfg.DownloadsDir
		}
		path, err := dispatch.NewDownloader(rt.log, out).Save(art)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory")
	exportCmd.Flags().BoolVar(&exportNoHeader, "no-letterhead", false, "reserve blank space instead of the letterhead")
	exportCmd.Flags().BoolVar(&exportNoSignature, "no-signature", false, "omit the signature block")
}

func buildDocument(ctx context.Context, rt *runtime, kind, id string) (*layout.Document, error) {
	variant := layout.Variant{Letterhead: !exportNoHeader, Signature: !exportNoSignature}
	switch kind {
	case "contract":
		v, err := rt.backend.FetchContract(ctx, rt.session(), id)
		if err != nil {
			return nil, err
		}
		return layout.BuildContract(ctx, v, rt.resolver, variant), nil
	case "purchase-order":
		v, err := rt.backend.FetchPurchaseOrder(ctx, rt.session(), id)
		if err != nil {
			return nil, err
		}
		return layout.BuildPurchaseOrder(ctx, v, rt.resolver, variant), nil
	default:
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}
}

func generateDocument(ctx context.Context, rt *runtime, kind, id string) (*export.Artifact, error) {
	doc, err := buildDocument(ctx, rt, kind, id)
	if err != nil {
		return nil, err
	}
	return rt.pipeline.Generate(ctx, doc)
}
