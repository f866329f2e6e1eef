package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/document-export-service/pkg/assets"
	"github.com/document-export-service/pkg/backend"
	"github.com/document-export-service/pkg/config"
	"github.com/document-export-service/pkg/export"
)

var (
	cfgPath   string
	authToken string
)

var rootCmd = &cobra.Command{
	Use:           "document-export-service",
	Short:         "Renders back-office records as PDF documents and delivers them",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "backend bearer token")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(shareCmd)
}

// runtime is the wired service environment shared by all commands.
type runtime struct {
	cfg      config.Config
	log      *zap.Logger
	backend  *backend.Client
	resolver *assets.Resolver
	pipeline *export.Pipeline
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	log, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	var source assets.Source
	switch cfg.AssetSource {
	case config.SourceS3:
		source, err = assets.NewS3Source(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			return nil, err
		}
	default:
		source = assets.NewHTTPSource(cfg.AssetsBase())
	}

	return &runtime{
		cfg:      cfg,
		log:      log,
		backend:  backend.New(cfg.BackendBaseURL, log),
		resolver: assets.NewResolver(source, cfg.AssetsBase(), log),
		pipeline: export.NewPipeline(log, export.DefaultOptions()),
	}, nil
}

func (rt *runtime) session() backend.Session {
	tok := authToken
	if tok == "" {
		tok = os.Getenv("BACKEND_TOKEN")
	}
	return backend.Session{Token: tok}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
