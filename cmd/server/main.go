package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/youruser/cardgen/internal/config"
	imagepkg "github.com/youruser/cardgen/internal/image"
	"github.com/youruser/cardgen/internal/logging"
)

var version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:          "cardgen",
		Short:        "Business card generator with vCard QR codes",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")

	load := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		logging.Init(logging.Options{
			Level:      cfg.Logger.Level,
			File:       cfg.Logger.File,
			MaxSizeMB:  cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			MaxAgeDays: cfg.Logger.MaxAgeDays,
			Compress:   cfg.Logger.Compress,
		})
		return cfg, nil
	}

	root.AddCommand(newServeCmd(load), newRenderCmd(load), newBatchCmd(load))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cardgen %s\n", version)
		},
	})
	return root
}

type configLoader func() (*config.Config, error)

func newComposer(cfg *config.Config) *imagepkg.Composer {
	return imagepkg.NewComposer(cfg.Layout, cfg.Card.TemplatePath, cfg.FontSpec())
}
