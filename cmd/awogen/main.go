package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"awogen/internal/build"
	"awogen/internal/domain/config"
	"awogen/internal/serve"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultIndexPath = ".awogen/manifest.db"

var (
	flagConfig string
	flagAddr   string
)

var rootCmd = &cobra.Command{
	Use:   "awogen",
	Short: "Bilingual anime watch order site generator",
	Long: `awogen reads per-series JSON guide data and generates the full static
site: one page per series and language, a homepage per language, and
sitemap.xml. Running without a subcommand performs a full build.`,
	SilenceUsage: true,
	RunE:         runBuild,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the full site into the public directory",
	RunE:  runBuild,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build and serve the site locally, rebuilding on data changes",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "site.yaml", "path to site config")
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(buildCmd, serveCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	b := &build.Builder{Cfg: cfg, IndexPath: defaultIndexPath, Log: log.Sugar()}
	res, err := b.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Build complete! Generated %d pages (%d series, %d written, %d unchanged).\n",
		res.Pages, res.Guides, res.Written, res.Unchanged)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := serve.New(cfg, defaultIndexPath, log.Sugar())
	defer s.Close()

	return s.ListenAndServe(ctx, flagAddr)
}

func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.LoadOrDefault(flagConfig)
	if err != nil {
		return config.Config{}, nil, err
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
