package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ctgapi/catalog"
	"ctgapi/config"
	"ctgapi/logging"
	postgresql "ctgapi/services/repositories"
)

var (
	configFile string
	v          = viper.New()

	cfg    *config.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "ctgapi",
	Short: "Read-only category catalog API",
	Long: `ctgapi serves a fixed catalog of categories and their details.

Both datasets are loaded once at startup, from the copy embedded in the
binary, a directory of JSON/YAML files, or Postgres, and are never
modified afterwards.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is ./ctgapi.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("source", config.SourceEmbedded, "dataset source (embedded, dir, postgres)")
	flags.String("data-dir", "", "dataset directory when --source=dir")

	mustBind("log.level", "log-level")
	mustBind("log.format", "log-format")
	mustBind("data.source", "source")
	mustBind("data.dir", "data-dir")

	rootCmd.AddCommand(serveCmd, categoriesCmd, detailsCmd, checkCmd)
}

func mustBind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
	}
}

func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load .env: %w", err)
	}

	loaded, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	cfg = loaded
	logger = logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	return nil
}

// openSource returns the configured dataset source and a func releasing
// whatever it holds.
func openSource(ctx context.Context) (catalog.Source, func(), error) {
	switch cfg.Data.Source {
	case config.SourceDir:
		return catalog.Dir(cfg.Data.Dir), func() {}, nil
	case config.SourcePostgres:
		p, err := postgresql.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		return postgresql.NewSource(p), p.Close, nil
	default:
		return catalog.Embedded(), func() {}, nil
	}
}

func loadSnapshot(ctx context.Context) (*catalog.Snapshot, error) {
	src, closeSrc, err := openSource(ctx)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	return catalog.Load(ctx, src)
}
