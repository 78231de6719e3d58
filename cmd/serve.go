package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"ctgapi/app"
	"ctgapi/catalog"
	cerr "ctgapi/errors"
	"ctgapi/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Example: `  # Serve the embedded datasets on 127.0.0.1:8000
  ctgapi serve

  # Serve datasets from a directory on another port
  ctgapi serve --source dir --data-dir ./data --port 9000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "127.0.0.1", "bind address")
	serveCmd.Flags().Int("port", 8000, "server port")

	if err := v.BindPFlag("server.host", serveCmd.Flags().Lookup("host")); err != nil {
		panic(err)
	}
	if err := v.BindPFlag("server.port", serveCmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	src, closeSrc, err := openSource(ctx)
	if err != nil {
		logger.Error().Err(err).Str("source", cfg.Data.Source).Msg("Unable to open dataset source")
		return err
	}

	a, err := app.NewApp(ctx, catalog.NewLoader(src), logger, app.Options{
		Addr:            cfg.Server.Addr(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		CORS: middleware.CORSConfig{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   middleware.DefaultCORSConfig().AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           middleware.DefaultCORSConfig().MaxAge,
		},
	})
	closeSrc()
	if err != nil {
		var loadErr *cerr.LoadError
		if errors.As(err, &loadErr) {
			logger.Error().Err(loadErr.Err).Str("dataset", loadErr.Dataset).Msg("Unable to load catalog")
		}
		return err
	}

	return a.Run(ctx)
}
