package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ctgapi/catalog"
	cerr "ctgapi/errors"
	"ctgapi/middleware"
	"ctgapi/response"
	"ctgapi/services"
)

type Options struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	CORS              middleware.CORSConfig
}

type App struct {
	r      *mux.Router
	h      http.Handler
	ctg    *services.Category
	dtl    *services.Detail
	loader *catalog.Loader
	logger zerolog.Logger
	opts   Options
}

// NewApp loads the catalog through loader and wires the routes. A load
// failure is returned as is and no App is built.
func NewApp(ctx context.Context, loader *catalog.Loader, logger zerolog.Logger, opts Options) (*App, error) {
	snap, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	if opts.Addr == "" {
		opts.Addr = "127.0.0.1:8000"
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 2 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.CORS.AllowedMethods == nil {
		opts.CORS = middleware.DefaultCORSConfig()
	}

	app := &App{
		ctg:    services.NewCategory(snap.Categories),
		dtl:    services.NewDetail(snap.Details, snap.Categories.Ids()),
		loader: loader,
		logger: logger,
		opts:   opts,
	}
	app.initRoutes()
	return app, nil
}

// Handler is the router wrapped in the middleware chain.
func (app *App) Handler() http.Handler {
	return app.h
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.opts.Addr)
	if err != nil {
		return fmt.Errorf("unable to listen on %s: %w", app.opts.Addr, err)
	}
	return app.Serve(ctx, ln)
}

func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           app.h,
		ReadTimeout:       app.opts.ReadTimeout,
		ReadHeaderTimeout: app.opts.ReadHeaderTimeout,
		WriteTimeout:      app.opts.WriteTimeout,
		IdleTimeout:       app.opts.IdleTimeout,
	}

	app.loader.MarkServing()
	app.logger.Info().
		Str("addr", ln.Addr().String()).
		Str("source", app.loader.Source()).
		Int("categories", app.ctg.Total()).
		Msg("Serving categories")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.opts.ShutdownTimeout)
		defer cancel()

		app.logger.Info().Msg("Shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (app *App) initRoutes() {
	app.r = mux.NewRouter()
	app.r.NotFoundHandler = http.HandlerFunc(app.notFound)
	app.r.MethodNotAllowedHandler = http.HandlerFunc(app.methodNotAllowed)

	api := app.r.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = app.r.MethodNotAllowedHandler

	//CATEGORIES
	api.HandleFunc("/categories", app.listCategories).Methods("GET")
	api.HandleFunc("/categories/{id}", app.getCategory).Methods("GET")

	//DETAILS
	api.HandleFunc("/details", app.listDetails).Methods("GET")
	api.HandleFunc("/details/{category_number}", app.getDetail).Methods("GET")

	//HEALTH
	api.HandleFunc("/health", app.health).Methods("GET")

	// Recovery sits inside Logger so a recovered 500 is still logged.
	app.h = middleware.Chain(
		middleware.RequestID,
		middleware.Logger(app.logger),
		middleware.Recovery(app.logger),
		middleware.CORS(app.opts.CORS),
	)(app.r)
}

func (app *App) notFound(w http.ResponseWriter, r *http.Request) {
	app.write(w, r, response.Fail(cerr.NewNotFound("route")))
}

func (app *App) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	app.write(w, r, response.Fail(cerr.NewMethodNotAllowed(r.Method)))
}

// write logs failures on the request logger and sends the result.
func (app *App) write(w http.ResponseWriter, r *http.Request, res response.Result) {
	logger := zerolog.Ctx(r.Context())
	if !res.Ok() {
		event := logger.Debug()
		if res.Status() >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.Str("kind", string(res.Kind())).Msg(res.Message())
	}

	if err := response.Write(w, res); err != nil {
		logger.Error().Err(err).Msg("Unable to write response")
	}
}
