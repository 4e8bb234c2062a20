package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/SergeyParamoshkin/articles/internal/article"
	"github.com/SergeyParamoshkin/articles/internal/articleresponse"
	"github.com/SergeyParamoshkin/articles/internal/config"
	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/logging"
	"github.com/SergeyParamoshkin/articles/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ServiceName = "articles"
	APIPrefix   = "/api/v1"
)

type App struct {
	sugarLogger *zap.SugaredLogger
	config      *config.Config
	store       article.Store
	metrics     *metrics.Metrics
}

func New(cfg *config.Config, logger *zap.SugaredLogger, store article.Store, m *metrics.Metrics) *App {
	return &App{
		sugarLogger: logger,
		config:      cfg,
		store:       store,
		metrics:     m,
	}
}

// Router builds the public API router.
func (a *App) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logging.Middleware(a.sugarLogger))
	r.Use(a.metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.render(w, r, errresponse.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		a.render(w, r, errresponse.ErrMethodNotAllowed)
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "pong")
	})

	r.Get(APIPrefix, func(w http.ResponseWriter, r *http.Request) {
		a.render(w, r, &articleresponse.WelcomeResponse{Message: "Welcome to the blog API!"})
	})

	r.Mount(APIPrefix+"/articles", article.NewHandler(a.store).Routes())

	return r
}

// DiagRouter serves metrics and the JSON route docs of api.
func (a *App) DiagRouter(api chi.Routes) chi.Router {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	r.Get("/routes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(docgen.JSONRoutesDoc(api)))
		if err != nil {
			a.sugarLogger.Errorw("write route docs", "error", err)
		}
	})

	return r
}

// RoutesDoc renders the markdown documentation printed by --routes.
func RoutesDoc(api chi.Router) string {
	return docgen.MarkdownRoutesDoc(api, docgen.MarkdownOpts{
		ProjectPath: "github.com/SergeyParamoshkin/articles",
		Intro:       "Routes of the articles service.",
	})
}

// Run serves the API and diagnostics until ctx is cancelled or either
// listener fails, then shuts both down.
func (a *App) Run(ctx context.Context) error {
	api := a.Router()

	servers := []*http.Server{
		{
			Addr:         a.config.Addr,
			Handler:      api,
			ReadTimeout:  a.config.ReadTimeout,
			WriteTimeout: a.config.WriteTimeout,
		},
		{
			Addr:         a.config.DiagAddr,
			Handler:      a.DiagRouter(api),
			ReadTimeout:  a.config.ReadTimeout,
			WriteTimeout: a.config.WriteTimeout,
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			a.sugarLogger.Infow("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.sugarLogger.Infow("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}

		return errors.Join(errs...)
	})

	return g.Wait()
}

func (a *App) render(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		a.sugarLogger.Errorw(err.Error())
	}
}
