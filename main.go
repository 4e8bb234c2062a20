// Articles is a HTTP JSON service keeping a list of articles in memory. An
// article's id is its 1-based position in the list, so deleting an article
// moves every later one down by one id.
//
// Boot the server:
//
//	$ go run .
//
// Client requests:
//
//	$ curl http://localhost:10888/api/v1/articles
//	[{"title":"hello article","fullText":"some text here to fill the body"},...]
//
//	$ curl http://localhost:10888/api/v1/articles/2
//	{"title":"another article","fullText":"again here is some text here to fill"}
//
//	$ curl -X POST -d '{"title":"x","fullText":"y"}' http://localhost:10888/api/v1/articles
//	{"title":"x","fullText":"y"}
//
//	$ curl -X PUT -d '{"title":"z"}' http://localhost:10888/api/v1/articles/1
//	{"title":"z","fullText":""}
//
//	$ curl -X DELETE http://localhost:10888/api/v1/articles/1
//
//	$ curl http://localhost:10888/api/v1/articles/99
//	{"error":"Article not found"}
//
// Metrics and route docs are served on the diag address:
//
//	$ curl http://localhost:9999/metrics
//	$ curl http://localhost:9999/routes
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyParamoshkin/articles/internal/article"
	"github.com/SergeyParamoshkin/articles/internal/articleresponse"
	"github.com/SergeyParamoshkin/articles/internal/config"
	"github.com/SergeyParamoshkin/articles/internal/logging"
	"github.com/SergeyParamoshkin/articles/internal/metrics"
	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/server"
	"github.com/go-chi/render"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	render.Respond = articleresponse.Responder(cfg.PrettyJSON)

	m, err := metrics.New(server.ServiceName)
	if err != nil {
		sugar.Fatalw("init metrics", "error", err)
	}

	store := article.NewMemoryStore(model.Seed()...)
	if err := m.ObserveCollection(store); err != nil {
		sugar.Fatalw("observe collection", "error", err)
	}

	app := server.New(cfg, sugar, store, m)

	// Passing --routes prints docs for the router and exits.
	if cfg.Routes {
		fmt.Println(server.RoutesDoc(app.Router()))

		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		sugar.Errorw("server stopped", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := m.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("shutdown metrics", "error", err)
	}
}
