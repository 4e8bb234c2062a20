package article

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/logging"
	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ctxKey int8

const ctxKeyArticle ctxKey = iota

// loaded is what ArticleCtx leaves on the context: the record and the
// index it was found at.
type loaded struct {
	index   int
	article model.Article
}

// ArticleCtx middleware is used to load an Article from the {id} URL
// parameter. In case the Article could not be found, we stop here and
// return a 404.
func (h *Handler) ArticleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		index, ok := indexFromID(chi.URLParam(r, "id"))
		if !ok {
			h.renderError(w, r, errresponse.ErrArticleNotFound)

			return
		}

		article, err := h.store.Get(index)
		switch {
		case errors.Is(err, ErrNotFound):
			h.renderError(w, r, errresponse.ErrArticleNotFound)

			return
		case err != nil:
			logging.FromContext(r.Context()).Errorw("load article", "index", index, "error", err)
			h.renderError(w, r, errresponse.ErrInternal(err))

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyArticle, loaded{index: index, article: article})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// indexFromID maps a 1-based id onto a 0-based index. Values that do not
// fit an int can never name an article.
func indexFromID(id string) (int, bool) {
	n, err := strconv.Atoi(id)
	if err != nil || n < 1 {
		return 0, false
	}

	return n - 1, true
}

func articleFromContext(ctx context.Context) loaded {
	// The route guarantees ArticleCtx ran; a miss here is a wiring bug and
	// the Recoverer turns the panic into a 500.
	return ctx.Value(ctxKeyArticle).(loaded)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, e render.Renderer) {
	if err := render.Render(w, r, e); err != nil {
		logging.FromContext(r.Context()).Errorw("render error response", "error", err)
	}
}
