package article

import (
	"errors"
	"io"
	"net/http"

	"github.com/SergeyParamoshkin/articles/internal/articlerequest"
	"github.com/SergeyParamoshkin/articles/internal/articleresponse"
	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Handler serves the articles resource on top of a Store.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Routes mounts under /api/v1/articles. Ids are digits only; anything
// else falls through to the router's NotFound handler.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListArticles)   // GET /articles
	r.Post("/", h.CreateArticle) // POST /articles

	r.Route("/{id:[0-9]+}", func(r chi.Router) {
		r.Use(h.ArticleCtx)            // Load the Article on the request context
		r.Get("/", h.GetArticle)       // GET /articles/1
		r.Put("/", h.UpdateArticle)    // PUT /articles/1
		r.Delete("/", h.DeleteArticle) // DELETE /articles/1
	})

	return r
}

// ListArticles returns every article in storage order.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	if err := render.RenderList(w, r, articleresponse.NewArticleListResponse(h.store.List())); err != nil {
		h.renderError(w, r, errresponse.ErrRender(err))
	}
}

// CreateArticle appends the posted Article and returns it back to the
// client as an acknowledgement.
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	data, err := bindArticle(r)
	if err != nil {
		h.renderError(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	article := data.Article()
	id, err := h.store.Append(article)
	if err != nil {
		logging.FromContext(r.Context()).Errorw("append article", "error", err)
		h.renderError(w, r, errresponse.ErrInternal(err))

		return
	}
	logging.FromContext(r.Context()).Debugw("article created", "id", id)

	render.Status(r, http.StatusCreated)
	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		logging.FromContext(r.Context()).Errorw("render article", "error", err)
	}
}

// GetArticle returns the article ArticleCtx loaded.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	current := articleFromContext(r.Context())

	if err := render.Render(w, r, articleresponse.NewArticleResponse(current.article)); err != nil {
		h.renderError(w, r, errresponse.ErrRender(err))
	}
}

// UpdateArticle replaces both fields of an existing Article. Fields left
// out of the body are stored as empty strings.
func (h *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	current := articleFromContext(r.Context())

	data, err := bindArticle(r)
	if err != nil {
		h.renderError(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	article := data.Article()
	if err := h.store.Replace(current.index, article); err != nil {
		h.storeError(w, r, "replace article", current.index, err)

		return
	}

	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		logging.FromContext(r.Context()).Errorw("render article", "error", err)
	}
}

// DeleteArticle removes an Article. Every article after it moves down one
// id.
func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	current := articleFromContext(r.Context())

	if err := h.store.RemoveAt(current.index); err != nil {
		h.storeError(w, r, "remove article", current.index, err)

		return
	}

	render.NoContent(w, r)
}

// storeError maps a store failure onto a response. The record can vanish
// between ArticleCtx and the mutation when requests interleave, which is
// a plain 404.
func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, op string, index int, err error) {
	if errors.Is(err, ErrNotFound) {
		h.renderError(w, r, errresponse.ErrArticleNotFound)

		return
	}

	logging.FromContext(r.Context()).Errorw(op, "index", index, "error", err)
	h.renderError(w, r, errresponse.ErrInternal(err))
}

// bindArticle decodes the request body. An empty body is the same as {}.
func bindArticle(r *http.Request) (*articlerequest.ArticleRequest, error) {
	data := &articlerequest.ArticleRequest{}
	if err := render.Bind(r, data); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return data, nil
}
