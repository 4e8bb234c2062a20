package articleresponse

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/go-chi/render"
)

// ArticleResponse is the response payload for the Article data model.
// It adds nothing to the stored record; clients address articles by
// position, so no id is echoed back.
type ArticleResponse struct {
	model.Article
}

func NewArticleListResponse(articles []model.Article) []render.Renderer {
	list := make([]render.Renderer, 0, len(articles))
	for _, article := range articles {
		list = append(list, NewArticleResponse(article))
	}

	return list
}

func NewArticleResponse(article model.Article) *ArticleResponse {
	return &ArticleResponse{Article: article}
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// WelcomeResponse is served at the API root.
type WelcomeResponse struct {
	Message string `json:"message"`
}

func (wr *WelcomeResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// Responder returns a render.Respond replacement that indents JSON bodies
// when pretty is set or the request carries a "pretty" query parameter.
// Everything else goes through render.DefaultResponder.
func Responder(pretty bool) func(w http.ResponseWriter, r *http.Request, v interface{}) {
	return func(w http.ResponseWriter, r *http.Request, v interface{}) {
		if !pretty && !r.URL.Query().Has("pretty") {
			render.DefaultResponder(w, r, v)

			return
		}

		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(true)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if status, ok := r.Context().Value(render.StatusCtxKey).(int); ok {
			w.WriteHeader(status)
		}
		_, _ = w.Write(buf.Bytes())
	}
}
