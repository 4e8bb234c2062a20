package articlerequest

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// ArticleRequest is the request payload for create and update.
//
// Nothing is validated. A JSON string is stored as is, any other JSON value
// is stored as its compact JSON text and a missing or null field becomes an
// empty string. Update therefore replaces both fields, it never merges.
type ArticleRequest struct {
	Title    json.RawMessage `json:"title"`
	FullText json.RawMessage `json:"fullText"`
}

func (a *ArticleRequest) Bind(r *http.Request) error {
	return nil
}

func (a *ArticleRequest) Article() model.Article {
	return model.Article{Title: coerce(a.Title), FullText: coerce(a.FullText)}
}

func coerce(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	buf := &bytes.Buffer{}
	if err := json.Compact(buf, raw); err != nil {
		return string(raw)
	}

	return buf.String()
}
