package errresponse

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrResponse renderer type for handling all sorts of errors.
//
// Err keeps the low-level cause for logging; only ErrorText reaches the
// client.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	ErrorText string `json:"error"`          // user-level error message
	AppCode   int64  `json:"code,omitempty"` // application-specific error code
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		ErrorText:      "Invalid request.",
	}
}

func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		ErrorText:      "Error rendering response.",
	}
}

func ErrInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		ErrorText:      "Internal server error",
	}
}

var (
	ErrNotFound = &ErrResponse{
		HTTPStatusCode: http.StatusNotFound,
		ErrorText:      "Resource not found.",
	}
	ErrArticleNotFound = &ErrResponse{
		HTTPStatusCode: http.StatusNotFound,
		ErrorText:      "Article not found",
	}
	ErrMethodNotAllowed = &ErrResponse{
		HTTPStatusCode: http.StatusMethodNotAllowed,
		ErrorText:      "Method not allowed.",
	}
)
