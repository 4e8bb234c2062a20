package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

const articlesPath = "/api/v1/articles"

type Client struct {
	http.Client
	Addr string
}

type Article struct {
	Title    string `json:"title"`
	FullText string `json:"fullText"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("articles api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("articles api: %d %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) Ping(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/ping", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func (c *Client) List(ctx context.Context) ([]Article, error) {
	var out []Article
	if err := c.call(ctx, http.MethodGet, articlesPath, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) Get(ctx context.Context, id int) (*Article, error) {
	out := &Article{}
	if err := c.call(ctx, http.MethodGet, articlePath(id), nil, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) Create(ctx context.Context, a Article) (*Article, error) {
	out := &Article{}
	if err := c.call(ctx, http.MethodPost, articlesPath, a, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Update replaces both fields of article id.
func (c *Client) Update(ctx context.Context, id int, a Article) (*Article, error) {
	out := &Article{}
	if err := c.call(ctx, http.MethodPut, articlePath(id), a, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	return c.call(ctx, http.MethodDelete, articlePath(id), nil, nil)
}

func articlePath(id int) string {
	return articlesPath + "/" + strconv.Itoa(id)
}

func (c *Client) call(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.Addr+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()

		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			apiErr.Message = payload.Error
		}

		return nil, apiErr
	}

	return resp, nil
}
