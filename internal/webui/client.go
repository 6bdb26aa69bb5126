// Package webui implements the server-rendered front end: a typed client
// for the content API, layout helpers that bucket articles into page
// sections, and the HTML pages themselves.
package webui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"lawgan/internal/resilience/circuitbreaker"
	"lawgan/pkg/config"
)

// Article mirrors the article resource returned by the content API.
type Article struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Summary    string    `json:"summary,omitempty"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	IsBreaking bool      `json:"is_breaking"`
	Published  bool      `json:"published"`
	Author     string    `json:"author,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	ImageMime  string    `json:"image_mime,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Quote mirrors the pull quote resource returned by the content API.
type Quote struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BoardMember mirrors the editorial board resource returned by the content API.
type BoardMember struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	About string `json:"about,omitempty"`
	Image string `json:"image,omitempty"`
}

// Executive mirrors the executive resource returned by the content API.
type Executive struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	About    string `json:"about,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Advertisement mirrors the advertisement resource returned by the content API.
type Advertisement struct {
	ID    int64  `json:"id"`
	Image string `json:"image,omitempty"`
	URL   string `json:"url"`
	Owner string `json:"owner"`
	Page  string `json:"page"`
}

// Client is a read-only HTTP client for the content API.
// When Breaker is set, fetches run through it so a dead API trips the
// circuit instead of tying up page renders. A nil Breaker calls directly.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Breaker *circuitbreaker.CircuitBreaker
}

// NewClient builds a Client from the environment. API_BASE_URL points at
// the content API and defaults to the local development server.
func NewClient() *Client {
	return &Client{
		BaseURL: config.GetEnvString("API_BASE_URL", "http://localhost:8080"),
		HTTP: &http.Client{
			Timeout: config.GetEnvDuration("API_CLIENT_TIMEOUT", 10*time.Second),
		},
		Breaker: circuitbreaker.New(circuitbreaker.ContentAPIConfig()),
	}
}

// apiError carries the message body returned by the API on failures.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// IsNotFound reports whether err is an API response with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*apiError)
	return ok && apiErr.Status == http.StatusNotFound
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.Breaker == nil {
		return c.fetch(ctx, path, out)
	}

	v, err := c.Breaker.Execute(func() (interface{}, error) {
		err := c.fetch(ctx, path, out)
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
			// 4xx means the API is healthy and said no. Hand the error back
			// without counting it as a circuit failure.
			return err, nil
		}
		return nil, err
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("fetch %s: content api unavailable: %w", path, err)
		}
		return err
	}
	if v != nil {
		return v.(error)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &apiError{Status: resp.StatusCode, Message: body.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Articles fetches every published article, newest first.
func (c *Client) Articles(ctx context.Context) ([]Article, error) {
	var body struct {
		Articles []Article `json:"articles"`
	}
	if err := c.get(ctx, "/articles", &body); err != nil {
		return nil, err
	}
	return body.Articles, nil
}

// ArticlesByCategory fetches published articles for one category.
func (c *Client) ArticlesByCategory(ctx context.Context, category string) ([]Article, error) {
	var body struct {
		Articles []Article `json:"articles"`
	}
	if err := c.get(ctx, "/articles/category/"+url.PathEscape(category), &body); err != nil {
		return nil, err
	}
	return body.Articles, nil
}

// ArticleBySlug fetches a single article by its slug.
func (c *Client) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	var body struct {
		Article Article `json:"article"`
	}
	if err := c.get(ctx, "/articles/"+url.PathEscape(slug), &body); err != nil {
		return nil, err
	}
	return &body.Article, nil
}

// Quotes fetches the pull quotes for the home page.
func (c *Client) Quotes(ctx context.Context) ([]Quote, error) {
	var body struct {
		Quotes []Quote `json:"quotes"`
	}
	if err := c.get(ctx, "/quotes", &body); err != nil {
		return nil, err
	}
	return body.Quotes, nil
}

// EditorialBoards fetches the editorial board members.
func (c *Client) EditorialBoards(ctx context.Context) ([]BoardMember, error) {
	var body struct {
		Members []BoardMember `json:"editorialBoards"`
	}
	if err := c.get(ctx, "/editorial-boards", &body); err != nil {
		return nil, err
	}
	return body.Members, nil
}

// Executives fetches the executive profiles for the about page.
func (c *Client) Executives(ctx context.Context) ([]Executive, error) {
	var body struct {
		Executives []Executive `json:"executives"`
	}
	if err := c.get(ctx, "/executives", &body); err != nil {
		return nil, err
	}
	return body.Executives, nil
}

// AdvertisementsByPage fetches the advertisements placed on one page slot.
func (c *Client) AdvertisementsByPage(ctx context.Context, page string) ([]Advertisement, error) {
	var body struct {
		Advertisements []Advertisement `json:"advertisements"`
	}
	if err := c.get(ctx, "/advertisements/page/"+url.PathEscape(page), &body); err != nil {
		return nil, err
	}
	return body.Advertisements, nil
}
