package webui

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"lawgan/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// App serves the browser-facing pages.
type App struct {
	Client *Client
	Logger *slog.Logger
	Site   *config.Site

	templates map[string]*template.Template
	pages     map[string]config.CategoryPage
}

// NewApp builds the front-end application, parsing the embedded page templates.
// The site configuration decides which category pages exist.
func NewApp(client *Client, logger *slog.Logger, site *config.Site) (*App, error) {
	funcs := template.FuncMap{
		"paragraphs": Paragraphs,
		"fmtDate": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
		"fmtTime": func(t time.Time) string {
			return t.Format("15:04")
		},
	}

	pageNames := []string{"home", "category", "article", "board", "about", "admin", "error"}
	templates := make(map[string]*template.Template, len(pageNames))
	for _, page := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}

	pages := make(map[string]config.CategoryPage, len(site.Categories))
	for _, c := range site.Categories {
		pages[c.Slug] = c
	}

	return &App{Client: client, Logger: logger, Site: site, templates: templates, pages: pages}, nil
}

// Register wires the page routes onto the mux.
func (a *App) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", a.Home)
	for slug := range a.pages {
		mux.HandleFunc("GET /"+slug, a.Category)
	}
	mux.HandleFunc("GET /article/{slug}", a.Article)
	mux.HandleFunc("GET /editorial-board", a.Board)
	mux.HandleFunc("GET /about", a.About)
	mux.HandleFunc("GET /admin", a.Admin)
}

func (a *App) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates[page].ExecuteTemplate(w, "layout.html", data); err != nil {
		a.Logger.Error("template execution failed",
			slog.String("page", page),
			slog.Any("error", err))
	}
}

func (a *App) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := a.templates["error"].ExecuteTemplate(w, "layout.html", map[string]any{
		"Title":   "Error",
		"Message": message,
	}); err != nil {
		a.Logger.Error("template execution failed",
			slog.String("page", "error"),
			slog.Any("error", err))
	}
}

// Home renders the front page. Articles, quotes, and the home ad slot
// are fetched concurrently; a missing quote or ad list never fails the
// page, only a missing article list does.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	var (
		articles []Article
		quotes   []Quote
		ads      []Advertisement
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		articles, err = a.Client.Articles(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		quotes, err = a.Client.Quotes(ctx)
		if err != nil {
			a.Logger.Warn("quotes unavailable", slog.Any("error", err))
			quotes = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ads, err = a.Client.AdvertisementsByPage(ctx, "home")
		if err != nil {
			a.Logger.Warn("advertisements unavailable", slog.Any("error", err))
			ads = nil
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Logger.Error("home page fetch failed", slog.Any("error", err))
		a.renderError(w, http.StatusBadGateway, "Failed to load articles.")
		return
	}

	a.render(w, "home", BuildHome(articles, quotes, ads))
}

// Category renders a category landing page based on the request path.
func (a *App) Category(w http.ResponseWriter, r *http.Request) {
	page, ok := a.pages[r.URL.Path[1:]]
	if !ok {
		http.NotFound(w, r)
		return
	}

	var (
		articles []Article
		ads      []Advertisement
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		articles, err = a.Client.ArticlesByCategory(ctx, page.Category)
		return err
	})
	g.Go(func() error {
		var err error
		ads, err = a.Client.AdvertisementsByPage(ctx, page.Category)
		if err != nil {
			a.Logger.Warn("advertisements unavailable", slog.Any("error", err))
			ads = nil
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Logger.Error("category page fetch failed",
			slog.String("category", page.Category),
			slog.Any("error", err))
		a.renderError(w, http.StatusBadGateway, "Failed to load articles.")
		return
	}

	a.render(w, "category", BuildCategory(page.Title, page.Tagline, articles, ads))
}

// Article renders a single article with up to four related pieces.
func (a *App) Article(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	article, err := a.Client.ArticleBySlug(r.Context(), slug)
	if err != nil {
		if IsNotFound(err) {
			a.renderError(w, http.StatusNotFound, "Article not found.")
			return
		}
		a.Logger.Error("article fetch failed", slog.String("slug", slug), slog.Any("error", err))
		a.renderError(w, http.StatusBadGateway, "Failed to load article. Please try again.")
		return
	}

	related, err := a.Client.ArticlesByCategory(r.Context(), article.Category)
	if err != nil {
		a.Logger.Warn("related articles unavailable", slog.Any("error", err))
		related = nil
	}

	a.render(w, "article", map[string]any{
		"Article": article,
		"Related": RelatedArticles(related, article),
	})
}

// Board renders the editorial board page.
func (a *App) Board(w http.ResponseWriter, r *http.Request) {
	members, err := a.Client.EditorialBoards(r.Context())
	if err != nil {
		a.Logger.Error("editorial board fetch failed", slog.Any("error", err))
		a.renderError(w, http.StatusBadGateway, "Failed to load editorial board.")
		return
	}
	a.render(w, "board", map[string]any{"Members": BuildBoard(members)})
}

// About renders the about page with the executive team.
func (a *App) About(w http.ResponseWriter, r *http.Request) {
	executives, err := a.Client.Executives(r.Context())
	if err != nil {
		a.Logger.Warn("executives unavailable", slog.Any("error", err))
		executives = nil
	}
	a.render(w, "about", map[string]any{"Executives": executives})
}

// Admin renders the admin dashboard shell. The dashboard itself talks
// to the content API directly from the browser, keeping the bearer
// token and the article draft in localStorage.
func (a *App) Admin(w http.ResponseWriter, r *http.Request) {
	a.render(w, "admin", map[string]any{"APIBaseURL": a.Client.BaseURL})
}
