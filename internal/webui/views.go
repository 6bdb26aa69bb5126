package webui

import (
	"strings"
	"unicode/utf8"
)

// fallbackQuotes is shown on the home page when no quotes are published.
var fallbackQuotes = []Quote{
	{Title: "Justice delayed is justice denied", Author: "William Ewart Gladstone"},
	{Title: "The law is reason, free from passion", Author: "Aristotle"},
	{Title: "Injustice anywhere is a threat to justice everywhere", Author: "Martin Luther King Jr."},
}

// HomeView holds the article buckets rendered on the home page.
type HomeView struct {
	Main     *Article
	Breaking []Article
	Law      []Article
	Politics []Article
	Foreign  []Article
	Reviews  []Article
	Quotes   []Quote
	Ads      []Advertisement
}

// BuildHome buckets the full article list for the home page layout:
// the six most recent breaking articles (the first of which leads the
// page) and the three most recent per category. Empty quote lists fall
// back to a fixed set so the ticker never renders blank.
func BuildHome(articles []Article, quotes []Quote, ads []Advertisement) HomeView {
	view := HomeView{Ads: ads}

	for _, a := range articles {
		if a.IsBreaking && len(view.Breaking) < 6 {
			view.Breaking = append(view.Breaking, a)
		}
		switch a.Category {
		case "law":
			if len(view.Law) < 3 {
				view.Law = append(view.Law, a)
			}
		case "politics":
			if len(view.Politics) < 3 {
				view.Politics = append(view.Politics, a)
			}
		case "foreign affairs":
			if len(view.Foreign) < 3 {
				view.Foreign = append(view.Foreign, a)
			}
		case "reviews":
			if len(view.Reviews) < 3 {
				view.Reviews = append(view.Reviews, a)
			}
		}
	}

	if len(view.Breaking) > 0 {
		view.Main = &view.Breaking[0]
	}

	view.Quotes = quotes
	if len(view.Quotes) == 0 {
		view.Quotes = fallbackQuotes
	}
	return view
}

// CategoryView holds the article buckets rendered on a category page.
type CategoryView struct {
	Title    string
	Tagline  string
	Main     *Article
	Side     []Article
	Featured []Article
	Grid     []Article
	Ads      []Advertisement
}

// BuildCategory buckets a category's article list into the page layout:
// the lead article, four side updates, three featured stories, and a
// three-wide grid of older pieces.
func BuildCategory(title, tagline string, articles []Article, ads []Advertisement) CategoryView {
	view := CategoryView{Title: title, Tagline: tagline, Ads: ads}

	if len(articles) > 0 {
		view.Main = &articles[0]
	}
	view.Side = slice(articles, 1, 5)
	view.Featured = slice(articles, 5, 8)
	view.Grid = slice(articles, 8, 11)
	return view
}

func slice(articles []Article, lo, hi int) []Article {
	if lo >= len(articles) {
		return nil
	}
	if hi > len(articles) {
		hi = len(articles)
	}
	return articles[lo:hi]
}

// BoardMemberView is a board member with the position split off the
// first line of the about text, the way the board page renders it.
type BoardMemberView struct {
	ID       int64
	Name     string
	Position string
	Bio      string
	Image    string
}

// BuildBoard maps board members into their page view. The first line of
// the about text serves as the position; the rest becomes the bio.
func BuildBoard(members []BoardMember) []BoardMemberView {
	views := make([]BoardMemberView, 0, len(members))
	for _, m := range members {
		position := "Editorial Board Member"
		bio := "Member of the editorial board"

		lines := strings.Split(m.About, "\n")
		if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
			position = strings.TrimSpace(lines[0])
		}
		if rest := strings.TrimSpace(strings.Join(lines[1:], " ")); rest != "" {
			bio = rest
		}

		views = append(views, BoardMemberView{
			ID:       m.ID,
			Name:     m.Name,
			Position: position,
			Bio:      bio,
			Image:    m.Image,
		})
	}
	return views
}

// Excerpt returns the article summary, or a truncated slice of the
// content when no summary was written.
func (a Article) Excerpt(limit int) string {
	if a.Summary != "" {
		return a.Summary
	}
	return truncate(a.Content, limit)
}

// RelatedArticles returns up to four other articles from the same category.
func RelatedArticles(all []Article, current *Article) []Article {
	var related []Article
	for _, a := range all {
		if a.Category == current.Category && a.Slug != current.Slug {
			related = append(related, a)
			if len(related) == 4 {
				break
			}
		}
	}
	return related
}

// Paragraphs splits article content into trimmed non-empty paragraphs.
func Paragraphs(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
