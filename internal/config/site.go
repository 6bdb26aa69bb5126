// Package config loads the site configuration for the page server: the
// masthead name and the category pages it serves. Deployments override the
// defaults with a YAML file so section titles and taglines can change
// without a rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CategoryPage describes one category section of the site.
type CategoryPage struct {
	// Slug is the URL path segment the page is served under.
	Slug string `yaml:"slug"`

	// Category is the article category requested from the content API.
	Category string `yaml:"category"`

	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
}

// Site holds the page server's configuration.
type Site struct {
	Name       string         `yaml:"name"`
	Motto      string         `yaml:"motto"`
	Categories []CategoryPage `yaml:"categories"`
}

// DefaultSite returns the built-in configuration matching the category set
// the content API accepts.
func DefaultSite() *Site {
	return &Site{
		Name:  "LAWGAN NEWS",
		Motto: "...for law and justice",
		Categories: []CategoryPage{
			{Slug: "law", Category: "law", Title: "Law", Tagline: "Latest legal news, reforms, and analysis"},
			{Slug: "politics", Category: "politics", Title: "Politics", Tagline: "Political developments and commentary"},
			{Slug: "foreign-affairs", Category: "foreign-affairs", Title: "Foreign Affairs", Tagline: "International news and diplomacy"},
			{Slug: "reviews", Category: "reviews", Title: "Reviews", Tagline: "Books, judgments, and commentary reviewed"},
		},
	}
}

// LoadSite reads the YAML site configuration at path. An empty path yields
// the defaults. Fields left out of the file keep their default values.
func LoadSite(path string) (*Site, error) {
	site := DefaultSite()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config: %w", err)
	}
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("parse site config %s: %w", path, err)
	}
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("site config %s: %w", path, err)
	}
	return site, nil
}

// Validate checks the configuration for the mistakes a hand-edited file
// tends to contain.
func (s *Site) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len(s.Categories) == 0 {
		return fmt.Errorf("at least one category page is required")
	}

	seen := make(map[string]struct{}, len(s.Categories))
	for i, c := range s.Categories {
		if c.Slug == "" {
			return fmt.Errorf("categories[%d]: slug must not be empty", i)
		}
		if c.Category == "" {
			return fmt.Errorf("categories[%d] (%s): category must not be empty", i, c.Slug)
		}
		if _, dup := seen[c.Slug]; dup {
			return fmt.Errorf("duplicate category slug %q", c.Slug)
		}
		seen[c.Slug] = struct{}{}
	}
	return nil
}
