package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"contracting-cms/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	MinSearchLength    = 2
	MaxSearchResults   = 15
	DefaultLocale      = "en"
	searchLocaleArabic = "ar"
)

type SearchResult struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Href  string `json:"href"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

type SearchService interface {
	Search(ctx context.Context, q, locale string) (SearchResponse, error)
}

// searchSource is one content type the site search covers. Sources are
// listed in display order.
type searchSource struct {
	kind        string
	table       string
	titleColumn string
	slugged     bool
	limit       int
	href        func(locale, slug string) string
}

var searchSources = []searchSource{
	{kind: "project", table: "projects", titleColumn: "title", slugged: true, limit: 5,
		href: func(l, s string) string { return "/" + l + "/projects/" + s }},
	{kind: "service", table: "main_services", titleColumn: "title", slugged: true, limit: 3,
		href: func(l, s string) string { return "/" + l + "/services/" + s }},
	{kind: "import service", table: "import_services", titleColumn: "title", slugged: true, limit: 5,
		href: func(l, s string) string { return "/" + l + "/services/import/" + s }},
	{kind: "contracting service", table: "contracting_services", titleColumn: "title", slugged: true, limit: 5,
		href: func(l, s string) string { return "/" + l + "/services/contracting/" + s }},
	{kind: "partner", table: "partners", titleColumn: "name", limit: 3,
		href: func(l, _ string) string { return "/" + l + "/partners" }},
	{kind: "article", table: "articles", titleColumn: "title", slugged: true, limit: 5,
		href: func(l, s string) string { return "/" + l + "/blog/" + s }},
	{kind: "product", table: "products", titleColumn: "title", slugged: true, limit: 5,
		href: func(l, s string) string { return "/" + l + "/products/" + s }},
}

type searchService struct {
	repo repository.SearchRepository
	log  *zap.Logger
}

func NewSearchService(repo repository.SearchRepository, log *zap.Logger) SearchService {
	if log == nil {
		log = zap.NewNop()
	}
	return &searchService{repo: repo, log: log}
}

// Search matches q against the localized titles of every public content
// type. Short queries answer an empty list rather than an error.
func (s *searchService) Search(ctx context.Context, q, locale string) (SearchResponse, error) {
	if utf8.RuneCountInString(q) < MinSearchLength {
		return SearchResponse{Results: []SearchResult{}}, nil
	}
	if locale != searchLocaleArabic {
		locale = DefaultLocale
	}

	groups := make([][]repository.SearchHit, len(searchSources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range searchSources {
		i, src := i, src
		g.Go(func() error {
			hits, err := s.repo.MatchTitles(gctx, repository.TitleQuery{
				Table:       src.table,
				TitleColumn: src.titleColumn,
				Slugged:     src.slugged,
				Term:        q,
				Limit:       src.limit,
			})
			if err != nil {
				return fmt.Errorf("search %s: %w", src.table, err)
			}
			groups[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("search failed", zap.String("q", q), zap.Error(err))
		return SearchResponse{}, err
	}

	results := make([]SearchResult, 0, MaxSearchResults)
	for i, hits := range allocate(groups, MaxSearchResults) {
		src := searchSources[i]
		for _, h := range hits {
			results = append(results, SearchResult{
				ID:    h.ID,
				Type:  src.kind,
				Title: localized(locale, h.TitleEn, h.TitleAr),
				Href:  src.href(locale, localized(locale, h.SlugEn, h.SlugAr)),
			})
		}
	}
	return SearchResponse{Results: results}, nil
}

// allocate trims the groups to at most max hits in total, taking one hit
// from each group per round so no single type crowds out the others.
func allocate(groups [][]repository.SearchHit, max int) [][]repository.SearchHit {
	taken := make([]int, len(groups))
	total := 0
	for round := 0; total < max; round++ {
		progressed := false
		for i, g := range groups {
			if total == max {
				break
			}
			if round < len(g) {
				taken[i]++
				total++
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	out := make([][]repository.SearchHit, len(groups))
	for i, g := range groups {
		out[i] = g[:taken[i]]
	}
	return out
}

func localized(locale, en, ar string) string {
	if locale == searchLocaleArabic && ar != "" {
		return ar
	}
	return en
}
