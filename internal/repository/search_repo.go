package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// TitleQuery describes one table to match against a search term.
type TitleQuery struct {
	Table       string
	TitleColumn string // "title" or "name", suffixed with _en/_ar
	Slugged     bool
	Term        string
	Limit       int
}

type SearchHit struct {
	ID      string
	TitleEn string
	TitleAr string
	SlugEn  string
	SlugAr  string
}

type SearchRepository interface {
	MatchTitles(ctx context.Context, q TitleQuery) ([]SearchHit, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

// MatchTitles does a case-insensitive substring match on both localized
// titles, newest rows first.
func (r *searchRepository) MatchTitles(ctx context.Context, q TitleQuery) ([]SearchHit, error) {
	en := q.TitleColumn + "_en"
	ar := q.TitleColumn + "_ar"
	cols := "id, " + en + " AS title_en, " + ar + " AS title_ar"
	if q.Slugged {
		cols += ", slug_en, slug_ar"
	}
	pattern := "%" + escapeLike(strings.ToLower(q.Term)) + "%"

	var hits []SearchHit
	err := GetDB(ctx, r.db).Table(q.Table).
		Select(cols).
		Where("LOWER("+en+") LIKE ? ESCAPE '\\' OR LOWER("+ar+") LIKE ? ESCAPE '\\'", pattern, pattern).
		Order("created_at desc").
		Limit(q.Limit).
		Scan(&hits).Error
	if err != nil {
		return nil, err
	}
	return hits, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
