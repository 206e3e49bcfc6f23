package service

import (
	"context"

	"contracting-cms/internal/repository"

	"gorm.io/gorm"
)

// Relations maps an association name to the complete set of related ids.
// A missing name means the set is empty.
type Relations map[string][]string

// Relation is one many-to-many association a ContentService keeps in sync.
type Relation struct {
	Name    string
	replace func(ctx context.Context, owner any, ids []string) error
}

// Related declares the association name on the owner whose rows are R.
func Related[R any](db *gorm.DB, name string) Relation {
	return Relation{
		Name: name,
		replace: func(ctx context.Context, owner any, ids []string) error {
			return repository.ReplaceRelated[R](ctx, db, owner, name, ids)
		},
	}
}

// Payload is a request body carrying an entity plus its related ids.
type Payload[T any] interface {
	Entity() *T
	Relations() Relations
}
