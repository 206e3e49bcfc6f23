package repository

import (
	"context"
	"errors"

	"contracting-cms/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUnknownReference is returned when a relation names an id that does not exist.
var ErrUnknownReference = errors.New("referenced record does not exist")

// CrudRepository is the data access every bilingual entity shares.
type CrudRepository[T any] interface {
	List(ctx context.Context, order string, preloads ...string) ([]T, error)
	FindByID(ctx context.Context, id string, preloads ...string) (*T, error)
	FindBy(ctx context.Context, column, value string, preloads ...string) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id string, entity *T) error
	Delete(ctx context.Context, id string) error
}

type crudRepository[T any, PT model.EntityPtr[T]] struct {
	db *gorm.DB
}

func NewCrudRepository[T any, PT model.EntityPtr[T]](db *gorm.DB) CrudRepository[T] {
	return &crudRepository[T, PT]{db: db}
}

func (r *crudRepository[T, PT]) List(ctx context.Context, order string, preloads ...string) ([]T, error) {
	var rows []T
	q := GetDB(ctx, r.db)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *crudRepository[T, PT]) FindByID(ctx context.Context, id string, preloads ...string) (*T, error) {
	return r.FindBy(ctx, "id", id, preloads...)
}

func (r *crudRepository[T, PT]) FindBy(ctx context.Context, column, value string, preloads ...string) (*T, error) {
	var row T
	q := GetDB(ctx, r.db)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts the row only. Relations are written by ReplaceRelated.
func (r *crudRepository[T, PT]) Create(ctx context.Context, entity *T) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Create(entity).Error
}

// Update overwrites every column of row id with the values in entity,
// zero values included. A missing row yields gorm.ErrRecordNotFound.
func (r *crudRepository[T, PT]) Update(ctx context.Context, id string, entity *T) error {
	PT(entity).SetID(id)
	res := GetDB(ctx, r.db).Model(entity).
		Select("*").
		Omit("ID", "CreatedAt", clause.Associations).
		Updates(entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete clears every junction row and nullable reference pointing at id,
// then removes the row. Call it inside a transaction.
func (r *crudRepository[T, PT]) Delete(ctx context.Context, id string) error {
	db := GetDB(ctx, r.db)
	var zero T
	if refd, ok := any(PT(&zero)).(model.Referenced); ok {
		for _, ref := range refd.References() {
			if err := clearReference(db, ref, id); err != nil {
				return err
			}
		}
	}

	res := db.Where("id = ?", id).Delete(PT(&zero))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func clearReference(db *gorm.DB, ref model.Reference, id string) error {
	table := clause.Table{Name: ref.Table}
	column := clause.Column{Name: ref.Column}
	if ref.Nullify {
		return db.Exec("UPDATE ? SET ? = NULL WHERE ? = ?", table, column, column, id).Error
	}
	return db.Exec("DELETE FROM ? WHERE ? = ?", table, column, id).Error
}

// ReplaceRelated swaps the full many-to-many set named association on owner
// for the rows with the given ids. Duplicate ids collapse to one junction row.
func ReplaceRelated[R any](ctx context.Context, db *gorm.DB, owner any, association string, ids []string) error {
	tx := GetDB(ctx, db)
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return tx.Model(owner).Association(association).Clear()
	}

	var related []R
	if err := tx.Where("id IN ?", ids).Find(&related).Error; err != nil {
		return err
	}
	if len(related) != len(ids) {
		return ErrUnknownReference
	}
	return tx.Model(owner).Association(association).Replace(related)
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
