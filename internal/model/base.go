package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the text primary key and timestamps shared by every table.
// Seeded rows use stable ids; everything else gets a generated one.
type Base struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (b *Base) GetID() string   { return b.ID }
func (b *Base) SetID(id string) { b.ID = id }

// Entity is satisfied by a pointer to any model embedding Base.
type Entity interface {
	GetID() string
	SetID(id string)
}

// EntityPtr constrains a type parameter to *T for a model T.
type EntityPtr[T any] interface {
	*T
	Entity
}

// Reference points at a column in another table holding this entity's id.
// Junction rows are deleted with the entity; nullable foreign keys are cleared.
type Reference struct {
	Table   string
	Column  string
	Nullify bool
}

// Referenced is implemented by models that other tables point at.
type Referenced interface {
	References() []Reference
}

// Sluggable models derive blank slugs from their titles before saving.
// FillSlugs fails with ErrEmptySlug when either slug would stay empty.
type Sluggable interface {
	FillSlugs() error
}

func junction(table, column string) Reference {
	return Reference{Table: table, Column: column}
}

func nullable(table, column string) Reference {
	return Reference{Table: table, Column: column, Nullify: true}
}
