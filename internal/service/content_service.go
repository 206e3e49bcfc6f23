package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contracting-cms/internal/model"
	"contracting-cms/internal/repository"
	"contracting-cms/internal/websocket"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier receives a change event after each committed mutation.
type Notifier interface {
	Publish(ctx context.Context, ev websocket.Event)
}

// Deps are the collaborators every content service shares.
type Deps struct {
	DB       *gorm.DB
	Tx       repository.TransactionManager
	Audit    AuditRecorder
	Notifier Notifier
	Log      *zap.Logger
}

// ContentOptions configure a ContentService for one entity type.
type ContentOptions[T any] struct {
	Entity       string // audit and event name, e.g. "faqs"
	Label        string // used in result messages, e.g. "FAQ"
	Order        string
	Preloads     []string // applied to Get and GetBySlug
	ListPreloads []string
	Relations    []Relation

	// Hooks run inside the write transaction.
	BeforeWrite  func(ctx context.Context, entity *T) error
	AfterWrite   func(ctx context.Context, entity *T) error
	BeforeDelete func(ctx context.Context, id string) error
}

// ContentService is the action layer for one bilingual entity type. Queries
// return rows; mutations return an ActionResult.
type ContentService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	GetBySlug(ctx context.Context, locale, slug string) (*T, error)
	Create(ctx context.Context, entity *T, rel Relations) ActionResult
	Update(ctx context.Context, id string, entity *T, rel Relations) ActionResult
	Delete(ctx context.Context, id string) ActionResult
}

type contentService[T any, PT model.EntityPtr[T]] struct {
	repo     repository.CrudRepository[T]
	tx       repository.TransactionManager
	audit    AuditRecorder
	notifier Notifier
	log      *zap.Logger
	opts     ContentOptions[T]
}

func NewContentService[T any, PT model.EntityPtr[T]](deps Deps, opts ContentOptions[T]) ContentService[T] {
	if opts.Order == "" {
		opts.Order = "created_at asc"
	}
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &contentService[T, PT]{
		repo:     repository.NewCrudRepository[T, PT](deps.DB),
		tx:       deps.Tx,
		audit:    deps.Audit,
		notifier: deps.Notifier,
		log:      log.With(zap.String("entity", opts.Entity)),
		opts:     opts,
	}
}

func (s *contentService[T, PT]) List(ctx context.Context) ([]T, error) {
	rows, err := s.repo.List(ctx, s.opts.Order, s.opts.ListPreloads...)
	if err != nil {
		s.log.Error("failed to list", zap.Error(err))
		return nil, translate(err)
	}
	return rows, nil
}

func (s *contentService[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	row, err := s.repo.FindByID(ctx, id, s.opts.Preloads...)
	return row, s.queryError(err, id)
}

// GetBySlug looks a row up by its public slug in the given locale.
func (s *contentService[T, PT]) GetBySlug(ctx context.Context, locale, slug string) (*T, error) {
	var zero T
	if _, ok := any(PT(&zero)).(model.Sluggable); !ok {
		return nil, ErrNotFound
	}
	column := "slug_en"
	if locale == "ar" {
		column = "slug_ar"
	}
	row, err := s.repo.FindBy(ctx, column, slug, s.opts.Preloads...)
	return row, s.queryError(err, slug)
}

func (s *contentService[T, PT]) queryError(err error, key string) error {
	if err == nil {
		return nil
	}
	err = translate(err)
	if isStoreFailure(err) {
		s.log.Error("failed to fetch", zap.String("key", key), zap.Error(err))
	}
	return err
}

func (s *contentService[T, PT]) Create(ctx context.Context, entity *T, rel Relations) ActionResult {
	if entity != nil {
		PT(entity).SetID("")
	}
	if err := s.prepare(entity); err != nil {
		return s.failure("create", "", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.write(txCtx, entity, rel, func() error { return s.repo.Create(txCtx, entity) }); err != nil {
			return err
		}
		return s.record(txCtx, model.ActionCreate, PT(entity).GetID(), entity)
	})
	id := PT(entity).GetID()
	if err != nil {
		return s.failure("create", id, err)
	}
	s.publish(ctx, "create", id)
	return succeeded(s.opts.Label+" created", id)
}

// Update replaces every field and every relation set of row id.
func (s *contentService[T, PT]) Update(ctx context.Context, id string, entity *T, rel Relations) ActionResult {
	if err := s.prepare(entity); err != nil {
		return s.failure("update", id, err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.write(txCtx, entity, rel, func() error { return s.repo.Update(txCtx, id, entity) }); err != nil {
			return err
		}
		return s.record(txCtx, model.ActionUpdate, id, entity)
	})
	if err != nil {
		return s.failure("update", id, err)
	}
	s.publish(ctx, "update", id)
	return succeeded(s.opts.Label+" updated", "")
}

// Delete removes the row and every junction row that points at it.
func (s *contentService[T, PT]) Delete(ctx context.Context, id string) ActionResult {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if s.opts.BeforeDelete != nil {
			if err := s.opts.BeforeDelete(txCtx, id); err != nil {
				return err
			}
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return err
		}
		return s.record(txCtx, model.ActionDelete, id, nil)
	})
	if err != nil {
		return s.failure("delete", id, err)
	}
	s.publish(ctx, "delete", id)
	return succeeded(s.opts.Label+" deleted", "")
}

func (s *contentService[T, PT]) prepare(entity *T) error {
	if entity == nil {
		return ErrInvalidInput
	}
	if err := validateEntity(entity); err != nil {
		return err
	}
	if sl, ok := any(entity).(model.Sluggable); ok {
		if err := sl.FillSlugs(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}
	return nil
}

// write runs the row write and the relation replacement as one unit.
func (s *contentService[T, PT]) write(ctx context.Context, entity *T, rel Relations, row func() error) error {
	if s.opts.BeforeWrite != nil {
		if err := s.opts.BeforeWrite(ctx, entity); err != nil {
			return err
		}
	}
	if err := row(); err != nil {
		return err
	}
	for _, r := range s.opts.Relations {
		if err := r.replace(ctx, entity, rel[r.Name]); err != nil {
			return err
		}
	}
	if s.opts.AfterWrite != nil {
		return s.opts.AfterWrite(ctx, entity)
	}
	return nil
}

func (s *contentService[T, PT]) record(ctx context.Context, action, id string, details any) error {
	if s.audit == nil {
		return nil
	}
	return s.audit.Record(ctx, action, s.opts.Entity, id, details)
}

func (s *contentService[T, PT]) publish(ctx context.Context, action, id string) {
	if s.notifier != nil {
		s.notifier.Publish(ctx, websocket.Changed(s.opts.Entity, action, id))
	}
}

func (s *contentService[T, PT]) failure(verb, id string, err error) ActionResult {
	return failure(s.log, s.opts.Label, verb, id, err)
}

// failure turns an error into a failed result with a message the dashboard
// can show. Store failures are logged; caller mistakes are not.
func failure(log *zap.Logger, label, verb, id string, err error) ActionResult {
	err = translate(err)
	switch {
	case errors.Is(err, ErrNotFound):
		return failed(label+" not found", err)
	case errors.Is(err, ErrInvalidInput):
		detail := strings.TrimPrefix(err.Error(), ErrInvalidInput.Error())
		detail = strings.TrimPrefix(detail, ": ")
		if detail == "" {
			return failed("Invalid "+label, err)
		}
		return failed("Invalid "+label+": "+detail, err)
	case errors.Is(err, ErrConflict):
		return failed(label+" with the same slug or key already exists", err)
	}
	log.Error("failed to "+verb, zap.String("id", id), zap.Error(err))
	return failed("Failed to "+verb+" "+label, err)
}
