// Package seed loads the starting data of a fresh site: the permission
// catalog, the four starting roles, sample projects and the "about us" blocks.
// Every row has a stable id, so running it again inserts nothing.
package seed

import (
	"context"
	"fmt"

	"contracting-cms/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// rolePermission is a row of the roles/permissions junction table.
type rolePermission struct {
	RoleID       string `gorm:"primaryKey"`
	PermissionID string `gorm:"primaryKey"`
}

func (rolePermission) TableName() string { return "role_permissions" }

type Seeder struct {
	db  *gorm.DB
	tx  repository.TransactionManager
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Seeder {
	return &Seeder{db: db, tx: repository.NewTransactionManager(db), log: log}
}

type step struct {
	name string
	run  func(ctx context.Context) (int64, error)
}

// Run seeds every group in its own transaction and stops at the first failure.
func (s *Seeder) Run(ctx context.Context) error {
	steps := []step{
		{"access control", s.access},
		{"projects", s.projects},
		{"main services", func(ctx context.Context) (int64, error) { return insert(ctx, s.db, MainServices()) }},
		{"website info", s.website},
	}
	for _, st := range steps {
		var inserted int64
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			n, err := st.run(txCtx)
			inserted = n
			return err
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", st.name, err)
		}
		s.log.Info("seeded", zap.String("group", st.name), zap.Int64("inserted", inserted))
	}
	return nil
}

func (s *Seeder) access(ctx context.Context) (int64, error) {
	perms := Permissions()
	total, err := insert(ctx, s.db, perms)
	if err != nil {
		return total, err
	}
	n, err := insert(ctx, s.db, Roles())
	total += n
	if err != nil {
		return total, err
	}

	var grants []rolePermission
	for roleID, permIDs := range Grants(perms) {
		for _, id := range permIDs {
			grants = append(grants, rolePermission{RoleID: roleID, PermissionID: id})
		}
	}
	n, err = insert(ctx, s.db, grants)
	return total + n, err
}

func (s *Seeder) projects(ctx context.Context) (int64, error) {
	var total int64
	for _, rows := range []func() (int64, error){
		func() (int64, error) { return insert(ctx, s.db, ProjectStatuses()) },
		func() (int64, error) { return insert(ctx, s.db, ProjectTypes()) },
		func() (int64, error) { return insert(ctx, s.db, Projects()) },
	} {
		n, err := rows()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (s *Seeder) website(ctx context.Context) (int64, error) {
	w := WebsiteSections()
	inserts := []func() (int64, error){
		func() (int64, error) { return insert(ctx, s.db, ContactInfo()) },
		func() (int64, error) { return insert(ctx, s.db, SocialMedia()) },
		func() (int64, error) { return insert(ctx, s.db, w.Goals) },
		func() (int64, error) { return insert(ctx, s.db, w.Principles) },
		func() (int64, error) { return insert(ctx, s.db, w.Policies) },
		func() (int64, error) { return insert(ctx, s.db, w.Visions) },
		func() (int64, error) { return insert(ctx, s.db, w.Missions) },
		func() (int64, error) { return insert(ctx, s.db, w.Values) },
		func() (int64, error) { return insert(ctx, s.db, w.Strengths) },
		func() (int64, error) { return insert(ctx, s.db, w.Experiences) },
		func() (int64, error) { return insert(ctx, s.db, w.Commitments) },
	}
	var total int64
	for _, fn := range inserts {
		n, err := fn()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// insert adds the rows whose ids are not taken yet and reports how many were new.
func insert[T any](ctx context.Context, db *gorm.DB, rows []T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := repository.GetDB(ctx, db).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	return res.RowsAffected, res.Error
}
