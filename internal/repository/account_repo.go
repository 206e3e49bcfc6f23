package repository

import (
	"context"

	"contracting-cms/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRepository interface {
	ListWithRoles(ctx context.Context) ([]model.Account, error)
	FindByIDWithRoles(ctx context.Context, id string) (*model.Account, error)
	FindByAuthUserID(ctx context.Context, authUserID string) (*model.Account, error)
	Ensure(ctx context.Context, account *model.Account) (*model.Account, error)
	UpdateProfile(ctx context.Context, account *model.Account) error
	ReplaceRoles(ctx context.Context, account *model.Account, roleIDs []string) error
	Delete(ctx context.Context, id string) error
}

type accountRepository struct {
	db   *gorm.DB
	crud CrudRepository[model.Account]
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db, crud: NewCrudRepository[model.Account](db)}
}

func (r *accountRepository) ListWithRoles(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := GetDB(ctx, r.db).Preload("Roles").Order("created_at asc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) FindByIDWithRoles(ctx context.Context, id string) (*model.Account, error) {
	return r.crud.FindByID(ctx, id, "Roles")
}

func (r *accountRepository) FindByAuthUserID(ctx context.Context, authUserID string) (*model.Account, error) {
	return r.crud.FindBy(ctx, "auth_user_id", authUserID)
}

// Ensure inserts the account unless one already exists for its auth user and
// returns the stored row either way. Concurrent first logins race safely.
func (r *accountRepository) Ensure(ctx context.Context, account *model.Account) (*model.Account, error) {
	err := GetDB(ctx, r.db).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "auth_user_id"}}, DoNothing: true}).
		Create(account).Error
	if err != nil {
		return nil, err
	}
	return r.FindByAuthUserID(ctx, account.AuthUserID)
}

func (r *accountRepository) UpdateProfile(ctx context.Context, account *model.Account) error {
	res := GetDB(ctx, r.db).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"display_name_en": account.DisplayNameEn,
			"display_name_ar": account.DisplayNameAr,
			"avatar_url":      account.AvatarURL,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *accountRepository) ReplaceRoles(ctx context.Context, account *model.Account, roleIDs []string) error {
	return ReplaceRelated[model.Role](ctx, r.db, account, "Roles", roleIDs)
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	return r.crud.Delete(ctx, id)
}
