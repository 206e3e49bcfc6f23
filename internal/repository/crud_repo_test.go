package repository

import (
	"context"
	"testing"

	"contracting-cms/internal/model"
	"contracting-cms/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, table, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Where(where, args...).Count(&n).Error)
	return n
}

func TestCrudRepository_CreateFindUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewCrudRepository[model.Faq](db)

	faq := &model.Faq{QuestionEn: "Do you import steel?", QuestionAr: "هل تستوردون الحديد؟", AnswerEn: "Yes", AnswerAr: "نعم"}
	require.NoError(t, repo.Create(ctx, faq))
	require.NotEmpty(t, faq.ID)

	got, err := repo.FindByID(ctx, faq.ID)
	require.NoError(t, err)
	assert.Equal(t, faq.QuestionEn, got.QuestionEn)
	assert.Equal(t, faq.AnswerAr, got.AnswerAr)

	err = repo.Update(ctx, faq.ID, &model.Faq{QuestionEn: "Do you import cement?", QuestionAr: "هل تستوردون الأسمنت؟", AnswerEn: "No", AnswerAr: "لا"})
	require.NoError(t, err)

	got, err = repo.FindByID(ctx, faq.ID)
	require.NoError(t, err)
	assert.Equal(t, "Do you import cement?", got.QuestionEn)
	assert.Equal(t, "لا", got.AnswerAr)
	assert.False(t, got.CreatedAt.IsZero(), "created_at must survive a full update")

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Update(ctx, "missing", &model.Faq{QuestionEn: "q", QuestionAr: "q", AnswerEn: "a", AnswerAr: "a"}), gorm.ErrRecordNotFound)
}

func TestCrudRepository_UpdateClearsOmittedFields(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewCrudRepository[model.ProjectType](db)

	pt := &model.ProjectType{TitleEn: "Commercial", TitleAr: "تجاري", DescriptionEn: "Towers", DescriptionAr: "أبراج"}
	require.NoError(t, repo.Create(ctx, pt))

	require.NoError(t, repo.Update(ctx, pt.ID, &model.ProjectType{TitleEn: "Commercial", TitleAr: "تجاري"}))

	got, err := repo.FindByID(ctx, pt.ID)
	require.NoError(t, err)
	assert.Empty(t, got.DescriptionEn)
	assert.Empty(t, got.DescriptionAr)
}

func TestCrudRepository_ListOrder(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewCrudRepository[model.Work](db)

	for _, title := range []string{"Plumbing", "Electrical", "Finishing"} {
		require.NoError(t, repo.Create(ctx, &model.Work{Titled: model.Titled{TitleEn: title, TitleAr: title}}))
	}

	rows, err := repo.List(ctx, "title_en asc")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Electrical", rows[0].TitleEn)
	assert.Equal(t, "Plumbing", rows[2].TitleEn)
}

func TestCrudRepository_DeleteClearsReferences(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	images := NewCrudRepository[model.Image](db)
	img := &model.Image{URL: "https://cdn.example.com/a.jpg"}
	require.NoError(t, images.Create(ctx, img))

	partners := NewCrudRepository[model.Partner](db)
	partner := &model.Partner{NameEn: "Acme", NameAr: "أكمي", LogoImageID: &img.ID}
	require.NoError(t, partners.Create(ctx, partner))

	shipments := NewCrudRepository[model.Shipment](db)
	shipment := &model.Shipment{TitleEn: "Steel batch", TitleAr: "دفعة حديد"}
	require.NoError(t, shipments.Create(ctx, shipment))
	require.NoError(t, ReplaceRelated[model.Image](ctx, db, shipment, "Images", []string{img.ID}))
	require.EqualValues(t, 1, countRows(t, db, "shipment_images", "image_id = ?", img.ID))

	require.NoError(t, images.Delete(ctx, img.ID))

	assert.EqualValues(t, 0, countRows(t, db, "shipment_images", "image_id = ?", img.ID))
	gotPartner, err := partners.FindByID(ctx, partner.ID)
	require.NoError(t, err, "referencing rows are never deleted")
	assert.Nil(t, gotPartner.LogoImageID)
	_, err = shipments.FindByID(ctx, shipment.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, images.Delete(ctx, img.ID), gorm.ErrRecordNotFound)
}

func TestReplaceRelated(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	countries := NewCrudRepository[model.Country](db)
	sa := &model.Country{NameEn: "Saudi Arabia", NameAr: "السعودية"}
	cn := &model.Country{NameEn: "China", NameAr: "الصين"}
	tr := &model.Country{NameEn: "Turkey", NameAr: "تركيا"}
	for _, c := range []*model.Country{sa, cn, tr} {
		require.NoError(t, countries.Create(ctx, c))
	}

	services := NewCrudRepository[model.ImportService](db)
	svc := &model.ImportService{TitleEn: "Steel import", TitleAr: "استيراد الحديد", SlugEn: "steel-import", SlugAr: "استيراد-الحديد"}
	require.NoError(t, services.Create(ctx, svc))

	require.NoError(t, ReplaceRelated[model.Country](ctx, db, svc, "Countries", []string{sa.ID, cn.ID, cn.ID}))
	assert.EqualValues(t, 2, countRows(t, db, "import_service_countries", "import_service_id = ?", svc.ID))

	require.NoError(t, ReplaceRelated[model.Country](ctx, db, svc, "Countries", []string{tr.ID}))
	got, err := services.FindByID(ctx, svc.ID, "Countries")
	require.NoError(t, err)
	require.Len(t, got.Countries, 1)
	assert.Equal(t, tr.ID, got.Countries[0].ID)

	err = ReplaceRelated[model.Country](ctx, db, svc, "Countries", []string{tr.ID, "nope"})
	assert.ErrorIs(t, err, ErrUnknownReference)

	require.NoError(t, ReplaceRelated[model.Country](ctx, db, svc, "Countries", nil))
	assert.EqualValues(t, 0, countRows(t, db, "import_service_countries", "import_service_id = ?", svc.ID))

	require.NoError(t, ReplaceRelated[model.Country](ctx, db, svc, "Countries", []string{sa.ID}))
	require.NoError(t, services.Delete(ctx, svc.ID))
	assert.EqualValues(t, 0, countRows(t, db, "import_service_countries", "1 = 1"))
	_, err = countries.FindByID(ctx, sa.ID)
	assert.NoError(t, err, "deleting the owner keeps the related rows")
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	repo := NewCrudRepository[model.Faq](db)

	var id string
	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		faq := &model.Faq{QuestionEn: "q", QuestionAr: "q", AnswerEn: "a", AnswerAr: "a"}
		if err := repo.Create(txCtx, faq); err != nil {
			return err
		}
		id = faq.ID
		return gorm.ErrInvalidData
	})
	require.ErrorIs(t, err, gorm.ErrInvalidData)

	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
