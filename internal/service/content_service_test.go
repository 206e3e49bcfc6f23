package service

import (
	"context"
	"testing"

	"contracting-cms/internal/model"
	"contracting-cms/internal/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_ProjectLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projects := NewCatalog(f.deps).Projects

	res := projects.Create(ctx, &model.Project{TitleEn: "Al Noor Tower", TitleAr: "برج النور"}, nil)
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Project created", res.Message)
	require.NotEmpty(t, res.ID)

	got, err := projects.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "al-noor-tower", got.SlugEn)
	assert.Equal(t, "برج-النور", got.SlugAr)

	bySlug, err := projects.GetBySlug(ctx, "ar", "برج-النور")
	require.NoError(t, err)
	assert.Equal(t, res.ID, bySlug.ID)

	upd := projects.Update(ctx, res.ID, &model.Project{TitleEn: "Al Noor Tower", TitleAr: "برج النور", LocationEn: "Riyadh"}, nil)
	require.True(t, upd.Success, upd.Message)

	got, err = projects.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Riyadh", got.LocationEn)

	del := projects.Delete(ctx, res.ID)
	require.True(t, del.Success, del.Message)
	assert.Equal(t, "Project deleted", del.Message)

	_, err = projects.Get(ctx, res.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, int64(3), f.count(t, "audit_logs", "entity = ? AND entity_id = ?", "projects", res.ID))
	assert.Equal(t, []websocket.Event{
		websocket.Changed("projects", "create", res.ID),
		websocket.Changed("projects", "update", res.ID),
		websocket.Changed("projects", "delete", res.ID),
	}, f.notifier.Events())
}

func TestContentService_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := NewCatalog(f.deps)

	t.Run("validation", func(t *testing.T) {
		res := c.Projects.Create(ctx, &model.Project{TitleAr: "برج"}, nil)
		assert.False(t, res.Success)
		assert.ErrorIs(t, res.Err(), ErrInvalidInput)
		assert.Equal(t, "Invalid Project: title_en is required", res.Message)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		require.True(t, c.Projects.Create(ctx, &model.Project{TitleEn: "Villa", TitleAr: "فيلا"}, nil).Success)
		res := c.Projects.Create(ctx, &model.Project{TitleEn: "Villa", TitleAr: "فيلا"}, nil)
		assert.False(t, res.Success)
		assert.ErrorIs(t, res.Err(), ErrConflict)
		assert.Equal(t, "Project with the same slug or key already exists", res.Message)
	})

	t.Run("title without letters or digits", func(t *testing.T) {
		for _, title := range []string{"!!!", "***"} {
			res := c.Projects.Create(ctx, &model.Project{TitleEn: title, TitleAr: "برج"}, nil)
			assert.False(t, res.Success)
			assert.ErrorIs(t, res.Err(), ErrInvalidInput)
			assert.ErrorIs(t, res.Err(), model.ErrEmptySlug)
			assert.Equal(t, "Invalid Project: title needs at least one letter or digit to form a slug", res.Message)
		}
		res := c.Projects.Create(ctx, &model.Project{TitleEn: "Dune Park", TitleAr: "؟؟؟"}, nil)
		assert.ErrorIs(t, res.Err(), model.ErrEmptySlug)
		assert.Equal(t, int64(0), f.count(t, "projects", "slug_en = ?", ""))
	})

	t.Run("missing row", func(t *testing.T) {
		res := c.Faqs.Update(ctx, "missing", &model.Faq{QuestionEn: "q", QuestionAr: "q", AnswerEn: "a", AnswerAr: "a"}, nil)
		assert.ErrorIs(t, res.Err(), ErrNotFound)
		assert.Equal(t, "FAQ not found", res.Message)

		res = c.Faqs.Delete(ctx, "missing")
		assert.ErrorIs(t, res.Err(), ErrNotFound)
	})

	t.Run("slug lookup on unslugged type", func(t *testing.T) {
		_, err := c.Faqs.GetBySlug(ctx, "en", "anything")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.Empty(t, f.notifier.Events()[1:], "only the first successful create publishes")
}

func TestContentService_ImportServiceRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := NewCatalog(f.deps)

	cn := &model.Country{NameEn: "China", NameAr: "الصين"}
	tr := &model.Country{NameEn: "Turkey", NameAr: "تركيا"}
	create(t, f.db, cn, tr)
	faq := &model.Faq{QuestionEn: "Lead time?", QuestionAr: "مدة التوريد؟", AnswerEn: "Six weeks", AnswerAr: "ستة أسابيع"}
	create(t, f.db, faq)

	in := &ImportServiceInput{
		ImportService: model.ImportService{TitleEn: "Steel Import", TitleAr: "استيراد الحديد"},
		CountryIDs:    []string{cn.ID, tr.ID, cn.ID},
		FaqIDs:        []string{faq.ID},
	}
	res := c.ImportServices.Create(ctx, in.Entity(), in.Relations())
	require.True(t, res.Success, res.Message)

	got, err := c.ImportServices.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Len(t, got.Countries, 2)
	assert.Len(t, got.Faqs, 1)
	require.NotNil(t, got.MainServiceID)
	assert.Equal(t, model.MainServiceImport, *got.MainServiceID)

	in = &ImportServiceInput{
		ImportService: model.ImportService{TitleEn: "Steel Import", TitleAr: "استيراد الحديد"},
		CountryIDs:    []string{tr.ID},
	}
	res = c.ImportServices.Update(ctx, res.ID, in.Entity(), in.Relations())
	require.True(t, res.Success, res.Message)

	got, err = c.ImportServices.Get(ctx, got.ID)
	require.NoError(t, err)
	require.Len(t, got.Countries, 1)
	assert.Equal(t, tr.ID, got.Countries[0].ID)
	assert.Empty(t, got.Faqs, "an omitted relation set is cleared")

	t.Run("unknown id rolls back", func(t *testing.T) {
		in := &ImportServiceInput{
			ImportService: model.ImportService{TitleEn: "Cement Import", TitleAr: "استيراد الأسمنت"},
			CountryIDs:    []string{"nope"},
		}
		res := c.ImportServices.Create(ctx, in.Entity(), in.Relations())
		assert.False(t, res.Success)
		assert.ErrorIs(t, res.Err(), ErrInvalidInput)
		assert.Equal(t, int64(0), f.count(t, "import_services", "slug_en = ?", "cement-import"))
	})

	t.Run("deleting a country unlinks it", func(t *testing.T) {
		require.True(t, c.Countries.Delete(ctx, tr.ID).Success)
		assert.Equal(t, int64(0), f.count(t, "import_service_countries", ""))
		assert.Equal(t, int64(1), f.count(t, "import_services", ""))
	})
}

func TestContentService_ContractingDefaultsMainService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := NewCatalog(f.deps)

	w := &model.Work{Titled: model.Titled{TitleEn: "Excavation", TitleAr: "الحفر"}}
	create(t, f.db, w)

	in := &ContractingServiceInput{
		ContractingService: model.ContractingService{TitleEn: "Foundations", TitleAr: "الأساسات"},
		IncludedWorkIDs:    []string{w.ID},
		ExcludedWorkIDs:    []string{w.ID},
	}
	res := c.ContractingServices.Create(ctx, in.Entity(), in.Relations())
	require.True(t, res.Success, res.Message)

	got, err := c.ContractingServices.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MainServiceContracting, *got.MainServiceID)
	assert.Len(t, got.IncludedWorks, 1)
	assert.Len(t, got.ExcludedWorks, 1)
}

func TestContentService_ArticleBody(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	articles := NewCatalog(f.deps).Articles

	a := &model.Article{
		TitleEn:     "Building in summer",
		TitleAr:     "البناء في الصيف",
		RichContent: &model.RichContent{ContentEn: "<p>Heat</p>", ContentAr: "<p>الحر</p>"},
	}
	res := articles.Create(ctx, a, nil)
	require.True(t, res.Success, res.Message)
	require.NotNil(t, a.RichContentID)
	bodyID := *a.RichContentID

	upd := &model.Article{
		TitleEn:       "Building in summer",
		TitleAr:       "البناء في الصيف",
		RichContentID: &bodyID,
		RichContent:   &model.RichContent{ContentEn: "<p>Shade</p>", ContentAr: "<p>الظل</p>"},
	}
	require.True(t, articles.Update(ctx, res.ID, upd, nil).Success)
	assert.Equal(t, int64(1), f.count(t, "rich_contents", ""))

	got, err := articles.Get(ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RichContent)
	assert.Equal(t, "<p>Shade</p>", got.RichContent.ContentEn)

	require.True(t, articles.Delete(ctx, res.ID).Success)
	assert.Equal(t, int64(0), f.count(t, "rich_contents", ""))
}

func TestContentService_ProductDetails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	products := NewCatalog(f.deps).Products

	img := &model.Image{URL: "https://cdn.example.com/rebar.jpg"}
	create(t, f.db, img)

	in := &ProductInput{
		Product: model.Product{
			TitleEn: "Rebar 12mm",
			TitleAr: "حديد تسليح ١٢ مم",
			Details: []model.ProductDetail{{ValueEn: "12 m", ValueAr: "١٢ م"}, {ValueEn: "B500", ValueAr: "B500"}},
		},
		ImageIDs: []string{img.ID},
	}
	res := products.Create(ctx, in.Entity(), in.Relations())
	require.True(t, res.Success, res.Message)

	got, err := products.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Len(t, got.Details, 2)
	assert.Len(t, got.Images, 1)

	in.Details = []model.ProductDetail{{ValueEn: "6 m", ValueAr: "٦ م"}}
	require.True(t, products.Update(ctx, res.ID, in.Entity(), in.Relations()).Success)
	assert.Equal(t, int64(1), f.count(t, "product_details", "product_id = ?", res.ID))

	require.True(t, products.Delete(ctx, res.ID).Success)
	assert.Equal(t, int64(0), f.count(t, "product_details", ""))
	assert.Equal(t, int64(0), f.count(t, "product_images", ""))
	assert.Equal(t, int64(1), f.count(t, "images", ""), "shared images outlive the product")
}
