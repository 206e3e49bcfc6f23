package service

import (
	"context"
	"testing"
	"time"

	"contracting-cms/internal/model"
	"contracting-cms/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func total(totals []model.ContentTotal, entity string) int64 {
	for _, t := range totals {
		if t.Entity == entity {
			return t.Total
		}
	}
	return -1
}

func TestStatisticsService_GetStatistics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := NewCatalog(f.deps)
	stats := NewStatisticsService(repository.NewStatisticsRepository(f.db))

	first := catalog.Projects.Create(ctx, &model.Project{TitleEn: "Harbor Tower", TitleAr: "برج الميناء"}, nil)
	require.True(t, first.Success, first.Message)
	second := catalog.Projects.Create(ctx, &model.Project{TitleEn: "Desert Villa", TitleAr: "فيلا الصحراء"}, nil)
	require.True(t, second.Success, second.Message)
	require.True(t, catalog.Projects.Delete(ctx, second.ID).Success)
	faq := catalog.Faqs.Create(ctx, &model.Faq{QuestionEn: "Do you import steel?", QuestionAr: "هل تستوردون الحديد؟", AnswerEn: "Yes", AnswerAr: "نعم"}, nil)
	require.True(t, faq.Success, faq.Message)

	now := time.Now()
	got, err := stats.GetStatistics(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(1), total(got.ContentTotals, "projects"))
	assert.Equal(t, int64(1), total(got.ContentTotals, "faqs"))
	assert.Equal(t, int64(0), total(got.ContentTotals, "articles"))
	assert.Equal(t, []model.ActivityCount{
		{Action: model.ActionCreate, Total: 3},
		{Action: model.ActionDelete, Total: 1},
	}, got.Activity)
	assert.Equal(t, []model.EntityActivity{
		{Entity: "projects", Total: 3},
		{Entity: "faqs", Total: 1},
	}, got.MostEdited)

	past := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	old, err := stats.GetStatistics(ctx, past, past.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Empty(t, old.Activity)
	assert.NotNil(t, old.MostEdited)

	_, err = stats.GetStatistics(ctx, now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
