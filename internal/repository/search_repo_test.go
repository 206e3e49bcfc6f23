package repository

import (
	"context"
	"testing"

	"contracting-cms/internal/model"
	"contracting-cms/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRepository_MatchTitles(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewSearchRepository(db)

	require.NoError(t, db.Create(&model.Partner{NameEn: "Riyadh Steel Co", NameAr: "شركة حديد الرياض"}).Error)
	require.NoError(t, db.Create(&model.Partner{NameEn: "100% Cement", NameAr: "أسمنت"}).Error)
	require.NoError(t, db.Create(&model.Partner{NameEn: "Gulf Glass", NameAr: "زجاج الخليج"}).Error)

	hits, err := repo.MatchTitles(ctx, TitleQuery{Table: "partners", TitleColumn: "name", Term: "STEEL", Limit: 5})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Riyadh Steel Co", hits[0].TitleEn)

	hits, err = repo.MatchTitles(ctx, TitleQuery{Table: "partners", TitleColumn: "name", Term: "الخليج", Limit: 5})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Gulf Glass", hits[0].TitleEn)

	hits, err = repo.MatchTitles(ctx, TitleQuery{Table: "partners", TitleColumn: "name", Term: "0%", Limit: 5})
	require.NoError(t, err)
	require.Len(t, hits, 1, "wildcards in the term are matched literally")
	assert.Equal(t, "100% Cement", hits[0].TitleEn)

	hits, err = repo.MatchTitles(ctx, TitleQuery{Table: "partners", TitleColumn: "name", Term: "", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}
