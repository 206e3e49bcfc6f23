package service

import (
	"context"
	"fmt"
	"testing"

	"contracting-cms/internal/model"
	"contracting-cms/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hits(n int, prefix string) []repository.SearchHit {
	out := make([]repository.SearchHit, n)
	for i := range out {
		out[i] = repository.SearchHit{ID: fmt.Sprintf("%s%d", prefix, i)}
	}
	return out
}

func TestAllocate(t *testing.T) {
	groups := [][]repository.SearchHit{hits(5, "p"), hits(3, "s"), hits(5, "i"), hits(5, "c"), hits(3, "pa"), hits(5, "a"), hits(5, "pr")}
	got := allocate(groups, MaxSearchResults)

	sizes := make([]int, len(got))
	total := 0
	for i, g := range got {
		sizes[i] = len(g)
		total += len(g)
	}
	assert.Equal(t, MaxSearchResults, total)
	assert.Equal(t, []int{3, 2, 2, 2, 2, 2, 2}, sizes)
	assert.Equal(t, "p0", got[0][0].ID, "hits keep their order inside a group")

	sparse := allocate([][]repository.SearchHit{hits(1, "p"), nil, hits(20, "a")}, MaxSearchResults)
	assert.Len(t, sparse[0], 1)
	assert.Len(t, sparse[1], 0)
	assert.Len(t, sparse[2], 14)
}

func TestSearchService_Search(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := NewCatalog(f.deps)
	svc := NewSearchService(repository.NewSearchRepository(f.db), nil)

	require.True(t, c.Projects.Create(ctx, &model.Project{TitleEn: "Harbor Tower", TitleAr: "برج الميناء"}, nil).Success)
	require.True(t, c.Articles.Create(ctx, &model.Article{TitleEn: "Tower cranes explained", TitleAr: "شرح الرافعات البرجية"}, nil).Success)
	require.True(t, c.Partners.Create(ctx, &model.Partner{NameEn: "Tower Steel Co", NameAr: "شركة برج للحديد"}, nil).Success)
	require.True(t, c.Products.Create(ctx, &model.Product{TitleEn: "Cement", TitleAr: "أسمنت"}, nil).Success)

	res, err := svc.Search(ctx, "tower", "en")
	require.NoError(t, err)
	require.Len(t, res.Results, 3)
	assert.Equal(t, "project", res.Results[0].Type)
	assert.Equal(t, "/en/projects/harbor-tower", res.Results[0].Href)
	assert.Equal(t, "partner", res.Results[1].Type)
	assert.Equal(t, "/en/partners", res.Results[1].Href)
	assert.Equal(t, "article", res.Results[2].Type)
	assert.Equal(t, "/en/blog/tower-cranes-explained", res.Results[2].Href)

	res, err = svc.Search(ctx, "برج", "ar")
	require.NoError(t, err)
	require.NotEmpty(t, res.Results)
	assert.Equal(t, "برج الميناء", res.Results[0].Title)
	assert.Equal(t, "/ar/projects/برج-الميناء", res.Results[0].Href)

	res, err = svc.Search(ctx, "t", "en")
	require.NoError(t, err)
	assert.Empty(t, res.Results)
	assert.NotNil(t, res.Results)

	res, err = svc.Search(ctx, "cement", "fr")
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "/en/products/cement", res.Results[0].Href, "unknown locales fall back to English")
}
