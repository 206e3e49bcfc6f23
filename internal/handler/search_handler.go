package handler

import (
	"net/http"

	"contracting-cms/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService service.SearchService
}

func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/search", h.Search)
}

// Search matches public content titles
// @Summary      Site search
// @Tags         public
// @Produce      json
// @Param        q       query  string  true   "Search term (at least 2 characters)"
// @Param        locale  query  string  false  "en or ar (default en)"
// @Success      200  {object}  service.SearchResponse
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	res, err := h.searchService.Search(c.Request.Context(), c.Query("q"), c.DefaultQuery("locale", service.DefaultLocale))
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
