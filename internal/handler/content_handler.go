package handler

import (
	"errors"
	"net/http"

	"contracting-cms/internal/middleware"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/service"
	"contracting-cms/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Registrar is anything that mounts its routes on the API router.
type Registrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// Binder decodes a request body into an entity and its related ids.
type Binder[T any] func(c *gin.Context) (*T, service.Relations, error)

// BindEntity binds a body that carries the entity alone.
func BindEntity[T any]() Binder[T] {
	return func(c *gin.Context) (*T, service.Relations, error) {
		entity := new(T)
		if err := bindJSON(c, entity); err != nil {
			return nil, nil, err
		}
		return entity, nil, nil
	}
}

// BindPayload binds a body that embeds the entity next to *_ids lists.
func BindPayload[T any, P any, PP interface {
	*P
	service.Payload[T]
}]() Binder[T] {
	return func(c *gin.Context) (*T, service.Relations, error) {
		payload := PP(new(P))
		if err := bindJSON(c, payload); err != nil {
			return nil, nil, err
		}
		return payload.Entity(), payload.Relations(), nil
	}
}

// bindJSON decodes the body. Field rules are left to the action layer so
// every write reports them the same way.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return nil
	}
	return err
}

// Resource describes one entity exposed through the dashboard API.
type Resource[T any] struct {
	Path    string // URL segment, e.g. "project-types"
	Keys    permission.KeySet
	Service service.ContentService[T]
	Bind    Binder[T]
	// Public also mounts read-only routes under /api/public.
	Public bool
	// Slugged public rows are fetched by slug instead of id.
	Slugged bool
}

type ContentHandler[T any] struct {
	res  Resource[T]
	gate middleware.PermissionChecker
}

func NewContentHandler[T any](res Resource[T], gate middleware.PermissionChecker) *ContentHandler[T] {
	if res.Bind == nil {
		res.Bind = BindEntity[T]()
	}
	return &ContentHandler[T]{res: res, gate: gate}
}

func (h *ContentHandler[T]) RegisterRoutes(router *gin.RouterGroup) {
	keys := h.res.Keys
	group := router.Group("/api/" + h.res.Path)
	{
		group.GET("", middleware.RequirePermission(h.gate, keys.View), h.List)
		group.GET("/:id", middleware.RequirePermission(h.gate, keys.View), h.Get)
		group.POST("", middleware.RequirePermission(h.gate, keys.Create), h.Create)
		group.PUT("/:id", middleware.RequirePermission(h.gate, keys.Edit), h.Update)
		group.DELETE("/:id", middleware.RequirePermission(h.gate, keys.Delete), h.Delete)
	}

	if !h.res.Public {
		return
	}
	public := router.Group("/api/public/" + h.res.Path)
	public.GET("", h.List)
	if h.res.Slugged {
		public.GET("/:slug", h.GetBySlug)
	} else {
		public.GET("/:id", h.Get)
	}
}

func (h *ContentHandler[T]) List(c *gin.Context) {
	rows, err := h.res.Service.List(c.Request.Context())
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

func (h *ContentHandler[T]) Get(c *gin.Context) {
	row, err := h.res.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, row))
}

// GetBySlug serves public detail pages; locale selects the slug column.
func (h *ContentHandler[T]) GetBySlug(c *gin.Context) {
	row, err := h.res.Service.GetBySlug(c.Request.Context(), c.DefaultQuery("locale", service.DefaultLocale), c.Param("slug"))
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, row))
}

func (h *ContentHandler[T]) Create(c *gin.Context) {
	entity, rel, err := h.res.Bind(c)
	if err != nil {
		writeBindError(c, err)
		return
	}
	writeResult(c, h.res.Service.Create(c.Request.Context(), entity, rel), http.StatusCreated)
}

func (h *ContentHandler[T]) Update(c *gin.Context) {
	entity, rel, err := h.res.Bind(c)
	if err != nil {
		writeBindError(c, err)
		return
	}
	writeResult(c, h.res.Service.Update(c.Request.Context(), c.Param("id"), entity, rel), http.StatusOK)
}

func (h *ContentHandler[T]) Delete(c *gin.Context) {
	writeResult(c, h.res.Service.Delete(c.Request.Context(), c.Param("id")), http.StatusOK)
}
