package handler

import (
	"net/http"

	"contracting-cms/internal/middleware"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/service"
	"contracting-cms/pkg/response"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService service.RoleService
	gate        middleware.PermissionChecker
}

func NewRoleHandler(roleService service.RoleService, gate middleware.PermissionChecker) *RoleHandler {
	return &RoleHandler{roleService: roleService, gate: gate}
}

// RegisterRoutes mounts the permission catalog and grant editing. Role CRUD
// itself is a content resource.
func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	view := permission.Key(permission.Roles, permission.ActionView)
	manage := permission.Key(permission.Roles, permission.ActionManage)

	router.GET("/api/permissions", middleware.RequirePermission(h.gate, view), h.ListPermissions)
	router.PUT("/api/roles/:id/permissions", middleware.RequirePermission(h.gate, manage), h.UpdateRolePermissions)
}

// ListPermissions returns every permission ordered by key
// @Summary      List permissions
// @Tags         roles
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/permissions [get]
func (h *RoleHandler) ListPermissions(c *gin.Context) {
	perms, err := h.roleService.ListPermissions(c.Request.Context())
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, perms))
}

// UpdateRolePermissions replaces the role's permission set
// @Summary      Replace role permissions
// @Tags         roles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                                true  "Role ID"
// @Param        payload  body  service.UpdateRolePermissionsRequest  true  "Permission ids"
// @Success      200  {object}  service.ActionResult
// @Failure      400  {object}  service.ActionResult
// @Failure      404  {object}  service.ActionResult
// @Router       /api/roles/{id}/permissions [put]
func (h *RoleHandler) UpdateRolePermissions(c *gin.Context) {
	var req service.UpdateRolePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	writeResult(c, h.roleService.SetPermissions(c.Request.Context(), c.Param("id"), req.PermissionIDs), http.StatusOK)
}
