package handler

import (
	"net/http"

	"contracting-cms/internal/middleware"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/service"
	"contracting-cms/pkg/pagination"
	"contracting-cms/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
	gate         middleware.PermissionChecker
}

func NewAuditHandler(auditService service.AuditService, gate middleware.PermissionChecker) *AuditHandler {
	return &AuditHandler{auditService: auditService, gate: gate}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	view := permission.Key(permission.Settings, permission.ActionView)
	router.GET("/api/audit-logs", middleware.RequirePermission(h.gate, view), h.GetAuditLogs)
}

// GetAuditLogs returns one page of the change history, newest first
// @Summary      Get audit logs
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Param        entity  query     string  false  "Only entries for this entity, e.g. projects"
// @Success      200     {object}  response.Response{data=[]service.AuditLogResponse}
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	page := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), c.Query("entity"), page.Offset, page.Limit)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, logs, page.Meta(total)))
}
