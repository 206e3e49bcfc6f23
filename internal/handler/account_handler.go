package handler

import (
	"context"
	"net/http"

	"contracting-cms/internal/middleware"
	"contracting-cms/internal/model"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/service"
	"contracting-cms/pkg/response"

	"github.com/gin-gonic/gin"
)

// Gate is the permission gate as the handlers need it.
type Gate interface {
	middleware.PermissionChecker
	Permissions(ctx context.Context, s permission.Session) ([]string, error)
}

type MeResponse struct {
	Account     *model.Account `json:"account"`
	Permissions []string       `json:"permissions"`
}

type AccountHandler struct {
	accountService service.AccountService
	gate           Gate
}

func NewAccountHandler(accountService service.AccountService, gate Gate) *AccountHandler {
	return &AccountHandler{accountService: accountService, gate: gate}
}

func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup) {
	keys := permission.CrudKeys(permission.Accounts)
	manageRoles := permission.Key(permission.Roles, permission.ActionManage)

	router.GET("/api/me", middleware.RequireSession(), h.GetMe)

	accounts := router.Group("/api/accounts")
	{
		accounts.GET("", middleware.RequirePermission(h.gate, keys.View), h.ListAccounts)
		accounts.GET("/:id", middleware.RequirePermission(h.gate, keys.View), h.GetAccount)
		accounts.PUT("/:id", middleware.RequirePermission(h.gate, keys.Edit), h.UpdateAccount)
		accounts.PUT("/:id/roles", middleware.RequirePermission(h.gate, manageRoles), h.UpdateAccountRoles)
		accounts.DELETE("/:id", middleware.RequirePermission(h.gate, keys.Delete), h.DeleteAccount)
	}
}

// GetMe returns the caller's account, creating it on first login, with the
// permission keys the dashboard uses to shape its navigation
// @Summary      Current account
// @Tags         accounts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=MeResponse}
// @Failure      401  {object}  response.Response
// @Router       /api/me [get]
func (h *AccountHandler) GetMe(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	account, err := h.accountService.Provision(c.Request.Context(), sess)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	sess.AccountID = account.ID
	perms, err := h.gate.Permissions(c.Request.Context(), sess)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, MeResponse{Account: account, Permissions: perms}))
}

// ListAccounts returns every dashboard account with its roles
// @Summary      List accounts
// @Tags         accounts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.List(c.Request.Context())
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, accounts))
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accountService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, account))
}

// UpdateAccount changes display names and avatar
// @Summary      Update account
// @Tags         accounts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "Account ID"
// @Param        payload  body  service.UpdateAccountRequest  true  "Profile"
// @Success      200  {object}  service.ActionResult
// @Router       /api/accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	var req service.UpdateAccountRequest
	if err := bindJSON(c, &req); err != nil {
		writeBindError(c, err)
		return
	}
	writeResult(c, h.accountService.UpdateProfile(c.Request.Context(), c.Param("id"), req), http.StatusOK)
}

// UpdateAccountRoles replaces the account's roles
// @Summary      Replace account roles
// @Tags         accounts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                             true  "Account ID"
// @Param        payload  body  service.UpdateAccountRolesRequest  true  "Role ids"
// @Success      200  {object}  service.ActionResult
// @Router       /api/accounts/{id}/roles [put]
func (h *AccountHandler) UpdateAccountRoles(c *gin.Context) {
	var req service.UpdateAccountRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	writeResult(c, h.accountService.SetRoles(c.Request.Context(), c.Param("id"), req.RoleIDs), http.StatusOK)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	writeResult(c, h.accountService.Delete(c.Request.Context(), c.Param("id")), http.StatusOK)
}
