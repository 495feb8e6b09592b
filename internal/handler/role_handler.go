package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"regadmin/internal/query"
	"regadmin/internal/service"
)

// RoleHandler handles role endpoints.
type RoleHandler struct {
	roleService service.RoleService
	pageSize    int
}

// NewRoleHandler creates a new role handler.
func NewRoleHandler(roleService service.RoleService, pageSize int) *RoleHandler {
	return &RoleHandler{roleService: roleService, pageSize: pageSize}
}

// RoleRequest is the create/update payload for a role.
type RoleRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"max=512"`
	IsActive    *bool    `json:"isActive"`
	ActionIDs   []string `json:"actionIds" validate:"dive,uuid4"`
}

func roleInput(req RoleRequest) (service.RoleInput, error) {
	in := service.RoleInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	if req.ActionIDs != nil {
		in.ActionIDs = make([]uuid.UUID, 0, len(req.ActionIDs))
		for _, raw := range req.ActionIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return in, err
			}
			in.ActionIDs = append(in.ActionIDs, id)
		}
	}
	return in, nil
}

func (h *RoleHandler) Create(c echo.Context) error {
	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	in, err := roleInput(req)
	if err != nil {
		return badRequest(c, "invalid action id")
	}

	role, err := h.roleService.Create(c.Request().Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, "role created", role)
}

func (h *RoleHandler) List(c echo.Context) error {
	opts := query.ParseOptions(c.QueryParams(), h.pageSize, nil)
	roles, total, err := h.roleService.List(c.Request().Context(), c.QueryParam("search"), opts)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "roles", ListData{
		Items: roles, Total: total, Page: opts.Page, Limit: opts.Limit,
	})
}

func (h *RoleHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "roleId")
	if err != nil {
		return badRequest(c, "invalid role id")
	}
	role, err := h.roleService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "role", role)
}

func (h *RoleHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "roleId")
	if err != nil {
		return badRequest(c, "invalid role id")
	}

	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	in, inErr := roleInput(req)
	if inErr != nil {
		return badRequest(c, "invalid action id")
	}

	role, err := h.roleService.Update(c.Request().Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "role updated", role)
}

func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "roleId")
	if err != nil {
		return badRequest(c, "invalid role id")
	}
	if err := h.roleService.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "role deleted", nil)
}
