package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"regadmin/internal/query"
	"regadmin/internal/service"
)

// ActionHandler handles permission-action endpoints.
type ActionHandler struct {
	actionService service.ActionService
	pageSize      int
}

// NewActionHandler creates a new action handler.
func NewActionHandler(actionService service.ActionService, pageSize int) *ActionHandler {
	return &ActionHandler{actionService: actionService, pageSize: pageSize}
}

// ActionRequest is the create/update payload for a permission action.
type ActionRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=512"`
	IsActive    *bool  `json:"isActive"`
}

func (h *ActionHandler) Create(c echo.Context) error {
	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	action, err := h.actionService.Create(c.Request().Context(), service.ActionInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, "action created", action)
}

func (h *ActionHandler) List(c echo.Context) error {
	opts := query.ParseOptions(c.QueryParams(), h.pageSize, nil)
	actions, total, err := h.actionService.List(c.Request().Context(), c.QueryParam("search"), opts)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "actions", ListData{
		Items: actions, Total: total, Page: opts.Page, Limit: opts.Limit,
	})
}

func (h *ActionHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "actionId")
	if err != nil {
		return badRequest(c, "invalid action id")
	}
	action, err := h.actionService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "action", action)
}

func (h *ActionHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "actionId")
	if err != nil {
		return badRequest(c, "invalid action id")
	}

	var req struct {
		Name        string `json:"name" validate:"omitempty,max=100"`
		Description string `json:"description" validate:"max=512"`
		IsActive    *bool  `json:"isActive"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	action, err := h.actionService.Update(c.Request().Context(), id, service.ActionInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "action updated", action)
}

func (h *ActionHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "actionId")
	if err != nil {
		return badRequest(c, "invalid action id")
	}
	if err := h.actionService.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "action deleted", nil)
}
