package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"regadmin/internal/service"
)

// BranchHandler handles branch endpoints.
type BranchHandler struct {
	branchService service.BranchService
}

// NewBranchHandler creates a new branch handler.
func NewBranchHandler(branchService service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// BranchRequest is the create/update payload for a branch office.
type BranchRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Address   string `json:"address" validate:"max=512"`
	City      string `json:"city" validate:"max=100"`
	Phone     string `json:"phone" validate:"max=50"`
	ManagerID string `json:"managerId" validate:"omitempty,uuid4"`
	IsActive  *bool  `json:"isActive"`
}

func branchInput(req BranchRequest) (service.BranchInput, error) {
	in := service.BranchInput{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	}
	if req.ManagerID != "" {
		id, err := uuid.Parse(req.ManagerID)
		if err != nil {
			return in, err
		}
		in.ManagerID = &id
	}
	return in, nil
}

func (h *BranchHandler) Create(c echo.Context) error {
	var req BranchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	in, err := branchInput(req)
	if err != nil {
		return badRequest(c, "invalid manager id")
	}

	branch, err := h.branchService.Create(c.Request().Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, "branch created", branch)
}

func (h *BranchHandler) List(c echo.Context) error {
	branches, err := h.branchService.ListActive(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "branches", branches)
}

func (h *BranchHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "branchId")
	if err != nil {
		return badRequest(c, "invalid branch id")
	}
	branch, err := h.branchService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "branch", branch)
}

func (h *BranchHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "branchId")
	if err != nil {
		return badRequest(c, "invalid branch id")
	}

	var req BranchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	in, inErr := branchInput(req)
	if inErr != nil {
		return badRequest(c, "invalid manager id")
	}

	branch, err := h.branchService.Update(c.Request().Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "branch updated", branch)
}

func (h *BranchHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "branchId")
	if err != nil {
		return badRequest(c, "invalid branch id")
	}
	if err := h.branchService.Deactivate(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "branch deactivated", nil)
}
