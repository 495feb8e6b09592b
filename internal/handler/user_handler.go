package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"regadmin/internal/query"
	"regadmin/internal/service"
)

// UserHandler handles user and civil-profile endpoints.
type UserHandler struct {
	userService service.UserService
	pageSize    int
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, pageSize int) *UserHandler {
	return &UserHandler{userService: userService, pageSize: pageSize}
}

// IdentificationRequest is one identity document in a profile payload.
type IdentificationRequest struct {
	CardType string `json:"cardType" validate:"required,max=50"`
	CardCode string `json:"cardCode" validate:"required,max=100"`
}

// UserInfoRequest is the civil-profile payload.
type UserInfoRequest struct {
	FirstName       string                  `json:"firstName" validate:"required,max=100"`
	LastName        string                  `json:"lastName" validate:"required,max=100"`
	Gender          string                  `json:"gender" validate:"required,oneof=M F Other"`
	DateOfBirth     time.Time               `json:"dateOfBirth" validate:"required"`
	MaritalStatus   string                  `json:"maritalStatus" validate:"required,oneof=Single Married Divorced Widowed Other"`
	Occupation      string                  `json:"occupation" validate:"max=100"`
	Address         string                  `json:"address" validate:"max=512"`
	PhoneNumber     string                  `json:"phoneNumber" validate:"max=50"`
	Email           string                  `json:"email" validate:"omitempty,email"`
	Identifications []IdentificationRequest `json:"identifications" validate:"required,min=1,dive"`
}

// RegisterWithInfoRequest is the full registration payload: account plus
// civil profile, created together.
type RegisterWithInfoRequest struct {
	Username string          `json:"username" validate:"required,min=3,max=64"`
	Password string          `json:"password" validate:"required,min=8"`
	FullName string          `json:"fullName" validate:"required"`
	RoleIDs  []string        `json:"roleIds" validate:"dive,uuid4"`
	BranchID string          `json:"branchId" validate:"omitempty,uuid4"`
	Info     UserInfoRequest `json:"info" validate:"required"`
}

// UserUpdateRequest is a partial user update.
type UserUpdateRequest struct {
	FullName *string  `json:"fullName"`
	BranchID string   `json:"branchId" validate:"omitempty,uuid4"`
	IsActive *bool    `json:"isActive"`
	RoleIDs  []string `json:"roleIds" validate:"omitempty,dive,uuid4"`
}

func infoInput(req UserInfoRequest) service.UserInfoInput {
	in := service.UserInfoInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Gender:        req.Gender,
		DateOfBirth:   req.DateOfBirth,
		MaritalStatus: req.MaritalStatus,
		Occupation:    req.Occupation,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
	}
	for _, ident := range req.Identifications {
		in.Identifications = append(in.Identifications, service.IdentificationInput{
			CardType: ident.CardType,
			CardCode: ident.CardCode,
		})
	}
	return in
}

// listParams reads the shared user/profile list filters. The second return
// value names the offending parameter, empty when the parse succeeded.
func (h *UserHandler) listParams(c echo.Context) (service.UserListParams, string) {
	p := service.UserListParams{
		Search:        c.QueryParam("search"),
		Gender:        c.QueryParam("gender"),
		MaritalStatus: c.QueryParam("maritalStatus"),
		CardType:      c.QueryParam("cardType"),
		CardCode:      c.QueryParam("cardCode"),
		IDSearch:      c.QueryParam("idSearch"),
		Options:       query.ParseOptions(c.QueryParams(), h.pageSize, nil),
	}
	var ok bool
	if p.BranchID, ok = parseUUIDParam(c, "branchId"); !ok {
		return p, "branchId"
	}
	if p.StartDate, ok = parseDateParam(c, "startDate"); !ok {
		return p, "startDate"
	}
	if p.EndDate, ok = parseDateParam(c, "endDate"); !ok {
		return p, "endDate"
	}
	return p, ""
}

func (h *UserHandler) RegisterWithInfo(c echo.Context) error {
	var req RegisterWithInfoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	in := service.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Info:     infoInput(req.Info),
	}
	for _, raw := range req.RoleIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid role id")
		}
		in.RoleIDs = append(in.RoleIDs, id)
	}
	if req.BranchID != "" {
		id, err := uuid.Parse(req.BranchID)
		if err != nil {
			return badRequest(c, "invalid branch id")
		}
		in.BranchID = &id
	}

	user, tokens, err := h.userService.CreateWithInfo(c.Request().Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, "user registered", authResponse{User: user, Tokens: tokens})
}

func (h *UserHandler) List(c echo.Context) error {
	p, bad := h.listParams(c)
	if bad != "" {
		return badRequest(c, "invalid "+bad)
	}
	users, total, err := h.userService.List(c.Request().Context(), p)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "users", ListData{
		Items: users, Total: total, Page: p.Options.Page, Limit: p.Options.Limit,
	})
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "userId")
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "user", user)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "userId")
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var req UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	in := service.UserUpdateInput{
		FullName: req.FullName,
		IsActive: req.IsActive,
	}
	if req.BranchID != "" {
		branchID, err := uuid.Parse(req.BranchID)
		if err != nil {
			return badRequest(c, "invalid branch id")
		}
		in.BranchID = &branchID
	}
	if req.RoleIDs != nil {
		in.RoleIDs = make([]uuid.UUID, 0, len(req.RoleIDs))
		for _, raw := range req.RoleIDs {
			roleID, err := uuid.Parse(raw)
			if err != nil {
				return badRequest(c, "invalid role id")
			}
			in.RoleIDs = append(in.RoleIDs, roleID)
		}
	}

	user, err := h.userService.Update(c.Request().Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "user updated", user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "userId")
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "user deleted", nil)
}

func (h *UserHandler) ListUserInfo(c echo.Context) error {
	p, bad := h.listParams(c)
	if bad != "" {
		return badRequest(c, "invalid "+bad)
	}
	infos, total, err := h.userService.ListUserInfo(c.Request().Context(), p)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "user infos", ListData{
		Items: infos, Total: total, Page: p.Options.Page, Limit: p.Options.Limit,
	})
}

func (h *UserHandler) GetUserInfo(c echo.Context) error {
	id, err := pathUUID(c, "userInfoId")
	if err != nil {
		return badRequest(c, "invalid user info id")
	}
	info, err := h.userService.GetUserInfo(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "user info", info)
}

func (h *UserHandler) UpdateUserInfo(c echo.Context) error {
	id, err := pathUUID(c, "userInfoId")
	if err != nil {
		return badRequest(c, "invalid user info id")
	}

	var req UserInfoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	info, err := h.userService.UpdateUserInfo(c.Request().Context(), id, infoInput(req))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "user info updated", info)
}
