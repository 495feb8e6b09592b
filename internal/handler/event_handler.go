package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"regadmin/internal/model"
	"regadmin/internal/query"
	"regadmin/internal/service"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	eventService service.EventService
	pageSize     int
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService, pageSize int) *EventHandler {
	return &EventHandler{eventService: eventService, pageSize: pageSize}
}

// ContactPersonRequest is the contact block of an event payload.
type ContactPersonRequest struct {
	Name  string `json:"name" validate:"max=100"`
	Phone string `json:"phone" validate:"max=50"`
	Email string `json:"email" validate:"omitempty,email"`
}

// EventRequest is the create payload for an event.
type EventRequest struct {
	Title         string               `json:"title" validate:"required,max=255"`
	DateFrom      time.Time            `json:"dateFrom" validate:"required"`
	DateTo        time.Time            `json:"dateTo" validate:"required"`
	TimeFrom      string               `json:"timeFrom" validate:"required,len=5"`
	TimeTo        string               `json:"timeTo" validate:"required,len=5"`
	Description   string               `json:"description" validate:"max=1024"`
	Map           string               `json:"map" validate:"max=512"`
	URLImage      string               `json:"urlImage" validate:"omitempty,url"`
	ContactPerson ContactPersonRequest `json:"contactPerson"`
}

func eventInput(req EventRequest) service.EventInput {
	return service.EventInput{
		Title:       req.Title,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		TimeFrom:    req.TimeFrom,
		TimeTo:      req.TimeTo,
		Description: req.Description,
		Map:         req.Map,
		URLImage:    req.URLImage,
		ContactPerson: model.ContactPerson{
			Name:  req.ContactPerson.Name,
			Phone: req.ContactPerson.Phone,
			Email: req.ContactPerson.Email,
		},
	}
}

func (h *EventHandler) Create(c echo.Context) error {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	event, err := h.eventService.Create(c.Request().Context(), eventInput(req), currentUserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, "event created", event)
}

func (h *EventHandler) List(c echo.Context) error {
	p := service.EventListParams{
		Search:  c.QueryParam("search"),
		Options: query.ParseOptions(c.QueryParams(), h.pageSize, nil, query.SortField{Column: "date_from"}),
	}
	var ok bool
	if p.EventID, ok = parseUUIDParam(c, "eventId"); !ok {
		return badRequest(c, "invalid eventId")
	}
	if p.IsCanceled, ok = parseBoolParam(c, "isCanceled"); !ok {
		return badRequest(c, "invalid isCanceled")
	}
	if p.StartDate, ok = parseDateParam(c, "startDate"); !ok {
		return badRequest(c, "invalid startDate")
	}
	if p.EndDate, ok = parseDateParam(c, "endDate"); !ok {
		return badRequest(c, "invalid endDate")
	}

	events, total, err := h.eventService.List(c.Request().Context(), p)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "events", ListData{
		Items: events, Total: total, Page: p.Options.Page, Limit: p.Options.Limit,
	})
}

func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "eventId")
	if err != nil {
		return badRequest(c, "invalid event id")
	}
	event, err := h.eventService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "event", event)
}

func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "eventId")
	if err != nil {
		return badRequest(c, "invalid event id")
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	event, err := h.eventService.Update(c.Request().Context(), id, eventInput(req), currentUserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "event updated", event)
}

// Delete cancels the event; the row is kept for history.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "eventId")
	if err != nil {
		return badRequest(c, "invalid event id")
	}
	if err := h.eventService.Cancel(c.Request().Context(), id, currentUserID(c)); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "event canceled", nil)
}
