package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"regadmin/internal/query"
	"regadmin/internal/service"
)

// HeroSliderHandler handles landing-page slide endpoints. Create accepts a
// multipart form with a single "image" file and plain title, subtitle, link
// and sort fields.
type HeroSliderHandler struct {
	sliderService service.HeroSliderService
	pageSize      int
}

// NewHeroSliderHandler creates a new hero-slider handler.
func NewHeroSliderHandler(sliderService service.HeroSliderService, pageSize int) *HeroSliderHandler {
	return &HeroSliderHandler{sliderService: sliderService, pageSize: pageSize}
}

func (h *HeroSliderHandler) Create(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return badRequest(c, "title is required")
	}

	in := service.HeroSliderInput{
		Title:    title,
		Subtitle: c.FormValue("subtitle"),
		Link:     c.FormValue("link"),
	}
	if raw := c.FormValue("sort"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "invalid sort")
		}
		in.Sort = &n
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "image file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "unreadable upload")
	}
	defer f.Close()

	slider, err := h.sliderService.Create(c.Request().Context(), in, service.Upload{
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get("Content-Type"),
		Encoding:     fh.Header.Get("Content-Transfer-Encoding"),
		Size:         fh.Size,
		Body:         f,
	}, currentUserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, "slide created", slider)
}

func (h *HeroSliderHandler) List(c echo.Context) error {
	isActive, ok := parseBoolParam(c, "isActive")
	if !ok {
		return badRequest(c, "invalid isActive")
	}
	opts := query.ParseOptions(c.QueryParams(), h.pageSize, nil, query.SortField{Column: "sort"})

	sliders, total, err := h.sliderService.List(c.Request().Context(), isActive, opts)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "slides", ListData{
		Items: sliders, Total: total, Page: opts.Page, Limit: opts.Limit,
	})
}

func (h *HeroSliderHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "sliderId")
	if err != nil {
		return badRequest(c, "invalid slide id")
	}
	if err := h.sliderService.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "slide deleted", nil)
}

// GetImage streams the slide image. The get-by-id route serves the binary
// directly rather than the row.
func (h *HeroSliderHandler) GetImage(c echo.Context) error {
	id, err := pathUUID(c, "sliderId")
	if err != nil {
		return badRequest(c, "invalid slide id")
	}
	body, contentType, err := h.sliderService.OpenImage(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	defer body.Close()
	return c.Stream(http.StatusOK, contentType, body)
}
