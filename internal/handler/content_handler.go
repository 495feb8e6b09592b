package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"regadmin/internal/query"
	"regadmin/internal/service"
)

// ContentHandler handles content-page endpoints. Create and update accept
// multipart forms: a "data" JSON field, repeated "images" files and optional
// parallel "imageDetail" index fields naming the detail block each image
// belongs to (first block when absent).
type ContentHandler struct {
	contentService service.ContentService
	pageSize       int
}

// NewContentHandler creates a new content handler.
func NewContentHandler(contentService service.ContentService, pageSize int) *ContentHandler {
	return &ContentHandler{contentService: contentService, pageSize: pageSize}
}

// ContentDetailRequest is one block of the content data payload.
type ContentDetailRequest struct {
	Statement string   `json:"statement" validate:"required,max=1024"`
	List      []string `json:"list"`
}

// ContentRequest is the JSON data field of a content multipart form.
type ContentRequest struct {
	Title       string                 `json:"title" validate:"required,max=255"`
	Description string                 `json:"description" validate:"max=1024"`
	Sort        *int                   `json:"sort"`
	Details     []ContentDetailRequest `json:"details" validate:"dive"`
}

func contentInput(req ContentRequest) service.ContentInput {
	in := service.ContentInput{
		Title:       req.Title,
		Description: req.Description,
		Sort:        req.Sort,
	}
	for _, d := range req.Details {
		in.Details = append(in.Details, service.ContentDetailInput{
			Statement: d.Statement,
			List:      d.List,
		})
	}
	return in
}

// parseContentForm decodes the data field and opens the image files. The
// returned closer releases every opened file.
func (h *ContentHandler) parseContentForm(c echo.Context) (ContentRequest, []service.Upload, func(), error) {
	var req ContentRequest
	if err := json.Unmarshal([]byte(c.FormValue("data")), &req); err != nil {
		return req, nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid data field")
	}
	if err := c.Validate(&req); err != nil {
		return req, nil, nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	form, err := c.MultipartForm()
	if err != nil {
		// JSON-only update without files
		return req, nil, func() {}, nil
	}

	files := form.File["images"]
	indices := form.Value["imageDetail"]

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	uploads := make([]service.Upload, 0, len(files))
	for i, fh := range files {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return req, nil, nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
		}
		opened = append(opened, f)

		idx := 0
		if i < len(indices) {
			if n, err := strconv.Atoi(indices[i]); err == nil {
				idx = n
			}
		}
		uploads = append(uploads, service.Upload{
			OriginalName: fh.Filename,
			MimeType:     fh.Header.Get("Content-Type"),
			Encoding:     fh.Header.Get("Content-Transfer-Encoding"),
			Size:         fh.Size,
			Body:         f,
			DetailIndex:  idx,
		})
	}
	return req, uploads, closeAll, nil
}

func (h *ContentHandler) Create(c echo.Context) error {
	req, uploads, closeAll, err := h.parseContentForm(c)
	if err != nil {
		he := err.(*echo.HTTPError)
		return badRequest(c, he.Message.(string))
	}
	defer closeAll()

	user := currentUserID(c)
	content, err := h.contentService.Create(c.Request().Context(), contentInput(req), uploads, user)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, "content created", content)
}

func (h *ContentHandler) List(c echo.Context) error {
	p := service.ContentListParams{
		Search:  c.QueryParam("search"),
		Options: query.ParseOptions(c.QueryParams(), h.pageSize, nil, query.SortField{Column: "sort"}),
	}
	var ok bool
	if p.StartDate, ok = parseDateParam(c, "startDate"); !ok {
		return badRequest(c, "invalid startDate")
	}
	if p.EndDate, ok = parseDateParam(c, "endDate"); !ok {
		return badRequest(c, "invalid endDate")
	}

	contents, total, err := h.contentService.List(c.Request().Context(), p)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "contents", ListData{
		Items: contents, Total: total, Page: p.Options.Page, Limit: p.Options.Limit,
	})
}

func (h *ContentHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "contentId")
	if err != nil {
		return badRequest(c, "invalid content id")
	}
	content, err := h.contentService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "content", content)
}

func (h *ContentHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "contentId")
	if err != nil {
		return badRequest(c, "invalid content id")
	}

	req, uploads, closeAll, err := h.parseContentForm(c)
	if err != nil {
		he := err.(*echo.HTTPError)
		return badRequest(c, he.Message.(string))
	}
	defer closeAll()

	user := currentUserID(c)
	content, err := h.contentService.Update(c.Request().Context(), id, contentInput(req), uploads, user)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "content updated", content)
}

func (h *ContentHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "contentId")
	if err != nil {
		return badRequest(c, "invalid content id")
	}
	user := currentUserID(c)
	if err := h.contentService.Delete(c.Request().Context(), id, user); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "content deleted", nil)
}

// GetImage streams one attachment inline.
func (h *ContentHandler) GetImage(c echo.Context) error {
	contentID, err := pathUUID(c, "contentId")
	if err != nil {
		return badRequest(c, "invalid content id")
	}
	detailID, err := pathUUID(c, "detailId")
	if err != nil {
		return badRequest(c, "invalid detail id")
	}
	imageID, err := pathUUID(c, "imageId")
	if err != nil {
		return badRequest(c, "invalid image id")
	}

	body, contentType, err := h.contentService.OpenImage(c.Request().Context(), contentID, detailID, imageID)
	if err != nil {
		return respondErr(c, err)
	}
	defer body.Close()
	c.Response().Header().Set(echo.HeaderContentDisposition, "inline")
	return c.Stream(http.StatusOK, contentType, body)
}
