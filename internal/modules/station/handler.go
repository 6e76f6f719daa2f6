package station

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"radioreg/internal/database"
	"radioreg/internal/middleware"
	"radioreg/internal/pkg/response"
	"radioreg/internal/pkg/validator"
	"radioreg/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	importer *Importer
}

func NewHandler(service *Service, importer *Importer) *Handler {
	return &Handler{service: service, importer: importer}
}

// RegisterRoutes wires the station endpoints. The notes patch is open to
// every authenticated role, which is the one write a viewer may perform.
// Everything else that mutates is admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stations", h.List)
	rg.GET("/stations/:id", h.Get)
	rg.GET("/stations/:id/photo", h.DownloadPhoto)
	rg.GET("/stations/:id/document", h.DownloadDocument)
	rg.PATCH("/stations/:id/notes", h.UpdateNotes)

	admin := rg.Group("/", middleware.AdminOnly())
	{
		admin.POST("/stations", h.Create)
		admin.PUT("/stations/:id", h.Update)
		admin.DELETE("/stations/:id", h.Delete)
		admin.POST("/stations/:id/photo", h.UploadPhoto)
		admin.POST("/stations/:id/document", h.UploadDocument)
		// lives outside /stations because a static "import" segment would
		// collide with the :id routes
		admin.POST("/import/stations", h.Import)
	}
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.Fetch(c.Request.Context(), c.Query("search"), c.Query("region"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stations": rows, "total": len(rows)})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	st, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) Create(c *gin.Context) {
	req, ok := bindUpsert(c)
	if !ok {
		return
	}
	st, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, st)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	req, ok := bindUpsert(c)
	if !ok {
		return
	}
	st, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) UpdateNotes(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.service.UpdateNotes(c.Request.Context(), id, req.Notes); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": id})
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	h.upload(c, h.service.AttachPhoto)
}

func (h *Handler) UploadDocument(c *gin.Context) {
	h.upload(c, h.service.AttachDocument)
}

func (h *Handler) upload(c *gin.Context, attach func(ctx context.Context, id int64, filename string, data []byte) (string, error)) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	filename, data, ok := readUpload(c)
	if !ok {
		return
	}
	rel, err := attach(c.Request.Context(), id, filename, data)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"path": rel})
}

func (h *Handler) DownloadPhoto(c *gin.Context) {
	h.download(c, "photo")
}

func (h *Handler) DownloadDocument(c *gin.Context) {
	h.download(c, "document")
}

func (h *Handler) download(c *gin.Context, kind string) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	path, err := h.service.AttachmentPath(c.Request.Context(), id, kind)
	if err != nil {
		handleError(c, err)
		return
	}
	c.File(path)
}

// Import accepts a multipart file and dispatches on the extension: .csv,
// .xlsx, or plain text with pipe-delimited lines. An optional "region"
// form field sets the default region for the text format.
func (h *Handler) Import(c *gin.Context) {
	filename, data, ok := readUpload(c)
	if !ok {
		return
	}

	var (
		sum ImportSummary
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		sum, err = h.importer.ImportCSV(c.Request.Context(), bytes.NewReader(data))
	case ".xlsx":
		sum, err = h.importer.ImportXLSX(c.Request.Context(), bytes.NewReader(data))
	default:
		sum, err = h.importer.ImportText(c.Request.Context(), string(data), c.PostForm("region"))
	}
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sum)
}

func bindUpsert(c *gin.Context) (UpsertStationRequest, bool) {
	var req UpsertStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return req, false
	}
	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Название станции обязательно", fields)
		return req, false
	}
	return req, true
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid station ID")
		return 0, false
	}
	return id, true
}

func readUpload(c *gin.Context) (string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No file provided")
		return "", nil, false
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unreadable file")
		return "", nil, false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unreadable file")
		return "", nil, false
	}
	return fileHeader.Filename, data, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, repository.ErrDuplicateKey):
		response.Error(c, http.StatusConflict, "DUPLICATE_KEY", "Станция с таким названием уже существует")
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, ErrNoAttachment):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Station not found")
	case errors.Is(err, ErrBadImportFile):
		response.Error(c, http.StatusBadRequest, "BAD_IMPORT_FILE", "Could not parse the import file")
	case errors.Is(err, ErrInvalidFileType):
		response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", err.Error())
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, ErrAttachmentWrite):
		response.Error(c, http.StatusInternalServerError, "ATTACHMENT_WRITE_FAILURE", "Could not store the file; the record is unchanged")
	case errors.Is(err, database.ErrStoreUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Database unavailable, try again")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
