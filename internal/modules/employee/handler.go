package employee

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"radioreg/internal/database"
	"radioreg/internal/middleware"
	"radioreg/internal/pkg/response"
	"radioreg/internal/pkg/validator"
	"radioreg/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the employee endpoints. Reads are open to every
// authenticated role; all mutations are admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/employees", h.List)
	rg.GET("/employees/:id", h.Get)
	rg.GET("/employees/:id/photo", h.DownloadPhoto)
	rg.GET("/employees/:id/document", h.DownloadDocument)

	admin := rg.Group("/", middleware.AdminOnly())
	{
		admin.POST("/employees", h.Create)
		admin.PUT("/employees/:id", h.Update)
		admin.DELETE("/employees/:id", h.Delete)
		admin.POST("/employees/:id/photo", h.UploadPhoto)
		admin.POST("/employees/:id/document", h.UploadDocument)
	}
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.Fetch(c.Request.Context(), c.Query("search"), c.Query("region"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employees": rows, "total": len(rows)})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Create(c *gin.Context) {
	req, ok := bindUpsert(c)
	if !ok {
		return
	}
	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, e)
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
	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
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

func bindUpsert(c *gin.Context) (UpsertEmployeeRequest, bool) {
	var req UpsertEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return req, false
	}
	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Табельный № обязателен", fields)
		return req, false
	}
	return req, true
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid employee ID")
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
		response.Error(c, http.StatusConflict, "DUPLICATE_KEY", "Такой Табельный № уже существует")
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, ErrNoAttachment):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Employee not found")
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
