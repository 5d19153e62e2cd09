package photo

import (
	"errors"
	"fmt"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"photoapi/internal/filestore"
	"photoapi/internal/pkg/response"
)

// Handler maps photo operations onto HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

var dispositionReplacer = strings.NewReplacer(`"`, "", "\r", "", "\n", "")

// List godoc
// @Summary List all photos
// @Tags Photos
// @Produce json
// @Success 200 {array} Photo
// @Failure 500 {object} map[string]interface{}
// @Router /photos [get]
func (h *Handler) List(c *gin.Context) {
	photos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to list photos", err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// GetByID godoc
// @Summary Get photo metadata by ID
// @Tags Photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} Photo
// @Failure 400,404 {object} map[string]interface{}
// @Router /photos/id/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, fmt.Sprintf("Photo with ID %d not found.", id))
			return
		}
		h.internalError(c, "Failed to load photo", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetByFilename godoc
// @Summary Get photo metadata by filename
// @Tags Photos
// @Produce json
// @Param filename path string true "Stored filename"
// @Success 200 {object} Photo
// @Failure 404 {object} map[string]interface{}
// @Router /photos/file/{filename} [get]
func (h *Handler) GetByFilename(c *gin.Context) {
	filename := c.Param("filename")

	p, err := h.service.GetByFilename(c.Request.Context(), filename)
	if err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound,
				fmt.Sprintf("Photo with filename '%s' not found in database.", filename))
			return
		}
		h.internalError(c, "Failed to load photo", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create godoc
// @Summary Create a metadata-only photo record
// @Tags Photos
// @Accept json
// @Produce json
// @Param request body FilenameRequest true "Filename"
// @Success 201 {object} Photo
// @Failure 400,409,500 {object} map[string]interface{}
// @Router /photos [post]
func (h *Handler) Create(c *gin.Context) {
	var req FilenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req.Filename)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid request fields", verr.Fields)
		case errors.Is(err, ErrDuplicateFilename):
			response.ErrorWithDetails(c, http.StatusConflict, response.CodeConflict, "Photo already exists",
				map[string]string{"filename": "A photo with this filename already exists"})
		default:
			h.internalError(c, "Failed to save photo", err)
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Rename godoc
// @Summary Rename a photo record
// @Description Changes the stored filename of the record only; the file on disk is not moved.
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Param request body FilenameRequest true "New filename"
// @Success 200 {object} Photo
// @Failure 400,404,409,500 {object} map[string]interface{}
// @Router /photos/id/{id} [put]
func (h *Handler) Rename(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req FilenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	p, err := h.service.Rename(c.Request.Context(), id, req.Filename)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid request fields", verr.Fields)
		case errors.Is(err, ErrPhotoNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, fmt.Sprintf("Photo with ID %d not found.", id))
		case errors.Is(err, ErrDuplicateFilename):
			response.ErrorWithDetails(c, http.StatusConflict, response.CodeConflict, "Photo already exists",
				map[string]string{"filename": "A photo with this filename already exists"})
		default:
			h.internalError(c, "Failed to update photo", err)
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteByID godoc
// @Summary Delete a photo record by ID
// @Description Removes the database record only. The stored file is kept.
// @Tags Photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} MessageResponse
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /photos/id/{id} [delete]
func (h *Handler) DeleteByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, fmt.Sprintf("Photo with ID %d not found.", id))
			return
		}
		h.internalError(c, "Failed to delete photo", err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Photo with ID %d deleted successfully.", id))
}

// DeleteByFilename godoc
// @Summary Delete a photo record by filename
// @Description Removes the database record only. The stored file is kept.
// @Tags Photos
// @Produce json
// @Param filename path string true "Stored filename"
// @Success 200 {object} MessageResponse
// @Failure 404,500 {object} map[string]interface{}
// @Router /photos/file/{filename} [delete]
func (h *Handler) DeleteByFilename(c *gin.Context) {
	filename := c.Param("filename")

	if err := h.service.DeleteByFilename(c.Request.Context(), filename); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound,
				fmt.Sprintf("Photo with filename '%s' not found.", filename))
			return
		}
		h.internalError(c, "Failed to delete photo", err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Photo with filename '%s' deleted successfully.", filename))
}

// Upload godoc
// @Summary Upload an image
// @Description Stores the file under a generated UUID name, or under its original name when useOriginalName is true, then records it.
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (jpg, jpeg, png, gif, webp, heic)"
// @Param useOriginalName formData bool false "Keep the client filename"
// @Success 201 {object} UploadResult
// @Failure 400,409,413,500 {object} map[string]interface{}
// @Router /photos/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Please select a file to upload")
		return
	}

	useOriginalName, err := parseBoolParam(c, "useOriginalName")
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid request fields",
			map[string]string{"useOriginalName": "must be a boolean"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.internalError(c, "Failed to upload file", err)
		return
	}
	defer file.Close()

	result, err := h.service.Upload(c.Request.Context(), UploadInput{
		OriginalName:    uploadFilename(fileHeader),
		Size:            fileHeader.Size,
		Content:         file,
		UseOriginalName: useOriginalName,
	})
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Please select a file to upload")
		case errors.Is(err, ErrInvalidFileType):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid file type. Only image files are allowed")
		case errors.Is(err, filestore.ErrInvalidPath):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid path sequence in filename")
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid request fields", verr.Fields)
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeFileTooLarge, "File exceeds maximum allowed size")
		case errors.Is(err, ErrDuplicateFilename):
			response.ErrorWithDetails(c, http.StatusConflict, response.CodeConflict, "Photo already exists",
				map[string]string{"filename": "A photo with this filename already exists in database"})
		default:
			h.internalError(c, "Failed to upload file", err)
		}
		return
	}

	log.Printf("photo_upload id=%d stored=%s original=%q size=%d", result.Photo.ID, result.StoredFilename, result.OriginalFilename, result.FileSize)
	c.JSON(http.StatusCreated, result)
}

// Download godoc
// @Summary Download a stored image
// @Tags Photos
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{}
// @Router /photos/download/{filename} [get]
func (h *Handler) Download(c *gin.Context) {
	filename := c.Param("filename")

	dl, err := h.service.Open(filename)
	if err != nil {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, fmt.Sprintf("File not found: %s", filename))
		return
	}
	defer dl.Content.Close()

	c.DataFromReader(http.StatusOK, dl.Size, dl.ContentType, dl.Content, map[string]string{
		"Content-Disposition": `inline; filename="` + dispositionReplacer.Replace(dl.Name) + `"`,
	})
}

// uploadFilename returns the filename as the client sent it, directory part
// included. FileHeader.Filename has already been reduced to its base name.
func uploadFilename(fh *multipart.FileHeader) string {
	if _, params, err := mime.ParseMediaType(fh.Header.Get("Content-Disposition")); err == nil {
		if name := params["filename"]; name != "" {
			return name
		}
	}
	return fh.Filename
}

func (h *Handler) internalError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	response.Error(c, http.StatusInternalServerError, response.CodeInternal, message)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid request fields",
			map[string]string{"id": "must be an integer"})
		return 0, false
	}
	return id, true
}

// parseBoolParam reads a flag from the form first, then the query string.
// A missing flag is false.
func parseBoolParam(c *gin.Context, name string) (bool, error) {
	raw, ok := c.GetPostForm(name)
	if !ok {
		raw, ok = c.GetQuery(name)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(raw))
}
