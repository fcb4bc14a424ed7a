package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/storage"
)

type EvidenceHandler struct {
	*BaseHandler
	router *storage.Router
}

func NewEvidenceHandler(router *storage.Router) *EvidenceHandler {
	return &EvidenceHandler{router: router}
}

// UploadEvidence godoc
// @Summary Upload an evidence file
// @Description Store a compliance evidence file in the tenant's storage container
// @Tags evidence
// @Accept octet-stream
// @Produce json
// @Param path path string true "Logical file path"
// @Success 201 {object} dto.EvidenceResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /evidence/{path} [put]
func (h *EvidenceHandler) UploadEvidence(c *gin.Context) {
	path := evidencePath(c)
	if path == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "File path is required"})
		return
	}

	content, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Failed to read request body"})
		return
	}
	if len(content) == 0 {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "File content is required"})
		return
	}

	ctx := h.RequestCtx(c)
	if _, err := h.router.Save(ctx, path, content); err != nil {
		if errors.Is(err, storage.ErrInvalidPath) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid file path"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.EvidenceResponse{
		Path:      path,
		SizeBytes: int64(len(content)),
		URL:       h.router.URL(ctx, path),
	})
}

// DownloadEvidence godoc
// @Summary Download an evidence file
// @Description Stream an evidence file from the tenant's storage container
// @Tags evidence
// @Produce octet-stream
// @Param path path string true "Logical file path"
// @Success 200 {file} file
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /evidence/{path} [get]
func (h *EvidenceHandler) DownloadEvidence(c *gin.Context) {
	path := evidencePath(c)
	data, err := h.router.Open(h.RequestCtx(c), path)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "File not found"})
			return
		}
		if errors.Is(err, storage.ErrInvalidPath) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid file path"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", data)
}

// StatEvidence godoc
// @Summary Get evidence file metadata
// @Description Report size and URL for a stored evidence file
// @Tags evidence
// @Produce json
// @Param path path string true "Logical file path"
// @Success 200 {object} dto.EvidenceResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /evidence-meta/{path} [get]
func (h *EvidenceHandler) StatEvidence(c *gin.Context) {
	path := evidencePath(c)
	ctx := h.RequestCtx(c)

	size, err := h.router.Size(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "File not found"})
			return
		}
		if errors.Is(err, storage.ErrInvalidPath) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid file path"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.EvidenceResponse{
		Path:      path,
		SizeBytes: size,
		URL:       h.router.URL(ctx, path),
	})
}

// DeleteEvidence godoc
// @Summary Delete an evidence file
// @Description Remove an evidence file from the tenant's storage container
// @Tags evidence
// @Produce json
// @Param path path string true "Logical file path"
// @Success 204
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /evidence/{path} [delete]
func (h *EvidenceHandler) DeleteEvidence(c *gin.Context) {
	err := h.router.Delete(h.RequestCtx(c), evidencePath(c))
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "File not found"})
			return
		}
		if errors.Is(err, storage.ErrInvalidPath) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid file path"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func evidencePath(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("path"), "/")
}
