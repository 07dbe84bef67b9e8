package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploadFileHandler handles POST /api/v1/cases/:id/files. Accepts a
// multipart form with a "file" part, or a raw body with the filename in
// the X-Filename header.
func (s *Server) uploadFileHandler(c *gin.Context) {
	var (
		filename    string
		contentType string
		data        []byte
	)

	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to open multipart file: " + err.Error()})
			return
		}
		defer f.Close()
		data, err = io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read multipart file: " + err.Error()})
			return
		}
		filename = fh.Filename
		contentType = fh.Header.Get("Content-Type")
	} else {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body: " + err.Error()})
			return
		}
		data = body
		filename = c.GetHeader("X-Filename")
		contentType = c.ContentType()
	}

	f, err := s.evidence.Upload(c.Request.Context(), c.Param("id"), userID(c), filename, contentType, data)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// listFilesHandler handles GET /api/v1/cases/:id/files.
func (s *Server) listFilesHandler(c *gin.Context) {
	files, err := s.evidence.List(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

// downloadFileHandler handles GET /api/v1/files/:fid.
func (s *Server) downloadFileHandler(c *gin.Context) {
	f, data, err := s.evidence.Download(c.Request.Context(), c.Param("fid"), userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Filename))
	c.Data(http.StatusOK, f.ContentType, data)
}

// deleteFileHandler handles DELETE /api/v1/files/:fid.
func (s *Server) deleteFileHandler(c *gin.Context) {
	if err := s.evidence.Delete(c.Request.Context(), c.Param("fid"), userID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
