package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"blogserver/models"
	"blogserver/storage"
	"blogserver/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	thumbSize = 640
	// minFreeSpace refuses new uploads when the backend is nearly full
	minFreeSpace = 100 << 20
)

// MediaUpload stores a post image and a thumbnail, returning the path to
// put in the post's image field.
func MediaUpload(c *gin.Context, user *models.User) {
	if storage.Get().GetFreeSpace() < minFreeSpace {
		c.JSON(http.StatusInsufficientStorage, gin.H{"detail": "Not enough storage space."})
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, fieldError("image", "This field is required."))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	defer file.Close()
	buf := bytes.Buffer{}
	if _, err = buf.ReadFrom(file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	// The thumbnail pass doubles as image validation
	thumbBuf := bytes.Buffer{}
	if _, err = utils.CreateThumb(thumbSize, bytes.NewReader(buf.Bytes()), &thumbBuf); err != nil {
		c.JSON(http.StatusBadRequest, fieldError("image", "Upload a valid image."))
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	now := time.Now()
	path := fmt.Sprintf("posts/%d/%02d/%s%s", now.Year(), now.Month(), uuid.NewString(), ext)
	if _, err = storage.Get().Save(path, bytes.NewReader(buf.Bytes())); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	if _, err = storage.Get().Save("thumb/"+path, &thumbBuf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": path})
}

// MediaFetch serves a stored image or thumbnail. A thumbnail that went
// missing is rebuilt from its original before serving.
func MediaFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if original, found := strings.CutPrefix(path, "thumb/"); found {
		ensureThumb(original)
	}
	storage.Get().Serve(path, c.Request, c.Writer)
}

func ensureThumb(original string) {
	if _, err := storage.Get().Load("thumb/"+original, io.Discard); err == nil {
		return
	}
	buf := bytes.Buffer{}
	if _, err := storage.Get().Load(original, &buf); err != nil {
		return
	}
	thumbBuf := bytes.Buffer{}
	if _, err := utils.CreateThumb(thumbSize, &buf, &thumbBuf); err != nil {
		return
	}
	_, _ = storage.Get().Save("thumb/"+original, &thumbBuf)
}

// removeMedia deletes a stored image and its thumbnail, best effort -
// the database row is already gone and a leftover file is harmless.
func removeMedia(path string) {
	if path == "" {
		return
	}
	_ = storage.Get().Delete(path)
	_ = storage.Get().Delete("thumb/" + path)
}
