package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"blogserver/db"
	"blogserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type FollowInfo struct {
	User      string `json:"user"`
	Following string `json:"following"`
}

type FollowCreateRequest struct {
	Following string `json:"following"`
}

// FollowList returns the requester's own outgoing edges. An optional
// search term narrows them to target usernames containing it,
// case-insensitively.
func FollowList(c *gin.Context, user *models.User) {
	query := db.Instance.
		Table("follows").
		Joins("join users on users.id = follows.following_id").
		Select("users.username").
		Where("follows.user_id = ?", user.ID).
		Order("follows.id")
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(users.username) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	rows, err := query.Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "DB error 1"})
		return
	}
	defer rows.Close()
	result := []FollowInfo{}
	for rows.Next() {
		followInfo := FollowInfo{User: user.Username}
		if err = rows.Scan(&followInfo.Following); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "DB error 2"})
			return
		}
		result = append(result, followInfo)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "DB error 3"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// FollowCreate adds the edge requester -> target. The four failure modes
// are checked in order: missing field, self-follow, unknown target,
// duplicate edge. The store's unique index backs up the duplicate check,
// so an insert losing the race still reports as a duplicate.
func FollowCreate(c *gin.Context, user *models.User) {
	r := FollowCreateRequest{}
	// An empty body is treated as a missing field, not a malformed payload
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if r.Following == "" {
		c.JSON(http.StatusBadRequest, fieldError("following", "This field is required."))
		return
	}
	if r.Following == user.Username {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself."})
		return
	}
	target, err := models.UserByUsername(r.Following)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}
	var count int64
	db.Instance.Model(&models.Follow{}).
		Where("user_id = ? AND following_id = ?", user.ID, target.ID).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are already following this user."})
		return
	}
	follow := models.Follow{UserID: user.ID, FollowingID: target.ID}
	if err := db.Instance.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You are already following this user."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, FollowInfo{
		User:      user.Username,
		Following: target.Username,
	})
}
