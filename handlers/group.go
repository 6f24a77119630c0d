package handlers

import (
	"net/http"
	"strconv"

	"blogserver/db"
	"blogserver/models"

	"github.com/gin-gonic/gin"
)

type GroupInfo struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func groupInfo(group *models.Group) GroupInfo {
	return GroupInfo{
		ID:          group.ID,
		Title:       group.Title,
		Slug:        group.Slug,
		Description: group.Description,
	}
}

// GroupList returns every group as a bare array - the group catalogue is
// small and is never windowed.
func GroupList(c *gin.Context) {
	var groups []models.Group
	if err := db.Instance.Order("id").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "DB error 1"})
		return
	}
	result := []GroupInfo{}
	for i := range groups {
		result = append(result, groupInfo(&groups[i]))
	}
	c.JSON(http.StatusOK, result)
}

func GroupRetrieve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, GroupNotFoundResponse)
		return
	}
	var group models.Group
	if db.Instance.First(&group, id).Error != nil {
		c.JSON(http.StatusNotFound, GroupNotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, groupInfo(&group))
}
