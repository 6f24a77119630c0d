package handlers

import (
	"net/http"

	"blogserver/auth"
	"blogserver/db"
	"blogserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PostInfo struct {
	ID      uint64  `json:"id"`
	Author  string  `json:"author"`
	Text    string  `json:"text"`
	PubDate string  `json:"pub_date"`
	Image   *string `json:"image"`
	Group   *uint64 `json:"group"` // always the raw group id, never expanded
}

type PostCreateRequest struct {
	Text  string  `json:"text"`
	Image *string `json:"image"`
	Group *uint64 `json:"group"`
}

type PostPatchRequest struct {
	Text  *string `json:"text"`
	Image *string `json:"image"`
	Group *uint64 `json:"group"`
}

func postInfo(post *models.Post) PostInfo {
	info := PostInfo{
		ID:      post.ID,
		Author:  post.Author.Username,
		Text:    post.Text,
		PubDate: formatTimestamp(post.CreatedAt),
		Group:   post.GroupID,
	}
	if post.Image != "" {
		info.Image = &post.Image
	}
	return info
}

// groupExists validates an optional group reference from the payload
func groupExists(id uint64) bool {
	var count int64
	db.Instance.Model(&models.Group{}).Where("id = ?", id).Count(&count)
	return count > 0
}

// PostList returns all posts, newest first, windowed through the
// limit/offset envelope. Open to anonymous callers.
func PostList(c *gin.Context) {
	limit, offset := requestWindow(c)
	var count int64
	if err := db.Instance.Model(&models.Post{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "DB error 1"})
		return
	}
	var posts []models.Post
	err := db.Instance.Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "DB error 2"})
		return
	}
	results := []PostInfo{}
	for i := range posts {
		results = append(results, postInfo(&posts[i]))
	}
	c.JSON(http.StatusOK, paginate(c, count, limit, offset, results))
}

func PostCreate(c *gin.Context, user *models.User) {
	r := PostCreateRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if r.Text == "" {
		c.JSON(http.StatusBadRequest, fieldError("text", "This field may not be blank."))
		return
	}
	if r.Group != nil && !groupExists(*r.Group) {
		c.JSON(http.StatusBadRequest, fieldError("group", "Group does not exist."))
		return
	}
	post := models.Post{
		AuthorID: user.ID,
		Text:     r.Text,
		GroupID:  r.Group,
	}
	if r.Image != nil {
		post.Image = *r.Image
	}
	if result := db.Instance.Create(&post); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": result.Error.Error()})
		return
	}
	post.Author = *user
	c.JSON(http.StatusCreated, postInfo(&post))
}

func PostRetrieve(c *gin.Context) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, postInfo(&post))
}

// PostUpdate replaces the mutable fields of a post. The payload is held
// to the same validation as create; author and pub_date stay untouched.
func PostUpdate(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	switch auth.Authorize(auth.ActionWrite, post.AuthorID, user) {
	case auth.DenyUnauthorized:
		c.JSON(http.StatusUnauthorized, NotAuthenticatedResponse)
		return
	case auth.DenyForbidden:
		c.JSON(http.StatusForbidden, PostModifyDeniedResponse)
		return
	}
	r := PostCreateRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if r.Text == "" {
		c.JSON(http.StatusBadRequest, fieldError("text", "This field may not be blank."))
		return
	}
	if r.Group != nil && !groupExists(*r.Group) {
		c.JSON(http.StatusBadRequest, fieldError("group", "Group does not exist."))
		return
	}
	oldImage := post.Image
	post.Text = r.Text
	post.GroupID = r.Group
	post.Image = ""
	if r.Image != nil {
		post.Image = *r.Image
	}
	if err := db.Instance.Model(&post).Select("text", "group_id", "image").Updates(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	if oldImage != post.Image {
		removeMedia(oldImage)
	}
	c.JSON(http.StatusOK, postInfo(&post))
}

// PostPartialUpdate changes only the fields present in the payload.
func PostPartialUpdate(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	switch auth.Authorize(auth.ActionWrite, post.AuthorID, user) {
	case auth.DenyUnauthorized:
		c.JSON(http.StatusUnauthorized, NotAuthenticatedResponse)
		return
	case auth.DenyForbidden:
		c.JSON(http.StatusForbidden, PostModifyDeniedResponse)
		return
	}
	r := PostPatchRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	updated := []string{}
	if r.Text != nil {
		if *r.Text == "" {
			c.JSON(http.StatusBadRequest, fieldError("text", "This field may not be blank."))
			return
		}
		post.Text = *r.Text
		updated = append(updated, "text")
	}
	if r.Group != nil {
		if !groupExists(*r.Group) {
			c.JSON(http.StatusBadRequest, fieldError("group", "Group does not exist."))
			return
		}
		post.GroupID = r.Group
		updated = append(updated, "group_id")
	}
	oldImage := post.Image
	if r.Image != nil {
		post.Image = *r.Image
		updated = append(updated, "image")
	}
	if len(updated) > 0 {
		if err := db.Instance.Model(&post).Select(updated).Updates(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
	}
	if oldImage != post.Image {
		removeMedia(oldImage)
	}
	c.JSON(http.StatusOK, postInfo(&post))
}

// PostDelete removes the post and all of its comments.
func PostDelete(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	switch auth.Authorize(auth.ActionWrite, post.AuthorID, user) {
	case auth.DenyUnauthorized:
		c.JSON(http.StatusUnauthorized, NotAuthenticatedResponse)
		return
	case auth.DenyForbidden:
		c.JSON(http.StatusForbidden, PostDeleteDeniedResponse)
		return
	}
	if err := post.DeleteWithComments(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	removeMedia(post.Image)
	c.Status(http.StatusNoContent)
}
