package auth

import (
	"net/http"
	"strings"

	"blogserver/db"
	"blogserver/models"

	"github.com/gin-gonic/gin"
)

// HandlerFunc receives the authenticated user resolved from the bearer token
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds the bearer-token check + User pre-loading.
// Open (anonymous) routes are registered on the base engine directly.
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
		return
	}
	handler(c, user)
}

// CurrentUser resolves the requester from the Authorization header.
// Returns nil for anonymous or invalid credentials.
func CurrentUser(c *gin.Context) *models.User {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return nil
	}
	claims, err := ParseToken(tokenString)
	if err != nil || claims.TokenType != TokenTypeAccess {
		return nil
	}
	user := models.User{ID: claims.UserID}
	if db.Instance.First(&user).Error != nil {
		return nil
	}
	return &user
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) PUT(path string, handler HandlerFunc) {
	cr.Base.PUT(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) PATCH(path string, handler HandlerFunc) {
	cr.Base.PATCH(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) DELETE(path string, handler HandlerFunc) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
