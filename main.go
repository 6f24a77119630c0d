package main

import (
	"log"
	"strings"
	"time"

	"blogserver/auth"
	"blogserver/config"
	"blogserver/db"
	"blogserver/handlers"
	"blogserver/models"
	"blogserver/storage"
	"blogserver/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "PATCH", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media"})))
	}

	// Custom Auth Router; anonymous-readable routes go on the base router
	authRouter := &auth.Router{Base: router}
	// Token handlers
	router.POST("/jwt/create", handlers.TokenCreate)
	router.POST("/jwt/refresh", handlers.TokenRefresh)
	router.POST("/jwt/verify", handlers.TokenVerify)
	// Post handlers
	router.GET("/posts", handlers.PostList)
	authRouter.POST("/posts", handlers.PostCreate)
	router.GET("/posts/:post_id", handlers.PostRetrieve)
	authRouter.PUT("/posts/:post_id", handlers.PostUpdate)
	authRouter.PATCH("/posts/:post_id", handlers.PostPartialUpdate)
	authRouter.DELETE("/posts/:post_id", handlers.PostDelete)
	// Comment handlers, scoped under their post
	router.GET("/posts/:post_id/comments", handlers.CommentList)
	authRouter.POST("/posts/:post_id/comments", handlers.CommentCreate)
	router.GET("/posts/:post_id/comments/:id", handlers.CommentRetrieve)
	authRouter.PUT("/posts/:post_id/comments/:id", handlers.CommentUpdate)
	authRouter.PATCH("/posts/:post_id/comments/:id", handlers.CommentPartialUpdate)
	authRouter.DELETE("/posts/:post_id/comments/:id", handlers.CommentDelete)
	// Group handlers (read-only)
	router.GET("/groups", handlers.GroupList)
	router.GET("/groups/:id", handlers.GroupRetrieve)
	// Follow handlers
	authRouter.GET("/follow", handlers.FollowList)
	authRouter.POST("/follow", handlers.FollowCreate)
	// Media handlers
	authRouter.POST("/media", handlers.MediaUpload)
	router.GET("/media/*path", handlers.MediaFetch)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
