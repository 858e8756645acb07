package router

import (
	"github.com/gin-gonic/gin"

	"groupbook.app/concierge/internal/http/handler"
)

func SetupRoutes(router *gin.Engine, chat *handler.ChatHandler, group *handler.GroupHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/messages", chat.Post)

		groups := v1.Group("/groups/:group_id")
		GroupRouter(groups, group)
	}
}
