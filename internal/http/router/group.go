package router

import (
	"github.com/gin-gonic/gin"

	"groupbook.app/concierge/internal/http/handler"
)

func GroupRouter(router *gin.RouterGroup, handler *handler.GroupHandler) {
	router.POST("/messages", handler.PostMessage)
	router.GET("/votes/results", handler.VoteResults)
}
