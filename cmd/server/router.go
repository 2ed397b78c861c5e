package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/skillbarter/backend/internal/handlers"
	"github.com/skillbarter/backend/internal/middleware"
	"github.com/skillbarter/backend/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	jwtMgr *auth.JWTManager,
	rdb *redis.Client,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	requestH *handlers.RequestHandler,
	chatH *handlers.ChatHandler,
	wsH *handlers.WebSocketHandler,
) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "SkillBarter API is running"})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", middleware.AuthMiddleware(jwtMgr, rdb), authH.Logout)
	}

	api := r.Group("/api", middleware.AuthMiddleware(jwtMgr, rdb))
	{
		api.GET("/users", userH.ListUsers)
		api.GET("/users/me", userH.GetMe)

		api.POST("/requests", requestH.SendRequest)
		api.GET("/requests/incoming", requestH.GetIncomingRequests)
		api.GET("/requests/accepted", requestH.GetAcceptedBarters)
		api.PUT("/requests/:id", requestH.UpdateRequestStatus)

		api.GET("/chat/:receiverId", chatH.GetChatHistory)
	}

	r.GET("/ws", middleware.WSAuthMiddleware(jwtMgr, rdb), wsH.HandleWebSocket)
}
