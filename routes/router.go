package routes

import (
	"ecoloop/config"
	"ecoloop/controllers"
	"ecoloop/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.C.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)
	r.GET("/levels", controllers.GetLevels)
	r.POST("/seed", controllers.SeedLevels)

	authed := r.Group("/")
	authed.Use(middlewares.JWTAuthMiddleware())
	{
		authed.GET("/users/me", controllers.GetMe)
		authed.POST("/users/progress", controllers.UpdateProgress)
		authed.POST("/verify-task", controllers.VerifyTask)
	}

	return r
}
