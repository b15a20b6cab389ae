package routes

import (
	"vitaplan/internal/controllers"
	"vitaplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(router *gin.Engine, activityController *controllers.ActivityController) {
	activityRoutes := router.Group("/activities")
	activityRoutes.Use(middleware.AuthMiddleware())
	{
		activityRoutes.POST("", activityController.CreateActivity)
		activityRoutes.GET("", activityController.ListActivities)
		activityRoutes.GET("/:id", activityController.GetActivityByID)
		activityRoutes.PUT("/:id", activityController.UpdateActivity)
		activityRoutes.PATCH("/:id/status", activityController.PatchActivityStatus)
		activityRoutes.DELETE("/:id", activityController.DeleteActivity)
	}
}
