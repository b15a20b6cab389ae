package routes

import (
	"vitaplan/internal/controllers"
	"vitaplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterReminderRoutes(router *gin.Engine, reminderController *controllers.ReminderController) {
	reminderRoutes := router.Group("/reminders")
	reminderRoutes.Use(middleware.AuthMiddleware())
	{
		reminderRoutes.GET("/due", reminderController.DueReminders)
		reminderRoutes.GET("/upcoming", reminderController.UpcomingReminders)
		reminderRoutes.POST("/acknowledge", reminderController.AcknowledgeReminder)
	}
}
