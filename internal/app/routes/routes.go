package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vmelnyk/timetable/internal/app/controllers"
	"github.com/vmelnyk/timetable/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	scheduleController *controllers.ScheduleController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public read routes ---
	schedules := v1.Group("/schedules")
	{
		schedules.GET("", scheduleController.GetAllSchedules)
		schedules.GET("/info", scheduleController.GetInfoForCreatingSchedule)
		schedules.GET("/rooms", scheduleController.GetScheduleForRooms)
		schedules.GET("/semester/:semesterId", scheduleController.GetSchedulesBySemester)
		schedules.GET("/semester/:semesterId/full", scheduleController.GetFullSchedule)
		schedules.GET("/group/:groupId", scheduleController.GetScheduleForGroup)
		schedules.GET("/teacher/:teacherId", scheduleController.GetScheduleForTeacher)
		schedules.GET("/teacher/:teacherId/dates", scheduleController.GetScheduleByDateRange)
		schedules.GET("/teacher/:teacherId/dates/actual", scheduleController.GetActualScheduleByDateRange)
		schedules.GET("/:id", scheduleController.GetScheduleByID)
	}

	temporary := v1.Group("/temporary-schedules")
	{
		temporary.GET("/teacher/:teacherId", scheduleController.GetTemporarySchedules)
	}

	// --- Authenticated write routes ---
	protected := v1.Group("/schedules")
	protected.Use(authMiddleware.JWTAuth())
	{
		protected.POST("", scheduleController.CreateSchedule)
		protected.PUT("/:id", scheduleController.UpdateSchedule)
		protected.DELETE("/:id", scheduleController.DeleteSchedule)
		protected.DELETE("/semester/:semesterId", scheduleController.DeleteSchedulesBySemester)
	}
}
