package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	attendance := api.Group("/attendance", handler.AuthRequired)
	attendance.Post("/check-in", handler.CheckIn)
	attendance.Post("/check-out", handler.CheckOut)
	attendance.Get("/today", handler.TodayAttendance)
	attendance.Get("", handler.AttendanceHistory)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Get("/today", handler.TodayTasks)
	tasks.Post("/:taskID/complete", handler.CompleteTask)
	tasks.Put("/:taskID", handler.UpdateTaskStatus)
	tasks.Post("/template", handler.ManagerRequired, handler.AddTaskTemplate)

	requests := api.Group("/requests", handler.AuthRequired)
	requests.Get("", handler.ListRequests)
	requests.Post("/edit", handler.RequestTaskEdit)
	requests.Post("/leave", handler.RequestLeave)
	requests.Post("/:requestID/respond", handler.ManagerRequired, handler.RespondToRequest)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.ListNotifications)
	notifications.Post("/:notificationID/read", handler.MarkNotificationRead)

	users := api.Group("/users", handler.AuthRequired, handler.ManagerRequired)
	users.Get("", handler.ListUsers)
	users.Post("", handler.CreateUser)
	users.Delete("/:userID", handler.DeleteUser)

	export := api.Group("/export", handler.AuthRequired, handler.ManagerRequired)
	export.Get("/:month", handler.ExportMonth)
}
